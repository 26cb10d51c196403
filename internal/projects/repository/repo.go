package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/snapvault/snapvault-backend/internal/projects/domain"
	"github.com/snapvault/snapvault-backend/internal/projects/utils"
)

const idPrefix = "snap"

const projectColumns = `id, owner_id::text, title, description, source_device, source_app, created_at, updated_at`

// ProjectRepository provides persistence operations for projects.
// Every query filters by owner_id, so rows belonging to another user
// are indistinguishable from rows that do not exist.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateInput carries the caller-supplied fields for a new project.
// All of them are optional; the owner is never part of the input.
type CreateInput struct {
	Title        *string
	Description  *string
	SourceDevice *string
	SourceApp    *string
}

// Create inserts a new project for the given owner.
func (r *ProjectRepository) Create(ctx context.Context, ownerID string, in CreateInput) (*domain.Project, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id required")
	}

	for i := 0; i < 5; i++ {
		publicID, err := utils.NewTextID(idPrefix)
		if err != nil {
			return nil, err
		}

		const q = `
INSERT INTO projects (id, owner_id, title, description, source_device, source_app)
VALUES ($1, $2::uuid, $3, $4, $5, $6)
RETURNING ` + projectColumns + `;
`
		var p domain.Project
		err = r.db.QueryRowContext(ctx, q, publicID, ownerID,
			in.Title, in.Description, in.SourceDevice, in.SourceApp).
			Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.SourceDevice, &p.SourceApp,
				&p.CreatedAt, &p.UpdatedAt)

		if err == nil {
			return &p, nil
		}

		// unique violation on id → retry
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique project id")
}

// List returns all projects for the given owner, newest first.
func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
WHERE owner_id = $1::uuid
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.SourceDevice, &p.SourceApp,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Title        *string
	Description  *string
	SourceDevice *string
	SourceApp    *string
}

// Empty reports whether the update carries no recognized field.
func (in UpdateInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.SourceDevice == nil && in.SourceApp == nil
}

// Update applies the provided fields to an owned project and refreshes
// updated_at. Zero matched rows map to domain.ErrNotFound.
func (r *ProjectRepository) Update(ctx context.Context, ownerID, publicID string, in UpdateInput) (*domain.Project, error) {
	if in.Empty() {
		return nil, fmt.Errorf("at least one field required")
	}

	set := make([]string, 0, 4)
	args := []interface{}{ownerID, publicID}
	add := func(col string, v *string) {
		if v != nil {
			args = append(args, *v)
			set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}
	add("title", in.Title)
	add("description", in.Description)
	add("source_device", in.SourceDevice)
	add("source_app", in.SourceApp)

	q := `
UPDATE projects
SET ` + strings.Join(set, ", ") + `, updated_at = now()
WHERE owner_id = $1::uuid AND id = $2
RETURNING ` + projectColumns + `;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, args...).
		Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.SourceDevice, &p.SourceApp,
			&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
