package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/snapvault/snapvault-backend/internal/screenshots/domain"
)

const screenshotColumns = `id, owner_id::text, project_id, original_image_url, edited_image_url, width, height, created_at, updated_at`

// ScreenshotRepository provides persistence operations for screenshots.
type ScreenshotRepository struct {
	db *sql.DB
}

// NewScreenshotRepository creates a new screenshot repository
func NewScreenshotRepository(db *sql.DB) *ScreenshotRepository {
	return &ScreenshotRepository{db: db}
}

type CreateInput struct {
	ProjectID        *string
	OriginalImageURL string
	Width            *int
	Height           *int
}

// Create inserts a new screenshot for the given owner, optionally
// attached to one of their projects.
func (r *ScreenshotRepository) Create(ctx context.Context, ownerID string, in CreateInput) (*domain.Screenshot, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id required")
	}
	if strings.TrimSpace(in.OriginalImageURL) == "" {
		return nil, fmt.Errorf("original_image_url required")
	}

	if in.ProjectID != nil {
		if err := r.resolveOwnedProject(ctx, ownerID, *in.ProjectID); err != nil {
			return nil, err
		}
	}

	id, err := newID("shot")
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO screenshots (id, owner_id, project_id, original_image_url, width, height)
VALUES ($1, $2::uuid, $3, $4, $5, $6)
RETURNING ` + screenshotColumns + `;
`
	var s domain.Screenshot
	err = r.db.QueryRowContext(ctx, q, id, ownerID, in.ProjectID, in.OriginalImageURL, in.Width, in.Height).
		Scan(&s.ID, &s.OwnerID, &s.ProjectID, &s.OriginalImageURL, &s.EditedImageURL,
			&s.Width, &s.Height, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns the owner's screenshots, optionally narrowed to one of
// their projects. A filter project that cannot be resolved fails with
// ErrProjectNotFound before any listing happens.
func (r *ScreenshotRepository) List(ctx context.Context, ownerID string, projectID *string) ([]domain.Screenshot, error) {
	q := `
SELECT ` + screenshotColumns + `
FROM screenshots
WHERE owner_id = $1::uuid`
	args := []interface{}{ownerID}

	if projectID != nil {
		if err := r.resolveOwnedProject(ctx, ownerID, *projectID); err != nil {
			return nil, err
		}
		args = append(args, *projectID)
		q += ` AND project_id = $2`
	}
	q += `
ORDER BY created_at DESC;`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Screenshot, 0, 16)
	for rows.Next() {
		var s domain.Screenshot
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.ProjectID, &s.OriginalImageURL, &s.EditedImageURL,
			&s.Width, &s.Height, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInput carries a partial update. SetProjectID distinguishes
// "leave project_id alone" from an explicit null that detaches the
// screenshot; original_image_url is immutable and has no field here.
type UpdateInput struct {
	SetProjectID   bool
	ProjectID      *string
	EditedImageURL *string
	Width          *int
	Height         *int
}

// Empty reports whether the update carries no recognized field.
func (in UpdateInput) Empty() bool {
	return !in.SetProjectID && in.EditedImageURL == nil && in.Width == nil && in.Height == nil
}

// Update applies the provided fields to an owned screenshot and
// refreshes updated_at. Reassigning to a non-null project checks that
// the target project resolves for the same owner first.
func (r *ScreenshotRepository) Update(ctx context.Context, ownerID, id string, in UpdateInput) (*domain.Screenshot, error) {
	if in.Empty() {
		return nil, fmt.Errorf("at least one field required")
	}

	if in.SetProjectID && in.ProjectID != nil {
		if err := r.resolveOwnedProject(ctx, ownerID, *in.ProjectID); err != nil {
			return nil, err
		}
	}

	set := make([]string, 0, 4)
	args := []interface{}{ownerID, id}
	if in.SetProjectID {
		args = append(args, in.ProjectID)
		set = append(set, fmt.Sprintf("project_id = $%d", len(args)))
	}
	if in.EditedImageURL != nil {
		args = append(args, *in.EditedImageURL)
		set = append(set, fmt.Sprintf("edited_image_url = $%d", len(args)))
	}
	if in.Width != nil {
		args = append(args, *in.Width)
		set = append(set, fmt.Sprintf("width = $%d", len(args)))
	}
	if in.Height != nil {
		args = append(args, *in.Height)
		set = append(set, fmt.Sprintf("height = $%d", len(args)))
	}

	q := `
UPDATE screenshots
SET ` + strings.Join(set, ", ") + `, updated_at = now()
WHERE owner_id = $1::uuid AND id = $2
RETURNING ` + screenshotColumns + `;
`
	var s domain.Screenshot
	err := r.db.QueryRowContext(ctx, q, args...).
		Scan(&s.ID, &s.OwnerID, &s.ProjectID, &s.OriginalImageURL, &s.EditedImageURL,
			&s.Width, &s.Height, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetOwned resolves a screenshot by id for the given owner. Zero rows
// map to ErrNotFound whether the row is absent or foreign-owned.
func (r *ScreenshotRepository) GetOwned(ctx context.Context, ownerID, id string) (*domain.Screenshot, error) {
	const q = `
SELECT ` + screenshotColumns + `
FROM screenshots
WHERE owner_id = $1::uuid AND id = $2;
`
	var s domain.Screenshot
	err := r.db.QueryRowContext(ctx, q, ownerID, id).
		Scan(&s.ID, &s.OwnerID, &s.ProjectID, &s.OriginalImageURL, &s.EditedImageURL,
			&s.Width, &s.Height, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ScreenshotRepository) resolveOwnedProject(ctx context.Context, ownerID, projectID string) error {
	const q = `
SELECT id
FROM projects
WHERE owner_id = $1::uuid AND id = $2;
`
	var ok string
	err := r.db.QueryRowContext(ctx, q, ownerID, projectID).Scan(&ok)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProjectNotFound
		}
		return err
	}
	return nil
}

func newID(prefix string) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b)), nil
}
