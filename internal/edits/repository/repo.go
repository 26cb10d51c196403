package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/snapvault/snapvault-backend/internal/edits/domain"
)

// EditRepository persists the append-only edit trail. There is no
// update or delete path by design.
type EditRepository struct {
	db *sql.DB
}

// NewEditRepository creates a new edit repository
func NewEditRepository(db *sql.DB) *EditRepository {
	return &EditRepository{db: db}
}

type CreateInput struct {
	ScreenshotID   string
	EditType       *string
	Operations     json.RawMessage
	ResultImageURL *string
}

// Create appends one edit record under an owned screenshot.
func (r *EditRepository) Create(ctx context.Context, ownerID string, in CreateInput) (*domain.ScreenshotEdit, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id required")
	}
	if strings.TrimSpace(in.ScreenshotID) == "" {
		return nil, fmt.Errorf("screenshot_id required")
	}

	if err := r.resolveOwnedScreenshot(ctx, ownerID, in.ScreenshotID); err != nil {
		return nil, err
	}

	e := &domain.ScreenshotEdit{
		ID:             uuid.New().String(),
		ScreenshotID:   in.ScreenshotID,
		OwnerID:        ownerID,
		EditType:       in.EditType,
		Operations:     in.Operations,
		ResultImageURL: in.ResultImageURL,
	}

	var operations *string
	if len(in.Operations) > 0 {
		s := string(in.Operations)
		operations = &s
	}

	const q = `
INSERT INTO screenshot_edits (id, screenshot_id, owner_id, edit_type, operations_json, result_image_url)
VALUES ($1, $2, $3::uuid, $4, $5::jsonb, $6)
RETURNING created_at;
`
	err := r.db.QueryRowContext(ctx, q, e.ID, e.ScreenshotID, ownerID,
		in.EditType, operations, in.ResultImageURL).Scan(&e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListByScreenshot returns every edit recorded for an owned screenshot,
// oldest first, so the trail reads in application order.
func (r *EditRepository) ListByScreenshot(ctx context.Context, ownerID, screenshotID string) ([]domain.ScreenshotEdit, error) {
	if err := r.resolveOwnedScreenshot(ctx, ownerID, screenshotID); err != nil {
		return nil, err
	}

	const q = `
SELECT id, screenshot_id, owner_id::text, edit_type, operations_json::text, result_image_url, created_at
FROM screenshot_edits
WHERE owner_id = $1::uuid AND screenshot_id = $2
ORDER BY created_at ASC;
`
	rows, err := r.db.QueryContext(ctx, q, ownerID, screenshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ScreenshotEdit, 0, 16)
	for rows.Next() {
		var e domain.ScreenshotEdit
		var operations sql.NullString
		if err := rows.Scan(&e.ID, &e.ScreenshotID, &e.OwnerID, &e.EditType,
			&operations, &e.ResultImageURL, &e.CreatedAt); err != nil {
			return nil, err
		}
		if operations.Valid {
			e.Operations = json.RawMessage(operations.String)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EditRepository) resolveOwnedScreenshot(ctx context.Context, ownerID, screenshotID string) error {
	const q = `
SELECT id
FROM screenshots
WHERE owner_id = $1::uuid AND id = $2;
`
	var ok string
	err := r.db.QueryRowContext(ctx, q, ownerID, screenshotID).Scan(&ok)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrScreenshotNotFound
		}
		return err
	}
	return nil
}
