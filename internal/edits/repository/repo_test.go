package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapvault/snapvault-backend/internal/edits/domain"
)

const ownerID = "5c5c8dfa-2a2b-4a57-9e54-7c6be25e3e70"

func setupRepo(t *testing.T) (*EditRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewEditRepository(db)
	return repo, mock, db
}

func strPtr(s string) *string { return &s }

func expectOwnedScreenshot(mock sqlmock.Sqlmock, screenshotID string) {
	mock.ExpectQuery(`SELECT id FROM screenshots`).
		WithArgs(ownerID, screenshotID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(screenshotID))
}

func TestEditRepository_Create(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("appends under an owned screenshot", func(t *testing.T) {
		expectOwnedScreenshot(mock, "shot_aa11")
		mock.ExpectQuery(`INSERT INTO screenshot_edits`).
			WithArgs(sqlmock.AnyArg(), "shot_aa11", ownerID, "crop", `{"x":1}`, nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		e, err := repo.Create(context.Background(), ownerID, CreateInput{
			ScreenshotID: "shot_aa11",
			EditType:     strPtr(domain.EditTypeCrop),
			Operations:   json.RawMessage(`{"x":1}`),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, ownerID, e.OwnerID)
		assert.Equal(t, "shot_aa11", e.ScreenshotID)
		assert.False(t, e.CreatedAt.IsZero())

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign or absent screenshot maps to ErrScreenshotNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM screenshots`).
			WithArgs(ownerID, "shot_foreign").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Create(context.Background(), ownerID, CreateInput{ScreenshotID: "shot_foreign"})
		assert.ErrorIs(t, err, domain.ErrScreenshotNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing screenshot_id fails before any store access", func(t *testing.T) {
		_, err := repo.Create(context.Background(), ownerID, CreateInput{})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEditRepository_ListByScreenshot(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("returns the trail in application order", func(t *testing.T) {
		expectOwnedScreenshot(mock, "shot_aa11")
		mock.ExpectQuery(`SELECT .+ FROM screenshot_edits`).
			WithArgs(ownerID, "shot_aa11").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "screenshot_id", "owner_id", "edit_type", "operations_json", "result_image_url", "created_at",
			}).AddRow("e1", "shot_aa11", ownerID, "crop", `{"x":1}`, nil, time.Now()))

		items, err := repo.ListByScreenshot(context.Background(), ownerID, "shot_aa11")
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].EditType)
		assert.Equal(t, domain.EditTypeCrop, *items[0].EditType)
		assert.JSONEq(t, `{"x":1}`, string(items[0].Operations))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unresolvable screenshot fails before listing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM screenshots`).
			WithArgs(ownerID, "shot_unknown").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.ListByScreenshot(context.Background(), ownerID, "shot_unknown")
		assert.ErrorIs(t, err, domain.ErrScreenshotNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
