package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapvault/snapvault-backend/internal/screenshots/domain"
)

const ownerID = "5c5c8dfa-2a2b-4a57-9e54-7c6be25e3e70"

func setupRepo(t *testing.T) (*ScreenshotRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewScreenshotRepository(db)
	return repo, mock, db
}

func screenshotRows(id string, projectID *string) *sqlmock.Rows {
	now := time.Now()
	var project interface{}
	if projectID != nil {
		project = *projectID
	}
	return sqlmock.NewRows([]string{
		"id", "owner_id", "project_id", "original_image_url", "edited_image_url", "width", "height", "created_at", "updated_at",
	}).AddRow(id, ownerID, project, "img://1", nil, nil, nil, now, now)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestScreenshotRepository_Create(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("unattached screenshot keeps project_id null", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO screenshots`).
			WithArgs(sqlmock.AnyArg(), ownerID, nil, "img://1", nil, nil).
			WillReturnRows(screenshotRows("shot_aa11", nil))

		s, err := repo.Create(context.Background(), ownerID, CreateInput{OriginalImageURL: "img://1"})
		require.NoError(t, err)
		assert.Equal(t, ownerID, s.OwnerID)
		assert.Nil(t, s.ProjectID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("attached screenshot resolves the owned project first", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM projects`).
			WithArgs(ownerID, "snap-12345-6789").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("snap-12345-6789"))
		mock.ExpectQuery(`INSERT INTO screenshots`).
			WithArgs(sqlmock.AnyArg(), ownerID, "snap-12345-6789", "img://1", 800, 600).
			WillReturnRows(screenshotRows("shot_bb22", strPtr("snap-12345-6789")))

		s, err := repo.Create(context.Background(), ownerID, CreateInput{
			ProjectID:        strPtr("snap-12345-6789"),
			OriginalImageURL: "img://1",
			Width:            intPtr(800),
			Height:           intPtr(600),
		})
		require.NoError(t, err)
		require.NotNil(t, s.ProjectID)
		assert.Equal(t, "snap-12345-6789", *s.ProjectID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign project is indistinguishable from a missing one", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM projects`).
			WithArgs(ownerID, "snap-99999-9999").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Create(context.Background(), ownerID, CreateInput{
			ProjectID:        strPtr("snap-99999-9999"),
			OriginalImageURL: "img://1",
		})
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty original_image_url fails before any store access", func(t *testing.T) {
		_, err := repo.Create(context.Background(), ownerID, CreateInput{OriginalImageURL: "   "})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestScreenshotRepository_List(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("returns all owned screenshots", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM screenshots`).
			WithArgs(ownerID).
			WillReturnRows(screenshotRows("shot_aa11", nil))

		items, err := repo.List(context.Background(), ownerID, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("project filter must resolve as owned", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM projects`).
			WithArgs(ownerID, "nonexistent").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.List(context.Background(), ownerID, strPtr("nonexistent"))
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resolved filter narrows the listing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM projects`).
			WithArgs(ownerID, "snap-12345-6789").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("snap-12345-6789"))
		mock.ExpectQuery(`SELECT .+ FROM screenshots`).
			WithArgs(ownerID, "snap-12345-6789").
			WillReturnRows(screenshotRows("shot_bb22", strPtr("snap-12345-6789")))

		items, err := repo.List(context.Background(), ownerID, strPtr("snap-12345-6789"))
		require.NoError(t, err)
		require.Len(t, items, 1)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestScreenshotRepository_Update(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE screenshots`).
			WithArgs(ownerID, "shot_aa11", "img://1-edited").
			WillReturnRows(screenshotRows("shot_aa11", nil))

		s, err := repo.Update(context.Background(), ownerID, "shot_aa11", UpdateInput{
			EditedImageURL: strPtr("img://1-edited"),
		})
		require.NoError(t, err)
		assert.Equal(t, "shot_aa11", s.ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit null detaches without a project probe", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE screenshots`).
			WithArgs(ownerID, "shot_aa11", nil).
			WillReturnRows(screenshotRows("shot_aa11", nil))

		s, err := repo.Update(context.Background(), ownerID, "shot_aa11", UpdateInput{
			SetProjectID: true,
		})
		require.NoError(t, err)
		assert.Nil(t, s.ProjectID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reassignment probes the target project", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM projects`).
			WithArgs(ownerID, "snap-12345-6789").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("snap-12345-6789"))
		mock.ExpectQuery(`UPDATE screenshots`).
			WithArgs(ownerID, "shot_aa11", "snap-12345-6789").
			WillReturnRows(screenshotRows("shot_aa11", strPtr("snap-12345-6789")))

		s, err := repo.Update(context.Background(), ownerID, "shot_aa11", UpdateInput{
			SetProjectID: true,
			ProjectID:    strPtr("snap-12345-6789"),
		})
		require.NoError(t, err)
		require.NotNil(t, s.ProjectID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero recognized fields fails before any store access", func(t *testing.T) {
		_, err := repo.Update(context.Background(), ownerID, "shot_aa11", UpdateInput{})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign or absent screenshot maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE screenshots`).
			WithArgs(ownerID, "shot_unknown", 100).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(context.Background(), ownerID, "shot_unknown", UpdateInput{Width: intPtr(100)})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
