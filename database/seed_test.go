package database

import (
	"context"
	"testing"

	"appliance-site/internal/domain/payload"
	"appliance-site/internal/infra/staticcontent"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestPlanSeed_PagesThenBlocks(t *testing.T) {
	static := staticcontent.MustLoad()

	plan, err := planSeed(context.Background(), static, false)
	require.NoError(t, err)
	assert.Equal(t, len(static.Slugs()), plan.report.Pages)
	assert.Positive(t, plan.report.Blocks)
	assert.Positive(t, plan.report.Entities)
	assert.Len(t, plan.rows, plan.report.Pages+plan.report.Blocks+plan.report.Entities)

	var current *payload.Page
	nextIndex := 0
	for _, row := range plan.rows {
		switch r := row.(type) {
		case *payload.Page:
			current, nextIndex = r, 0
			assert.Equal(t, payload.StatusDraft, r.Status)
			assert.NotEmpty(t, r.ID)
		case *payload.PageBlock:
			require.NotNil(t, current, "block before any page")
			assert.Equal(t, current.ID, r.PageID)
			assert.Equal(t, nextIndex, r.SortIndex)
			assert.NotEmpty(t, r.BlockType)
			assert.NotEmpty(t, r.Fields)
			nextIndex++
		}
	}
}

func TestPlanSeed_PublishAndServiceLinks(t *testing.T) {
	plan, err := planSeed(context.Background(), staticcontent.MustLoad(), true)
	require.NoError(t, err)

	serviceIDs := map[string]bool{}
	linked := 0
	for _, row := range plan.rows {
		switch r := row.(type) {
		case *payload.Page:
			assert.Equal(t, payload.StatusPublished, r.Status)
		case *payload.Service:
			serviceIDs[r.ID] = true
		case *payload.Testimonial:
			if r.ServiceID != nil {
				assert.True(t, serviceIDs[*r.ServiceID], "testimonial linked to a service seeded later or not at all")
				linked++
			}
		}
	}
	assert.Len(t, serviceIDs, 5)
	assert.Positive(t, linked)
}

func TestSeed_RefusesWhenPagesExist(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "pages"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	report, err := Seed(context.Background(), db, staticcontent.MustLoad(), false)
	assert.True(t, errors.Is(err, ErrAlreadySeeded))
	assert.Equal(t, SeedReport{}, report)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_CountFailureRollsBack(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "pages"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := Seed(context.Background(), db, staticcontent.MustLoad(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
