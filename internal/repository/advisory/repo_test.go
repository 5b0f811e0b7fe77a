package advisory

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/kisanmitra/weather-engine/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestUpsert(t *testing.T) {
	repo, mock := setupMockDB(t)

	advisoryID := uuid.New()
	a := model.Advisory{
		FarmerID:       uuid.New(),
		Date:           time.Now().UTC().Truncate(24 * time.Hour),
		WeatherSummary: "clear, 28.0C",
		Crops:          []string{"wheat"},
		PrimaryAdvice:  "Proceed with regular field operations.",
		Tips:           []string{"Inspect crops for pests"},
		Provenance:     model.ProvenanceFallback,
		ExpiresAt:      time.Now().Add(24 * time.Hour),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO advisories (
		    farmer_id, advisory_date, weather_summary, crops,
		    primary_advice, tips, provenance, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (farmer_id, advisory_date) DO UPDATE SET
		    weather_summary = EXCLUDED.weather_summary,
		    crops           = EXCLUDED.crops,
		    primary_advice  = EXCLUDED.primary_advice,
		    tips            = EXCLUDED.tips,
		    provenance      = EXCLUDED.provenance,
		    expires_at      = EXCLUDED.expires_at
		RETURNING id;
    `)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(advisoryID))

	id, err := repo.Upsert(context.Background(), a)
	assert.NoError(t, err)
	assert.Equal(t, advisoryID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsForDate(t *testing.T) {
	repo, mock := setupMockDB(t)

	farmerID := uuid.New()
	date := time.Now().UTC().Truncate(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT EXISTS (
			SELECT 1 FROM advisories
			WHERE farmer_id = $1 AND advisory_date = $2
		);
    `)).
		WithArgs(farmerID, date).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForDate(context.Background(), farmerID, date)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByFarmerAndDate_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	farmerID := uuid.New()
	date := time.Now().UTC().Truncate(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, farmer_id, advisory_date, weather_summary, crops,
		       primary_advice, tips, provenance, expires_at, created_at
		FROM advisories
		WHERE farmer_id = $1 AND advisory_date = $2;
    `)).
		WithArgs(farmerID, date).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByFarmerAndDate(context.Background(), farmerID, date)
	assert.ErrorIs(t, err, ErrAdvisoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOlderThan(t *testing.T) {
	repo, mock := setupMockDB(t)

	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM advisories
		WHERE created_at < $1;
    `)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := repo.DeleteOlderThan(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
