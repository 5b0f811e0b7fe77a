package advisory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/kisanmitra/weather-engine/internal/model"
)

var ErrAdvisoryNotFound = errors.New("advisory not found")

// Repository provides methods to interact with the advisories table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new advisory repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the advisory or, if one already exists for the same farmer
// and date, replaces its content. The (farmer_id, advisory_date) uniqueness
// constraint makes the daily pass idempotent under reruns.
func (r *Repository) Upsert(ctx context.Context, a model.Advisory) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx, `
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
    `,
		a.FarmerID, a.Date, a.WeatherSummary, pq.Array(a.Crops),
		a.PrimaryAdvice, pq.Array(a.Tips), a.Provenance, a.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert advisory: %w", err)
	}

	return id, nil
}

// ExistsForDate reports whether an advisory already exists for the farmer on
// the given calendar date.
func (r *Repository) ExistsForDate(ctx context.Context, farmerID uuid.UUID, date time.Time) (bool, error) {
	var exists bool

	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM advisories
			WHERE farmer_id = $1 AND advisory_date = $2
		);
    `, farmerID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check advisory existence: %w", err)
	}

	return exists, nil
}

// GetByFarmerAndDate returns the advisory for a farmer on a date.
func (r *Repository) GetByFarmerAndDate(ctx context.Context, farmerID uuid.UUID, date time.Time) (model.Advisory, error) {
	var a model.Advisory

	err := r.db.QueryRowContext(ctx, `
		SELECT id, farmer_id, advisory_date, weather_summary, crops,
		       primary_advice, tips, provenance, expires_at, created_at
		FROM advisories
		WHERE farmer_id = $1 AND advisory_date = $2;
    `, farmerID, date).Scan(
		&a.ID, &a.FarmerID, &a.Date, &a.WeatherSummary, pq.Array(&a.Crops),
		&a.PrimaryAdvice, pq.Array(&a.Tips), &a.Provenance, &a.ExpiresAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Advisory{}, ErrAdvisoryNotFound
		}

		return model.Advisory{}, fmt.Errorf("failed to get advisory: %w", err)
	}

	return a, nil
}

// DeleteOlderThan removes advisories created before the cutoff and returns
// the number deleted.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM advisories
		WHERE created_at < $1;
    `, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired advisories: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted advisories: %w", err)
	}

	return rows, nil
}
