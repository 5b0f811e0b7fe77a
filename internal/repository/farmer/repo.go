package farmer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/kisanmitra/weather-engine/internal/model"
)

// Repository reads farmers from the account subsystem's table. The engine
// never writes to it.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new farmer repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns all active farmers ordered by ID, giving sweeps a
// stable batch order.
func (r *Repository) ListActive(ctx context.Context) ([]model.Farmer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, language, state, district, latitude, longitude, crops
		FROM farmers
		WHERE active = TRUE
		ORDER BY id;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list active farmers: %w", err)
	}
	defer rows.Close()

	var farmers []model.Farmer
	for rows.Next() {
		var (
			f        model.Farmer
			lat, lon sql.NullFloat64
		)

		if err := rows.Scan(
			&f.ID, &f.Name, &f.Email, &f.Language, &f.State, &f.District,
			&lat, &lon, pq.Array(&f.Crops),
		); err != nil {
			return nil, err
		}

		if lat.Valid && lon.Valid {
			f.Latitude = &lat.Float64
			f.Longitude = &lon.Float64
		}

		farmers = append(farmers, f)
	}

	return farmers, rows.Err()
}
