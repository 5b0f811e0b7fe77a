package alert

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

var (
	// ErrDuplicateAlert is returned when an equivalent alert already exists
	// within the suppression window. Callers treat it as "no further action".
	ErrDuplicateAlert = errors.New("active alert already exists for this condition")

	ErrAlertNotFound = errors.New("alert not found")
)

// Repository provides methods to interact with the alerts table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new alert repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateIfAbsent inserts the alert unless one with the same (farmer,
// condition) pair was created within the suppression window.
//
// The existence check and the insert run in one transaction holding a
// per-(farmer, condition) advisory lock, so concurrent batch goroutines
// cannot both pass the check. A failed insert is not retried here: the next
// sweep re-evaluates the same conditions anyway.
func (r *Repository) CreateIfAbsent(ctx context.Context, a model.Alert, window time.Duration) (uuid.UUID, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin dedup transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	lockKey := a.FarmerID.String() + ":" + string(a.Condition)
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, lockKey); err != nil {
		return uuid.Nil, fmt.Errorf("acquire dedup lock: %w", err)
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE farmer_id = $1 AND condition = $2 AND created_at > $3
		);
    `, a.FarmerID, a.Condition, time.Now().Add(-window)).Scan(&exists)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check existing alert: %w", err)
	}

	if exists {
		return uuid.Nil, ErrDuplicateAlert
	}

	var id uuid.UUID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO alerts (
		    farmer_id, condition, severity, message, recommendations,
		    latitude, longitude, valid_from, valid_until
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
    `,
		a.FarmerID, a.Condition, a.Severity, a.Message, pq.Array(a.Recommendations),
		a.Latitude, a.Longitude, a.ValidFrom, a.ValidUntil,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create alert: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit alert: %w", err)
	}

	return id, nil
}

// MarkRead flips the read flag of an alert, the only mutation alerts allow.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE alerts
		SET read = TRUE
		WHERE id = $1;
    `, id)
	if err != nil {
		return fmt.Errorf("failed to mark alert read: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrAlertNotFound
	}

	return nil
}

// ListActiveByFarmer returns unexpired alerts for a farmer, newest first.
// validUntil governs visibility here; the retention job governs deletion.
func (r *Repository) ListActiveByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, farmer_id, condition, severity, message, recommendations,
		       latitude, longitude, valid_from, valid_until, read, created_at
		FROM alerts
		WHERE farmer_id = $1 AND valid_until > now()
		ORDER BY created_at DESC;
    `, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []model.Alert
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(
			&a.ID, &a.FarmerID, &a.Condition, &a.Severity, &a.Message,
			pq.Array(&a.Recommendations), &a.Latitude, &a.Longitude,
			&a.ValidFrom, &a.ValidUntil, &a.Read, &a.CreatedAt,
		); err != nil {
			return nil, err
		}

		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// DeleteOlderThan removes alerts created before the cutoff and returns the
// number deleted. Creation time is the retention criterion, independent of
// each alert's validUntil.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM alerts
		WHERE created_at < $1;
    `, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired alerts: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to count deleted alerts: %w", err)
	}

	return rows, nil
}
