// Package cleanup is the retention job: it deletes alerts and advisories
// whose creation time passed the retention horizon. Each record's own
// validity field only hides it from readers; deletion happens here.
package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/cleanup/mock.go -package=mocks

type alertRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type advisoryRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Report summarizes one cleanup pass.
type Report struct {
	AlertsDeleted     int64
	AdvisoriesDeleted int64
}

type Service struct {
	alerts            alertRepository
	advisories        advisoryRepository
	alertRetention    time.Duration
	advisoryRetention time.Duration
}

func NewService(
	alerts alertRepository,
	advisories advisoryRepository,
	alertRetention time.Duration,
	advisoryRetention time.Duration,
) *Service {
	return &Service{
		alerts:            alerts,
		advisories:        advisories,
		alertRetention:    alertRetention,
		advisoryRetention: advisoryRetention,
	}
}

// Run attempts both deletions even if one fails and reports what it managed
// to delete. The returned error is non-nil if either deletion failed.
func (s *Service) Run(ctx context.Context) (Report, error) {
	var report Report
	var alertErr, advisoryErr error

	now := time.Now()

	report.AlertsDeleted, alertErr = s.alerts.DeleteOlderThan(ctx, now.Add(-s.alertRetention))
	if alertErr != nil {
		zlog.Logger.Error().Err(alertErr).Msg("cleanup: failed to delete expired alerts")
	}

	report.AdvisoriesDeleted, advisoryErr = s.advisories.DeleteOlderThan(ctx, now.Add(-s.advisoryRetention))
	if advisoryErr != nil {
		zlog.Logger.Error().Err(advisoryErr).Msg("cleanup: failed to delete expired advisories")
	}

	zlog.Logger.Info().
		Int64("alerts_deleted", report.AlertsDeleted).
		Int64("advisories_deleted", report.AdvisoriesDeleted).
		Msg("cleanup completed")

	switch {
	case alertErr != nil && advisoryErr != nil:
		return report, fmt.Errorf("cleanup failed for alerts (%v) and advisories (%v)", alertErr, advisoryErr)
	case alertErr != nil:
		return report, fmt.Errorf("cleanup failed for alerts: %w", alertErr)
	case advisoryErr != nil:
		return report, fmt.Errorf("cleanup failed for advisories: %w", advisoryErr)
	default:
		return report, nil
	}
}
