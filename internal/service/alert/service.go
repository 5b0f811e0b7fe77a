// Package alert persists condition events as alerts, suppressing repeats of
// the same (farmer, condition) pair inside the deduplication window.
package alert

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/kisanmitra/weather-engine/internal/model"
	alertrepo "github.com/kisanmitra/weather-engine/internal/repository/alert"
	"github.com/kisanmitra/weather-engine/internal/rules"
	"github.com/kisanmitra/weather-engine/pkg/textgen"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/alert/mock.go -package=mocks

type alertRepository interface {
	CreateIfAbsent(ctx context.Context, a model.Alert, window time.Duration) (uuid.UUID, error)
}

type textGenerator interface {
	GenerateAlertText(ctx context.Context, req textgen.AlertRequest) (string, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, farmer model.Farmer, alert model.Alert)
}

type Service struct {
	repo        alertRepository
	generator   textGenerator // nil when the collaborator is not configured
	dispatcher  dispatcher
	dedupWindow time.Duration
	genTimeout  time.Duration
}

func NewService(
	repo alertRepository,
	generator textGenerator,
	dispatcher dispatcher,
	dedupWindow time.Duration,
	genTimeout time.Duration,
) *Service {
	return &Service{
		repo:        repo,
		generator:   generator,
		dispatcher:  dispatcher,
		dedupWindow: dedupWindow,
		genTimeout:  genTimeout,
	}
}

// ProcessEvent turns one condition event into a persisted alert and hands it
// to the dispatcher. It returns (nil, nil) when the event was deduplicated;
// callers must treat a nil alert as "no further action", not an error.
func (s *Service) ProcessEvent(
	ctx context.Context,
	farmer model.Farmer,
	reading model.WeatherReading,
	ev rules.Event,
) (*model.Alert, error) {
	message, provenance := s.resolveMessage(ctx, farmer, reading, ev)

	now := time.Now()
	validity := 24 * time.Hour
	if ev.Timing == rules.TimingNextDay {
		// forecast conditions stay relevant through the following day
		validity = 48 * time.Hour
	}

	a := model.Alert{
		FarmerID:        farmer.ID,
		Condition:       ev.Condition,
		Severity:        ev.Severity,
		Message:         message,
		Recommendations: RecommendationsFor(ev.Condition),
		Latitude:        reading.Latitude,
		Longitude:       reading.Longitude,
		ValidFrom:       now,
		ValidUntil:      now.Add(validity),
	}

	id, err := s.repo.CreateIfAbsent(ctx, a, s.dedupWindow)
	if err != nil {
		if errors.Is(err, alertrepo.ErrDuplicateAlert) {
			zlog.Logger.Debug().
				Str("farmer_id", farmer.ID.String()).
				Str("condition", string(ev.Condition)).
				Msg("alert suppressed by dedup window")
			return nil, nil
		}

		// Not retried: retrying a possibly-applied insert risks duplicate
		// alerts, and the next sweep re-evaluates the same conditions.
		return nil, err
	}

	a.ID = id
	a.CreatedAt = now

	zlog.Logger.Info().
		Str("farmer_id", farmer.ID.String()).
		Str("condition", string(ev.Condition)).
		Str("severity", string(ev.Severity)).
		Str("provenance", string(provenance)).
		Msg("alert created")

	s.dispatcher.Dispatch(ctx, farmer, a)

	return &a, nil
}

// resolveMessage asks the text collaborator for an urgent 1-2 sentence
// message and falls back to the static per-condition text on any failure.
func (s *Service) resolveMessage(
	ctx context.Context,
	farmer model.Farmer,
	reading model.WeatherReading,
	ev rules.Event,
) (string, model.Provenance) {
	if s.generator == nil {
		return FallbackMessage(ev), model.ProvenanceFallback
	}

	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	message, err := s.generator.GenerateAlertText(genCtx, textgen.AlertRequest{
		Condition: ev.Condition,
		Severity:  ev.Severity,
		Language:  farmer.Language,
		Weather:   reading,
		Crops:     farmer.Crops,
	})
	if err != nil {
		zlog.Logger.Warn().Err(err).
			Str("condition", string(ev.Condition)).
			Msg("alert text generation failed, using fallback")
		return FallbackMessage(ev), model.ProvenanceFallback
	}

	return message, model.ProvenanceAI
}
