// Package sweep runs the fast weather check across the farmer population:
// load active farmers, fetch readings in small concurrent batches, run the
// rule engine and hand condition events to the alert service. One farmer's
// failure never stops the batch or the sweep.
package sweep

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/kisanmitra/weather-engine/internal/model"
	"github.com/kisanmitra/weather-engine/internal/rules"
	"github.com/kisanmitra/weather-engine/pkg/openweather"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/sweep/mock.go -package=mocks

type farmerRepository interface {
	ListActive(ctx context.Context) ([]model.Farmer, error)
}

type weatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (model.WeatherReading, error)
	Forecast(ctx context.Context, lat, lon float64, days int) ([]model.WeatherReading, error)
	Geocode(ctx context.Context, place string) (float64, float64, error)
}

type alertProcessor interface {
	ProcessEvent(ctx context.Context, farmer model.Farmer, reading model.WeatherReading, ev rules.Event) (*model.Alert, error)
}

type Service struct {
	farmers      farmerRepository
	weather      weatherProvider
	alerts       alertProcessor
	batchSize    int
	batchPause   time.Duration
	fetchTimeout time.Duration
}

func NewService(
	farmers farmerRepository,
	weather weatherProvider,
	alerts alertProcessor,
	batchSize int,
	batchPause time.Duration,
	fetchTimeout time.Duration,
) *Service {
	if batchSize <= 0 {
		batchSize = 10
	}

	return &Service{
		farmers:      farmers,
		weather:      weather,
		alerts:       alerts,
		batchSize:    batchSize,
		batchPause:   batchPause,
		fetchTimeout: fetchTimeout,
	}
}

// Run executes one sweep. Batches run sequentially in stable farmer order;
// within a batch farmers are fetched concurrently, the batch size bounding
// the parallelism the upstream API sees. Cancellation is honored between
// batches so in-flight farmers finish before the sweep stops.
func (s *Service) Run(ctx context.Context) {
	started := time.Now()

	farmers, err := s.farmers.ListActive(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("sweep: failed to list farmers")
		return
	}

	if len(farmers) == 0 {
		zlog.Logger.Debug().Msg("sweep: no active farmers")
		return
	}

	var processed, skipped int
	for start := 0; start < len(farmers); start += s.batchSize {
		if ctx.Err() != nil {
			zlog.Logger.Info().Int("processed", processed).Msg("sweep: canceled")
			return
		}

		end := start + s.batchSize
		if end > len(farmers) {
			end = len(farmers)
		}
		batch := farmers[start:end]

		var (
			wg sync.WaitGroup
			mu sync.Mutex
		)

		wg.Add(len(batch))
		for _, f := range batch {
			go func(f model.Farmer) {
				defer wg.Done()

				if ok := s.processFarmer(ctx, f); ok {
					mu.Lock()
					processed++
					mu.Unlock()
					return
				}

				mu.Lock()
				skipped++
				mu.Unlock()
			}(f)
		}
		wg.Wait()

		if end < len(farmers) {
			select {
			case <-ctx.Done():
			case <-time.After(s.batchPause):
			}
		}
	}

	zlog.Logger.Info().
		Int("processed", processed).
		Int("skipped", skipped).
		Dur("took", time.Since(started)).
		Msg("sweep completed")
}

// processFarmer handles a single farmer end to end. All failures are logged
// and reported as a skip; nothing propagates to the batch.
func (s *Service) processFarmer(ctx context.Context, f model.Farmer) bool {
	lat, lon, err := s.locate(ctx, f)
	if err != nil {
		if errors.Is(err, openweather.ErrLocationNotFound) {
			zlog.Logger.Warn().
				Str("farmer_id", f.ID.String()).
				Str("place", f.Place()).
				Msg("sweep: location not resolvable, skipping farmer")
		} else {
			zlog.Logger.Warn().Err(err).
				Str("farmer_id", f.ID.String()).
				Msg("sweep: geocoding failed, skipping farmer")
		}
		return false
	}

	reading, err := s.fetchCurrent(ctx, lat, lon)
	if err != nil {
		zlog.Logger.Warn().Err(err).
			Str("farmer_id", f.ID.String()).
			Msg("sweep: weather fetch failed, skipping farmer")
		return false
	}

	nextDay := s.fetchNextDay(ctx, lat, lon)

	for _, ev := range rules.Evaluate(reading, nextDay) {
		if _, err := s.alerts.ProcessEvent(ctx, f, reading, ev); err != nil {
			zlog.Logger.Error().Err(err).
				Str("farmer_id", f.ID.String()).
				Str("condition", string(ev.Condition)).
				Msg("sweep: failed to process condition event")
		}
	}

	return true
}

func (s *Service) locate(ctx context.Context, f model.Farmer) (float64, float64, error) {
	if f.HasCoordinates() {
		return *f.Latitude, *f.Longitude, nil
	}

	geoCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	return s.weather.Geocode(geoCtx, f.Place())
}

func (s *Service) fetchCurrent(ctx context.Context, lat, lon float64) (model.WeatherReading, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	return s.weather.Current(fetchCtx, lat, lon)
}

// fetchNextDay returns tomorrow's forecast reading, or nil when the forecast
// is unavailable. A missing forecast only costs the upcoming_rain rule.
func (s *Service) fetchNextDay(ctx context.Context, lat, lon float64) *model.WeatherReading {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	days, err := s.weather.Forecast(fetchCtx, lat, lon, 2)
	if err != nil {
		zlog.Logger.Debug().Err(err).Msg("sweep: forecast unavailable")
		return nil
	}

	if len(days) < 2 {
		return nil
	}

	return &days[1]
}
