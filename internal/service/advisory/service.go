// Package advisory generates the once-per-day farming advisory for every
// active farmer. Generation is idempotent per (farmer, date): reruns of the
// daily pass upsert rather than duplicate, and a redis marker plus a store
// check skip farmers already served today.
package advisory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kisanmitra/weather-engine/internal/model"
	"github.com/kisanmitra/weather-engine/pkg/textgen"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/advisory/mock.go -package=mocks

type farmerRepository interface {
	ListActive(ctx context.Context) ([]model.Farmer, error)
}

type advisoryRepository interface {
	Upsert(ctx context.Context, a model.Advisory) (uuid.UUID, error)
	ExistsForDate(ctx context.Context, farmerID uuid.UUID, date time.Time) (bool, error)
}

type weatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (model.WeatherReading, error)
	Forecast(ctx context.Context, lat, lon float64, days int) ([]model.WeatherReading, error)
	Geocode(ctx context.Context, place string) (float64, float64, error)
}

type cropMapper interface {
	GetRecommendedCrops(region string, grown []string) []model.Crop
}

type textGenerator interface {
	GenerateAdvisory(ctx context.Context, req textgen.AdvisoryRequest) (textgen.AdvisoryText, error)
}

type cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// markerTTL bounds the lifetime of the daily "already generated" marker.
// Two days comfortably outlives the marker's usefulness while keeping the
// keyspace from accumulating.
const markerTTL = 48 * time.Hour

// Status tells what the daily pass did for one farmer.
type Status string

const (
	StatusCreated Status = "created"
	StatusSkipped Status = "skipped"
)

// Result makes the generation outcome a first-class value: what happened,
// where the text came from, and why the non-happy branch was taken.
type Result struct {
	Status     Status
	Provenance model.Provenance
	Reason     string // filled for skips and fallbacks
}

type Service struct {
	farmers      farmerRepository
	repo         advisoryRepository
	weather      weatherProvider
	mapper       cropMapper
	generator    textGenerator // nil when the collaborator is not configured
	cache        cache
	strategy     retry.Strategy
	fetchTimeout time.Duration
}

func NewService(
	farmers farmerRepository,
	repo advisoryRepository,
	weather weatherProvider,
	mapper cropMapper,
	generator textGenerator,
	c cache,
	strategy retry.Strategy,
	fetchTimeout time.Duration,
) *Service {
	return &Service{
		farmers:      farmers,
		repo:         repo,
		weather:      weather,
		mapper:       mapper,
		generator:    generator,
		cache:        c,
		strategy:     strategy,
		fetchTimeout: fetchTimeout,
	}
}

// resolved is a farmer with usable coordinates.
type resolved struct {
	farmer   model.Farmer
	lat, lon float64
}

// RunDaily generates today's advisory for every active farmer. Farmers are
// grouped by rounded coordinates so each location cluster costs one weather
// fetch regardless of how many farmers share it.
func (s *Service) RunDaily(ctx context.Context) {
	farmers, err := s.farmers.ListActive(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("advisory pass: failed to list farmers")
		return
	}

	clusters := make(map[string][]resolved)
	for _, f := range farmers {
		lat, lon, err := s.locate(ctx, f)
		if err != nil {
			zlog.Logger.Warn().Err(err).
				Str("farmer_id", f.ID.String()).
				Msg("advisory pass: cannot resolve location, skipping farmer")
			continue
		}

		key := clusterKey(lat, lon)
		clusters[key] = append(clusters[key], resolved{farmer: f, lat: lat, lon: lon})
	}

	var created, skipped, failed int
	for _, members := range clusters {
		if ctx.Err() != nil {
			zlog.Logger.Info().Msg("advisory pass: canceled")
			return
		}

		// one fetch per cluster, fanned out to every member
		reading, err := s.fetchCurrent(ctx, members[0].lat, members[0].lon)
		if err != nil {
			zlog.Logger.Warn().Err(err).
				Int("farmers", len(members)).
				Msg("advisory pass: weather fetch failed, skipping cluster")
			failed += len(members)
			continue
		}

		nextDay := s.fetchNextDay(ctx, members[0].lat, members[0].lon)

		for _, m := range members {
			res, err := s.GenerateForFarmer(ctx, m.farmer, reading, nextDay)
			switch {
			case err != nil:
				failed++
				zlog.Logger.Error().Err(err).
					Str("farmer_id", m.farmer.ID.String()).
					Msg("advisory pass: generation failed")
			case res.Status == StatusSkipped:
				skipped++
			default:
				created++
			}
		}
	}

	zlog.Logger.Info().
		Int("created", created).
		Int("skipped", skipped).
		Int("failed", failed).
		Msg("advisory pass completed")
}

// GenerateForFarmer produces today's advisory for one farmer from an
// already-fetched reading and optional next-day forecast. It is safe to call
// repeatedly within a day.
func (s *Service) GenerateForFarmer(ctx context.Context, farmer model.Farmer, reading model.WeatherReading, nextDay *model.WeatherReading) (Result, error) {
	date := today()
	key := cacheKey(farmer.ID, date)

	if _, err := s.cache.GetWithRetry(ctx, s.strategy, key); err == nil {
		return Result{Status: StatusSkipped, Reason: "already generated today (cache)"}, nil
	} else if !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Msg("advisory cache read failed, falling through to store")
	}

	exists, err := s.repo.ExistsForDate(ctx, farmer.ID, date)
	if err != nil {
		return Result{}, fmt.Errorf("check existing advisory: %w", err)
	}
	if exists {
		s.markDone(ctx, key)
		return Result{Status: StatusSkipped, Reason: "already generated today"}, nil
	}

	crops := s.mapper.GetRecommendedCrops(farmer.State, farmer.Crops)
	text, provenance, reason := s.generateText(ctx, farmer, reading, nextDay, crops)

	cropNames := make([]string, 0, len(crops))
	for _, c := range crops {
		cropNames = append(cropNames, c.Name)
	}

	now := time.Now()
	advisory := model.Advisory{
		FarmerID:       farmer.ID,
		Date:           date,
		WeatherSummary: weatherSummary(reading, nextDay),
		Crops:          cropNames,
		PrimaryAdvice:  text.PrimaryAdvice,
		Tips:           text.Tips,
		Provenance:     provenance,
		ExpiresAt:      now.Add(24 * time.Hour),
	}

	if _, err := s.repo.Upsert(ctx, advisory); err != nil {
		return Result{}, fmt.Errorf("upsert advisory: %w", err)
	}

	s.markDone(ctx, key)

	return Result{Status: StatusCreated, Provenance: provenance, Reason: reason}, nil
}

// generateText asks the collaborator for a narrative and falls back to the
// deterministic sentence on any failure. The caller cannot tell the paths
// apart except by the provenance tag.
func (s *Service) generateText(
	ctx context.Context,
	farmer model.Farmer,
	reading model.WeatherReading,
	nextDay *model.WeatherReading,
	crops []model.Crop,
) (textgen.AdvisoryText, model.Provenance, string) {
	if s.generator == nil {
		return fallbackAdvice(reading, nextDay), model.ProvenanceFallback, "generator not configured"
	}

	genCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	text, err := s.generator.GenerateAdvisory(genCtx, textgen.AdvisoryRequest{
		Location: farmer.Place(),
		Language: farmer.Language,
		Weather:  reading,
		NextDay:  nextDay,
		Crops:    crops,
	})
	if err != nil {
		zlog.Logger.Warn().Err(err).
			Str("farmer_id", farmer.ID.String()).
			Msg("advisory generation failed, using fallback")
		return fallbackAdvice(reading, nextDay), model.ProvenanceFallback, err.Error()
	}

	return text, model.ProvenanceAI, ""
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

// fetchNextDay returns tomorrow's forecast reading or nil when the forecast
// is unavailable. The advisory still generates from the current reading alone.
func (s *Service) fetchNextDay(ctx context.Context, lat, lon float64) *model.WeatherReading {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	readings, err := s.weather.Forecast(fetchCtx, lat, lon, 2)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("advisory pass: forecast fetch failed, using current reading only")
		return nil
	}
	if len(readings) < 2 {
		return nil
	}

	return &readings[1]
}

func (s *Service) markDone(ctx context.Context, key string) {
	err := retry.Do(func() error {
		return s.cache.Set(ctx, key, "done", markerTTL).Err()
	}, s.strategy)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("key", key).Msg("failed to cache advisory marker")
	}
}

// clusterKey buckets coordinates to two decimals, roughly a kilometer, so
// nearby farms share one weather call.
func clusterKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f:%.2f", lat, lon)
}

func cacheKey(farmerID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("advisory:%s:%s", farmerID, date.Format("2006-01-02"))
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// weatherSummary folds the next-day outlook into the stored summary when a
// forecast was available.
func weatherSummary(r model.WeatherReading, nextDay *model.WeatherReading) string {
	if nextDay == nil {
		return r.Summary()
	}
	return fmt.Sprintf("%s; tomorrow: %s", r.Summary(), nextDay.Summary())
}

// fallbackAdvice is the deterministic rule-based advisory used when the
// generation collaborator is unavailable.
func fallbackAdvice(r model.WeatherReading, nextDay *model.WeatherReading) textgen.AdvisoryText {
	switch {
	case r.PrecipitationMM > 10 || r.Condition == model.WeatherRain || r.Condition == model.WeatherThunderstorm:
		return textgen.AdvisoryText{
			PrimaryAdvice: "Rain is expected today; avoid irrigation and check field drainage.",
			Tips: []string{
				"Postpone fertilizer application until fields dry",
				"Cover harvested produce",
			},
		}
	case r.TemperatureC > 35:
		return textgen.AdvisoryText{
			PrimaryAdvice: "High temperatures today; irrigate crops in the early morning or evening.",
			Tips: []string{
				"Mulch around plants to retain moisture",
				"Avoid field work during midday heat",
			},
		}
	case r.WindSpeedKmh > 25:
		return textgen.AdvisoryText{
			PrimaryAdvice: "Windy conditions today; secure supports for tall crops and delay spraying.",
			Tips: []string{
				"Check stakes and trellises",
			},
		}
	case nextDay != nil && (nextDay.PrecipitationMM > 10 || nextDay.Condition == model.WeatherRain || nextDay.Condition == model.WeatherThunderstorm):
		return textgen.AdvisoryText{
			PrimaryAdvice: "Rain is expected tomorrow; finish spraying and harvesting today and skip irrigation.",
			Tips: []string{
				"Move harvested produce under cover",
				"Clear field drainage channels",
			},
		}
	default:
		return textgen.AdvisoryText{
			PrimaryAdvice: "Weather is favorable today; proceed with regular field operations.",
			Tips: []string{
				"Inspect crops for pests",
				"Plan irrigation according to soil moisture",
			},
		}
	}
}
