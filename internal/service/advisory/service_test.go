package advisory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/kisanmitra/weather-engine/internal/mocks/service/advisory"
	"github.com/kisanmitra/weather-engine/internal/model"
	"github.com/kisanmitra/weather-engine/pkg/textgen"
)

type advisoryMocks struct {
	farmers *mocks.MockfarmerRepository
	repo    *mocks.MockadvisoryRepository
	weather *mocks.MockweatherProvider
	mapper  *mocks.MockcropMapper
	gen     *mocks.MocktextGenerator
	cache   *mocks.Mockcache
}

func newAdvisoryMocks(ctrl *gomock.Controller) advisoryMocks {
	return advisoryMocks{
		farmers: mocks.NewMockfarmerRepository(ctrl),
		repo:    mocks.NewMockadvisoryRepository(ctrl),
		weather: mocks.NewMockweatherProvider(ctrl),
		mapper:  mocks.NewMockcropMapper(ctrl),
		gen:     mocks.NewMocktextGenerator(ctrl),
		cache:   mocks.NewMockcache(ctrl),
	}
}

func testStrategy() retry.Strategy {
	return retry.Strategy{Attempts: 1, Delay: time.Millisecond}
}

func calmReading() model.WeatherReading {
	return model.WeatherReading{
		Timestamp:    time.Now(),
		TemperatureC: 28,
		Condition:    model.WeatherClear,
	}
}

func rainyReading() model.WeatherReading {
	return model.WeatherReading{
		Timestamp:       time.Now().Add(24 * time.Hour),
		TemperatureC:    24,
		Condition:       model.WeatherRain,
		PrecipitationMM: 18,
	}
}

func markerSet(m advisoryMocks) *gomock.Call {
	return m.cache.EXPECT().
		Set(gomock.Any(), gomock.Any(), "done", 48*time.Hour).
		Return(redis.NewStatusResult("OK", nil))
}

func TestService_GenerateForFarmer_SkipsOnCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, m.gen, m.cache, testStrategy(), time.Second)

	farmer := model.Farmer{ID: uuid.New(), State: "Punjab"}

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("done", nil)

	res, err := svc.GenerateForFarmer(context.Background(), farmer, calmReading(), nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, res.Status)
}

func TestService_GenerateForFarmer_SkipsWhenStoredToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, m.gen, m.cache, testStrategy(), time.Second)

	farmer := model.Farmer{ID: uuid.New(), State: "Punjab"}

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	m.repo.EXPECT().ExistsForDate(gomock.Any(), farmer.ID, gomock.Any()).Return(true, nil)
	markerSet(m)

	res, err := svc.GenerateForFarmer(context.Background(), farmer, calmReading(), nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, res.Status)
}

func TestService_GenerateForFarmer_GeneratedAdvisory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, m.gen, m.cache, testStrategy(), time.Second)

	farmer := model.Farmer{ID: uuid.New(), State: "Punjab", Language: "hi", Crops: []string{"wheat"}}
	crops := []model.Crop{{Name: "wheat", LocalName: "गेहूं", WaterRequirement: "medium"}}
	nextDay := rainyReading()

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	m.repo.EXPECT().ExistsForDate(gomock.Any(), farmer.ID, gomock.Any()).Return(false, nil)
	m.mapper.EXPECT().GetRecommendedCrops("Punjab", []string{"wheat"}).Return(crops)
	m.gen.EXPECT().GenerateAdvisory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req textgen.AdvisoryRequest) (textgen.AdvisoryText, error) {
			require.NotNil(t, req.NextDay)
			assert.Equal(t, model.WeatherRain, req.NextDay.Condition)
			return textgen.AdvisoryText{
				PrimaryAdvice: "सिंचाई सुबह करें।",
				Tips:          []string{"मिट्टी की नमी जांचें"},
			}, nil
		},
	)
	m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Advisory) (uuid.UUID, error) {
			assert.Equal(t, farmer.ID, a.FarmerID)
			assert.Equal(t, "सिंचाई सुबह करें।", a.PrimaryAdvice)
			assert.Equal(t, []string{"wheat"}, a.Crops)
			assert.Equal(t, model.ProvenanceAI, a.Provenance)
			assert.Contains(t, a.WeatherSummary, "tomorrow")
			return uuid.New(), nil
		},
	)
	markerSet(m)

	res, err := svc.GenerateForFarmer(context.Background(), farmer, calmReading(), &nextDay)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, res.Status)
	assert.Equal(t, model.ProvenanceAI, res.Provenance)
}

func TestService_GenerateForFarmer_FallbackOnGeneratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, m.gen, m.cache, testStrategy(), time.Second)

	farmer := model.Farmer{ID: uuid.New(), State: "Punjab"}

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	m.repo.EXPECT().ExistsForDate(gomock.Any(), farmer.ID, gomock.Any()).Return(false, nil)
	m.mapper.EXPECT().GetRecommendedCrops(gomock.Any(), gomock.Any()).Return(nil)
	m.gen.EXPECT().GenerateAdvisory(gomock.Any(), gomock.Any()).
		Return(textgen.AdvisoryText{}, errors.New("model timeout"))
	m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Advisory) (uuid.UUID, error) {
			assert.Equal(t, model.ProvenanceFallback, a.Provenance)
			assert.NotEmpty(t, a.PrimaryAdvice)
			return uuid.New(), nil
		},
	)
	markerSet(m)

	res, err := svc.GenerateForFarmer(context.Background(), farmer, calmReading(), nil)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, res.Status)
	assert.Equal(t, model.ProvenanceFallback, res.Provenance)
	assert.NotEmpty(t, res.Reason)
}

func TestService_GenerateForFarmer_NextDayRainDrivesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, nil, m.cache, testStrategy(), time.Second)

	farmer := model.Farmer{ID: uuid.New(), State: "Punjab"}
	nextDay := rainyReading()

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	m.repo.EXPECT().ExistsForDate(gomock.Any(), farmer.ID, gomock.Any()).Return(false, nil)
	m.mapper.EXPECT().GetRecommendedCrops(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Advisory) (uuid.UUID, error) {
			assert.Contains(t, a.WeatherSummary, "tomorrow")
			assert.Contains(t, strings.ToLower(a.PrimaryAdvice), "tomorrow")
			return uuid.New(), nil
		},
	)
	markerSet(m)

	res, err := svc.GenerateForFarmer(context.Background(), farmer, calmReading(), &nextDay)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, res.Status)
	assert.Equal(t, model.ProvenanceFallback, res.Provenance)
}

func TestService_GenerateForFarmer_UpsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, nil, m.cache, testStrategy(), time.Second)

	farmer := model.Farmer{ID: uuid.New(), State: "Punjab"}

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	m.repo.EXPECT().ExistsForDate(gomock.Any(), farmer.ID, gomock.Any()).Return(false, nil)
	m.mapper.EXPECT().GetRecommendedCrops(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db down"))

	_, err := svc.GenerateForFarmer(context.Background(), farmer, calmReading(), nil)
	assert.Error(t, err)
}

func TestService_RunDaily_ClustersShareOneFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, nil, m.cache, testStrategy(), time.Second)

	lat, lon := 30.90, 75.85
	farmers := []model.Farmer{
		{ID: uuid.New(), State: "Punjab", Latitude: &lat, Longitude: &lon},
		{ID: uuid.New(), State: "Punjab", Latitude: &lat, Longitude: &lon},
	}

	m.farmers.EXPECT().ListActive(gomock.Any()).Return(farmers, nil)
	// two farmers in one coordinate cluster cost a single pair of weather calls
	m.weather.EXPECT().Current(gomock.Any(), lat, lon).Return(calmReading(), nil).Times(1)
	m.weather.EXPECT().Forecast(gomock.Any(), lat, lon, 2).
		Return([]model.WeatherReading{calmReading(), rainyReading()}, nil).Times(1)

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil).Times(2)
	m.repo.EXPECT().ExistsForDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	m.mapper.EXPECT().GetRecommendedCrops(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(2)
	markerSet(m).Times(2)

	svc.RunDaily(context.Background())
}

func TestService_RunDaily_ForecastUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, nil, m.cache, testStrategy(), time.Second)

	lat, lon := 30.90, 75.85
	farmers := []model.Farmer{
		{ID: uuid.New(), State: "Punjab", Latitude: &lat, Longitude: &lon},
	}

	m.farmers.EXPECT().ListActive(gomock.Any()).Return(farmers, nil)
	m.weather.EXPECT().Current(gomock.Any(), lat, lon).Return(calmReading(), nil)
	m.weather.EXPECT().Forecast(gomock.Any(), lat, lon, 2).
		Return(nil, errors.New("upstream 503"))

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	m.repo.EXPECT().ExistsForDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	m.mapper.EXPECT().GetRecommendedCrops(gomock.Any(), gomock.Any()).Return(nil)
	// advisory still generates from the current reading alone
	m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Advisory) (uuid.UUID, error) {
			assert.NotContains(t, a.WeatherSummary, "tomorrow")
			assert.NotEmpty(t, a.PrimaryAdvice)
			return uuid.New(), nil
		},
	)
	markerSet(m)

	svc.RunDaily(context.Background())
}

func TestService_RunDaily_SkipsUnresolvableFarmer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAdvisoryMocks(ctrl)
	svc := NewService(m.farmers, m.repo, m.weather, m.mapper, nil, m.cache, testStrategy(), time.Second)

	farmers := []model.Farmer{
		{ID: uuid.New(), State: "Nowhere", District: "Lost"},
	}

	m.farmers.EXPECT().ListActive(gomock.Any()).Return(farmers, nil)
	m.weather.EXPECT().Geocode(gomock.Any(), "Lost, Nowhere").Return(0.0, 0.0, errors.New("not found"))

	svc.RunDaily(context.Background())
}
