package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/kisanmitra/weather-engine/internal/config"
	deliveryhandler "github.com/kisanmitra/weather-engine/internal/rabbitmq/handlers/delivery"
	"github.com/kisanmitra/weather-engine/internal/rabbitmq/queue"
	advisoryrepo "github.com/kisanmitra/weather-engine/internal/repository/advisory"
	alertrepo "github.com/kisanmitra/weather-engine/internal/repository/alert"
	farmerrepo "github.com/kisanmitra/weather-engine/internal/repository/farmer"
	inapprepo "github.com/kisanmitra/weather-engine/internal/repository/inapp"
	"github.com/kisanmitra/weather-engine/internal/scheduler"
	advisorysvc "github.com/kisanmitra/weather-engine/internal/service/advisory"
	alertsvc "github.com/kisanmitra/weather-engine/internal/service/alert"
	cleanupsvc "github.com/kisanmitra/weather-engine/internal/service/cleanup"
	notifysvc "github.com/kisanmitra/weather-engine/internal/service/notify"
	sweepsvc "github.com/kisanmitra/weather-engine/internal/service/sweep"
	"github.com/kisanmitra/weather-engine/internal/worker"
	"github.com/kisanmitra/weather-engine/pkg/crops"
	"github.com/kisanmitra/weather-engine/pkg/email"
	"github.com/kisanmitra/weather-engine/pkg/openweather"
	"github.com/kisanmitra/weather-engine/pkg/textgen"
)

// advisoryCache exposes the TTL-capable Set of the go-redis client embedded
// in wbf's wrapper; the wrapper's own three-argument Set shadows it, so the
// method the advisory service's cache interface needs is forwarded explicitly.
type advisoryCache struct {
	*redis.Client
}

func (c advisoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	return c.Client.Client.Set(ctx, key, value, expiration)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDeliveryQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	weatherClient := openweather.NewClient(
		cfg.Weather.APIKey,
		cfg.Weather.BaseURL,
		cfg.Weather.GeoURL,
		cfg.Weather.Timeout,
	)

	farmers := farmerrepo.NewRepository(db)
	alerts := alertrepo.NewRepository(db)
	advisories := advisoryrepo.NewRepository(db)
	notifications := inapprepo.NewRepository(db)

	mapper := crops.NewMapper()
	notifier := notifysvc.NewService(notifications, q, cfg.Retry)

	// A missing or broken AI collaborator is not fatal: the engine keeps
	// running on fallback text.
	alertSvc := alertsvc.NewService(alerts, nil, notifier, cfg.Engine.DedupWindow, cfg.AI.Timeout)
	advisorySvc := advisorysvc.NewService(farmers, advisories, weatherClient, mapper, nil, advisoryCache{rdb}, cfg.Retry, cfg.Engine.FetchTimeout)

	if cfg.AI.Provider != "" {
		gen, genErr := textgen.New(ctx, textgen.Config{
			Provider: cfg.AI.Provider,
			Model:    cfg.AI.Model,
			APIKey:   cfg.AI.APIKey,
			BaseURL:  cfg.AI.BaseURL,
			Timeout:  cfg.AI.Timeout,
		})
		if genErr != nil {
			zlog.Logger.Warn().Err(genErr).Msg("text generator unavailable, using fallback text only")
		} else {
			alertSvc = alertsvc.NewService(alerts, gen, notifier, cfg.Engine.DedupWindow, cfg.AI.Timeout)
			advisorySvc = advisorysvc.NewService(farmers, advisories, weatherClient, mapper, gen, advisoryCache{rdb}, cfg.Retry, cfg.Engine.FetchTimeout)
		}
	}

	sweepSvc := sweepsvc.NewService(
		farmers,
		weatherClient,
		alertSvc,
		cfg.Engine.BatchSize,
		cfg.Engine.BatchPause,
		cfg.Engine.FetchTimeout,
	)
	cleanupSvc := cleanupsvc.NewService(
		alerts,
		advisories,
		cfg.Engine.AlertRetention,
		cfg.Engine.AdvisoryRetention,
	)

	messageHandler := deliveryhandler.NewHandler(emailClient, notifications)
	dispatcher := worker.NewDispatcher(q, messageHandler)

	go dispatcher.Run(ctx, cfg.Retry, cfg.Workers.Count)

	sched := scheduler.New(
		scheduler.Config{
			SweepSpec:    cfg.Engine.SweepCron,
			AdvisorySpec: cfg.Engine.AdvisoryCron,
			CleanupSpec:  cfg.Engine.CleanupCron,
		},
		func(ctx context.Context) { sweepSvc.Run(ctx) },
		func(ctx context.Context) { advisorySvc.RunDaily(ctx) },
		func(ctx context.Context) {
			if _, err := cleanupSvc.Run(ctx); err != nil {
				zlog.Logger.Error().Err(err).Msg("cleanup run failed")
			}
		},
	)

	if err := sched.Start(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to start scheduler")
	}

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	sched.Stop()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
