package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webstats-service/internal/config"
	"webstats-service/internal/logger"
	platformpg "webstats-service/internal/platform/postgres"

	recordsHttp "webstats-service/internal/records/adapters/http/fiber"
	recordsRepoPg "webstats-service/internal/records/adapters/postgres"
	recordsUsecase "webstats-service/internal/records/core/usecase"

	statsFetcher "webstats-service/internal/webstats/adapters/fetcher"
	statsHttp "webstats-service/internal/webstats/adapters/http/fiber"
	statsRepoPg "webstats-service/internal/webstats/adapters/postgres"
	statsPorts "webstats-service/internal/webstats/core/ports"
	statsUsecase "webstats-service/internal/webstats/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "webstats-service/docs"
)

// @title Webstats Service API
// @version 1.0
// @description Aggregates per-website chat statistics.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.LogLevel)

	// Remote source
	fetcher := statsFetcher.NewHTTPFetcher(cfg.StatsURL, statsFetcher.NewFastHTTPGetter(cfg.FetchTimeout), log)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger(log))

	// Optional storage
	var reader statsPorts.RecordReaderPort
	if cfg.StorageEnabled() {
		db, err := platformpg.Open(context.Background(), cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres unavailable")
		}
		defer db.Close()
		conn := platformpg.NewConn(db)

		recordRepository := recordsRepoPg.NewRecordRepository(conn)
		if err := recordRepository.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare schema")
		}
		reader = statsRepoPg.NewStatsRepository(conn)

		storeUC := recordsUsecase.NewStoreRecordUseCase(recordRepository)
		syncUC := recordsUsecase.NewSyncUseCase(fetcher, storeUC, log)

		recordsHandler := recordsHttp.NewRecordHandler(storeUC, syncUC)
		app.Post("/records", recordsHandler.CreateRecord)
		app.Post("/records/bulk", recordsHandler.BulkCreateRecords)
		app.Post("/records/sync", recordsHandler.SyncRecords)
	} else {
		log.Info().Msg("POSTGRES_DSN is not set, storage endpoints disabled")
	}

	summarizeUC := statsUsecase.NewSummarizeUseCase(fetcher, reader)
	summaryHandler := statsHttp.NewSummaryHandler(summarizeUC)
	app.Get("/summary", summaryHandler.GetSummary)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("stats_url", cfg.StatsURL).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
