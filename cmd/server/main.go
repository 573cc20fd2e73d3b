package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gastropos/internal/config"
	"gastropos/internal/infra"
	"gastropos/internal/router"
	"gastropos/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		// the POS keeps selling without Redis; PDFs render on first download
		log.Warn().Err(err).Msg("redis unavailable, job queue and product cache disabled")
		rdb = nil
	}

	app, err := router.New(cfg, db, rdb)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Worker handlers are wired here (composition root).
	var pool *worker.Pool
	if rdb != nil {
		pool = worker.NewPool(rdb, cfg.JobMaxAttempts)

		var emails worker.EmailQueue
		var sender worker.Sender
		if mailer := infra.NewMailer(cfg); mailer != nil {
			emails = app.Dispatcher
			sender = mailer
		}
		pool.Register(worker.QueueComprobantes, worker.JobComprobantePDF,
			worker.NewFacturacionWorker(app.Facturacion, emails, cfg.PDFStoragePath, cfg.BusinessName))
		pool.Register(worker.QueueEmail, worker.JobEmail,
			worker.NewEmailWorker(sender, infra.NewCircuitBreaker(infra.DefaultCBConfig("smtp"))))
		pool.Start(ctx, cfg.WorkerPoolSize)

		if _, err := worker.StartRetryCron(ctx, worker.RetryCronConfig{
			Repo:        app.Comprobantes,
			Queue:       app.Dispatcher,
			Location:    app.Location,
			Every:       cfg.PDFRetryCron,
			MaxAttempts: cfg.JobMaxAttempts,
		}); err != nil {
			log.Fatal().Err(err).Str("every", cfg.PDFRetryCron).Msg("failed to schedule pdf retry cron")
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("GastroPOS backend listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	cancel()
	if pool != nil {
		pool.Wait()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info().Msg("server exited")
}

// setupLogger: dev pretty console, prod JSON.
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.IsProduction() {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
