package worker

// Scheduled sweep that re-queues invoices still missing a PDF, so a render
// lost to a crash or a Redis outage is eventually produced.

import (
	"context"
	"time"

	"gastropos/internal/model"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	retryBatchSize = 50
	// invoices younger than this are still owned by their original job
	retryGrace = time.Minute
)

// ComprobantesSinPDF lists invoices whose PDF has not been rendered yet.
type ComprobantesSinPDF interface {
	ListSinPDF(ctx context.Context, maxAttempts, limit int) ([]model.Comprobante, error)
}

// PDFQueue is the part of the Dispatcher the sweep needs.
type PDFQueue interface {
	EnqueueComprobantePDF(ctx context.Context, comprobanteID uuid.UUID) error
}

type RetryCronConfig struct {
	Repo        ComprobantesSinPDF
	Queue       PDFQueue
	Location    *time.Location
	Every       string // gocron interval, e.g. "1m"
	MaxAttempts int
	Now         func() time.Time
}

// StartRetryCron schedules the sweep and stops the scheduler when ctx ends.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) (*gocron.Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	s := gocron.NewScheduler(cfg.Location)
	if _, err := s.Every(cfg.Every).SingletonMode().Do(func() { sweepSinPDF(ctx, cfg) }); err != nil {
		return nil, err
	}
	s.StartAsync()
	log.Info().Str("every", cfg.Every).Msg("retry_cron: started")

	go func() {
		<-ctx.Done()
		s.Stop()
		log.Info().Msg("retry_cron: stopped")
	}()
	return s, nil
}

// sweepSinPDF re-queues every invoice past the grace period that has no PDF
// and has not exhausted its render attempts. Returns how many were queued.
func sweepSinPDF(ctx context.Context, cfg RetryCronConfig) int {
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	pendientes, err := cfg.Repo.ListSinPDF(ctx, cfg.MaxAttempts, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to list invoices without pdf")
		return 0
	}
	cutoff := now().Add(-retryGrace)
	queued := 0
	for _, c := range pendientes {
		if c.FechaEmision.After(cutoff) {
			continue
		}
		if err := cfg.Queue.EnqueueComprobantePDF(ctx, c.ID); err != nil {
			log.Error().Err(err).Str("invoice_id", c.ID.String()).Msg("retry_cron: enqueue failed")
			continue
		}
		queued++
	}
	if queued > 0 {
		log.Info().Int("count", queued).Msg("retry_cron: invoices re-queued for pdf")
	}
	return queued
}
