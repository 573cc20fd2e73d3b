package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gastropos/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueComprobantes = "jobs:comprobantes"
	QueueEmail        = "jobs:email"

	JobComprobantePDF = "comprobante_pdf"
	JobEmail          = "email"
)

// Job is the envelope stored in the Redis lists.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Handler processes one job payload. A returned error schedules a retry
// unless it is wrapped with Permanent.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

type permanentError struct{ err error }

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// Permanent marks a failure that retrying cannot fix.
func Permanent(err error) error { return permanentError{err: err} }

func isPermanent(err error) bool {
	var p permanentError
	return errors.As(err, &p)
}

// ── Dispatcher ────────────────────────────────────────────────────────────────

// Dispatcher pushes jobs onto the Redis lists consumed by the Pool. A nil
// Dispatcher (or one without a client) drops jobs silently.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// ComprobanteJobPayload identifies the invoice whose PDF must be rendered.
type ComprobanteJobPayload struct {
	ComprobanteID string `json:"comprobante_id"`
}

func (d *Dispatcher) EnqueueComprobantePDF(ctx context.Context, comprobanteID uuid.UUID) error {
	return d.enqueue(ctx, QueueComprobantes, JobComprobantePDF, ComprobanteJobPayload{ComprobanteID: comprobanteID.String()})
}

func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload EmailJobPayload) error {
	return d.enqueue(ctx, QueueEmail, JobEmail, payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	if d == nil || d.rdb == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return d.push(ctx, queue, Job{Type: jobType, Payload: data})
}

func (d *Dispatcher) push(ctx context.Context, queue string, job Job) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// ── Pool ──────────────────────────────────────────────────────────────────────

// Pool runs N goroutines blocking on BRPOP over every registered queue.
type Pool struct {
	rdb         *redis.Client
	dispatcher  *Dispatcher
	handlers    map[string]Handler
	queues      map[string]string
	maxAttempts int
	wg          sync.WaitGroup
}

func NewPool(rdb *redis.Client, maxAttempts int) *Pool {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Pool{
		rdb:         rdb,
		dispatcher:  NewDispatcher(rdb),
		handlers:    make(map[string]Handler),
		queues:      make(map[string]string),
		maxAttempts: maxAttempts,
	}
}

// Register binds a job type to its queue and handler.
func (p *Pool) Register(queue, jobType string, h Handler) {
	p.handlers[jobType] = h
	p.queues[jobType] = queue
}

// Start launches numWorkers consumers. They stop when ctx is cancelled;
// Wait blocks until they have.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	seen := make(map[string]bool)
	var queues []string
	for _, q := range p.queues {
		if !seen[q] {
			seen[q] = true
			queues = append(queues, q)
		}
	}
	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i, queues)
	}
	log.Info().Int("workers", numWorkers).Strs("queues", queues).Msg("worker pool started")
}

func (p *Pool) Wait() { p.wg.Wait() }

func (p *Pool) run(ctx context.Context, id int, queues []string) {
	defer p.wg.Done()
	for {
		if ctx.Err() != nil {
			log.Info().Int("worker", id).Msg("worker shutting down")
			return
		}
		// waits up to 5s then loops to check ctx
		result, err := p.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				log.Warn().Err(err).Int("worker", id).Msg("brpop failed")
				time.Sleep(time.Second)
			}
			continue
		}
		if len(result) < 2 {
			continue
		}
		p.process(ctx, result[0], result[1])
	}
}

// process runs one raw job. Failures are re-queued with Attempts+1 until
// maxAttempts, then moved to the dead letter queue.
func (p *Pool) process(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		infra.JobsProcessed.WithLabelValues("unknown", "invalid").Inc()
		return
	}
	h, ok := p.handlers[job.Type]
	if !ok {
		log.Error().Str("queue", queue).Str("type", job.Type).Msg("no handler for job type")
		infra.JobsProcessed.WithLabelValues(job.Type, "invalid").Inc()
		return
	}

	job.Attempts++
	err := h.Process(ctx, job.Payload)
	switch {
	case err == nil:
		infra.JobsProcessed.WithLabelValues(job.Type, "ok").Inc()
	case isPermanent(err):
		log.Error().Err(err).Str("type", job.Type).Msg("job failed permanently")
		infra.JobsProcessed.WithLabelValues(job.Type, "dropped").Inc()
	case job.Attempts >= p.maxAttempts:
		infra.JobsProcessed.WithLabelValues(job.Type, "dlq").Inc()
		if berr := p.bury(ctx, queue, job, err); berr != nil {
			log.Error().Err(berr).AnErr("cause", err).Str("queue", queue).Msg("failed to park job")
		}
	default:
		infra.JobsProcessed.WithLabelValues(job.Type, "retry").Inc()
		log.Warn().Err(err).Str("type", job.Type).Int("attempt", job.Attempts).Msg("job failed, re-queued")
		if perr := p.dispatcher.push(ctx, queue, job); perr != nil {
			log.Error().Err(perr).Str("queue", queue).Msg("failed to re-queue job")
		}
	}
}
