package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DLQPrefix namespaces the dead letter list of each queue: dlq:jobs:email.
const DLQPrefix = "dlq:"

// DeadJob is a job that ran out of attempts, kept with the envelope it was
// last queued with so it can be pushed back verbatim once the cause is fixed.
type DeadJob struct {
	Queue    string    `json:"queue"`
	Job      Job       `json:"job"`
	Cause    string    `json:"cause"`
	FailedAt time.Time `json:"failed_at"`
}

func newDeadJob(queue string, job Job, cause error, at time.Time) DeadJob {
	return DeadJob{Queue: queue, Job: job, Cause: cause.Error(), FailedAt: at.UTC()}
}

// bury parks job in the queue's dead letter list.
func (p *Pool) bury(ctx context.Context, queue string, job Job, cause error) error {
	dead := newDeadJob(queue, job, fmt.Errorf("gave up after %d attempts: %w", job.Attempts, cause), time.Now())
	data, err := json.Marshal(dead)
	if err != nil {
		return fmt.Errorf("encode dead job: %w", err)
	}
	if err := p.rdb.LPush(ctx, DLQPrefix+queue, data).Err(); err != nil {
		return fmt.Errorf("push %s%s: %w", DLQPrefix, queue, err)
	}
	log.Warn().Str("queue", queue).Str("type", job.Type).Int("attempts", job.Attempts).
		Str("cause", dead.Cause).Msg("job parked in dead letter queue")
	return nil
}

// DLQLength reports how many jobs of queue are parked; /health shows it.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}

// DeadJobs returns up to limit parked jobs of queue, newest first.
func DeadJobs(ctx context.Context, rdb *redis.Client, queue string, limit int64) ([]DeadJob, error) {
	raws, err := rdb.LRange(ctx, DLQPrefix+queue, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]DeadJob, 0, len(raws))
	for _, raw := range raws {
		var d DeadJob
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			return nil, fmt.Errorf("decode dead job: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}
