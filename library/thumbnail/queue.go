// Package thumbnail derives fixed-width raster variants of uploaded images.
// Uploads enqueue a job; a background worker consumes jobs one at a time and
// writes each variant next to the original content.
package thumbnail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Job is a single unit of thumbnail work, enqueued once per non-folder
// upload.
type Job struct {
	UserID int64 `json:"userId"`
	FileID int64 `json:"fileId"`
}

// Queue delivers each enqueued job to exactly one consumer. Enqueue is
// fire-and-forget relative to the upload request; Dequeue blocks until a job
// is available or ctx is cancelled.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Dequeue(ctx context.Context) (Job, error)
}

const redisQueueKey = "file_queue"

type redisQueue struct {
	rdb *redis.Client
}

// NewRedisQueue backs the queue with a Redis list so that multiple worker
// processes claim disjoint jobs.
func NewRedisQueue(rdb *redis.Client) Queue {
	return &redisQueue{rdb: rdb}
}

func (q *redisQueue) Enqueue(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	return q.rdb.LPush(ctx, redisQueueKey, payload).Err()
}

func (q *redisQueue) Dequeue(ctx context.Context) (Job, error) {
	var job Job
	result, err := q.rdb.BRPop(ctx, 0, redisQueueKey).Result()
	if err != nil {
		return job, err
	}
	// BRPOP returns [key, value].
	if len(result) != 2 {
		return job, errors.New("unexpected BRPOP reply")
	}
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return job, fmt.Errorf("failed to decode job: %w", err)
	}
	return job, nil
}

type memoryQueue struct {
	jobs chan Job
}

// NewMemoryQueue is a channel-backed queue for tests and Redis-less
// deployments. Enqueue fails when the buffer is full rather than blocking
// the upload path.
func NewMemoryQueue(size int) Queue {
	return &memoryQueue{jobs: make(chan Job, size)}
}

func (q *memoryQueue) Enqueue(_ context.Context, job Job) error {
	select {
	case q.jobs <- job:
		return nil
	default:
		return errors.New("job queue is full")
	}
}

func (q *memoryQueue) Dequeue(ctx context.Context) (Job, error) {
	select {
	case job := <-q.jobs:
		return job, nil
	case <-ctx.Done():
		return Job{}, ctx.Err()
	}
}
