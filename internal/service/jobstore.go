package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/templui/fittrack/internal/model"
)

var ErrJobNotFound = errors.New("generation job not found")

// JobStore holds generation jobs until they expire.
type JobStore interface {
	Create(ctx context.Context, job *model.GenerationJob) error
	Job(ctx context.Context, id string) (*model.GenerationJob, error)
	// Complete moves a pending job to ready with result. It reports false
	// when the job was already ready, so a job completes at most once.
	Complete(ctx context.Context, id string, result *model.GenerationResult, at time.Time) (bool, error)
}

// NewJobStore returns a Redis-backed store when redisURL is set, an
// in-process store otherwise.
func NewJobStore(ctx context.Context, redisURL string, ttl time.Duration) (JobStore, error) {
	if redisURL == "" {
		return NewMemoryJobStore(ttl), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = client.Ping(pingCtx).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisJobStore(client, ttl), nil
}

type memoryEntry struct {
	job       model.GenerationJob
	expiresAt time.Time
}

type memoryJobStore struct {
	mu   sync.Mutex
	jobs map[string]*memoryEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryJobStore(ttl time.Duration) JobStore {
	return &memoryJobStore{
		jobs: make(map[string]*memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *memoryJobStore) Create(_ context.Context, job *model.GenerationJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	s.jobs[job.ID] = &memoryEntry{job: *job, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *memoryJobStore) Job(_ context.Context, id string) (*model.GenerationJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.jobs[id]
	if !ok || s.now().After(entry.expiresAt) {
		return nil, ErrJobNotFound
	}
	job := entry.job
	return &job, nil
}

func (s *memoryJobStore) Complete(_ context.Context, id string, result *model.GenerationResult, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.jobs[id]
	if !ok {
		return false, ErrJobNotFound
	}
	if entry.job.Status != model.JobStatusPending {
		return false, nil
	}

	entry.job.Status = model.JobStatusReady
	entry.job.ReadyAt = &at
	entry.job.Result = result
	return true, nil
}

// sweep drops expired jobs. Callers hold mu.
func (s *memoryJobStore) sweep(now time.Time) {
	for id, entry := range s.jobs {
		if now.After(entry.expiresAt) {
			delete(s.jobs, id)
		}
	}
}

const redisJobPrefix = "fittrack:job:"

// maxCompleteRetries bounds optimistic-lock retries in Complete.
const maxCompleteRetries = 5

type redisJobStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisJobStore(client *redis.Client, ttl time.Duration) JobStore {
	return &redisJobStore{client: client, ttl: ttl}
}

func (s *redisJobStore) Create(ctx context.Context, job *model.GenerationJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	err = s.client.Set(ctx, redisJobPrefix+job.ID, data, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store job: %w", err)
	}
	return nil
}

func (s *redisJobStore) Job(ctx context.Context, id string) (*model.GenerationJob, error) {
	data, err := s.client.Get(ctx, redisJobPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job model.GenerationJob
	err = json.Unmarshal(data, &job)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}

func (s *redisJobStore) Complete(ctx context.Context, id string, result *model.GenerationResult, at time.Time) (bool, error) {
	key := redisJobPrefix + id
	completed := false

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrJobNotFound
		}
		if err != nil {
			return err
		}

		var job model.GenerationJob
		err = json.Unmarshal(data, &job)
		if err != nil {
			return fmt.Errorf("failed to unmarshal job: %w", err)
		}
		if job.Status != model.JobStatusPending {
			return nil
		}

		job.Status = model.JobStatusReady
		job.ReadyAt = &at
		job.Result = result
		updated, err := json.Marshal(&job)
		if err != nil {
			return fmt.Errorf("failed to marshal job: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, redis.KeepTTL)
			return nil
		})
		if err == nil {
			completed = true
		}
		return err
	}

	for range maxCompleteRetries {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return completed, err
	}
	return false, fmt.Errorf("failed to complete job %s: too many concurrent updates", id)
}
