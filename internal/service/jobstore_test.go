package service

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
)

// setupTestRedis connects to TEST_REDIS_URL and skips the test when unset.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())
	require.NoError(t, client.FlushDB(ctx).Err())
	return client
}

func testJobStores(t *testing.T) map[string]JobStore {
	stores := map[string]JobStore{"memory": NewMemoryJobStore(time.Minute)}
	if os.Getenv("TEST_REDIS_URL") != "" {
		stores["redis"] = NewRedisJobStore(setupTestRedis(t), time.Minute)
	}
	return stores
}

func TestJobStoreCompleteIsCompareAndSet(t *testing.T) {
	for name, store := range testJobStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			job := &model.GenerationJob{
				ID:        "job-" + name,
				Kind:      model.JobKindProgress,
				Status:    model.JobStatusPending,
				CreatedAt: time.Now().UTC(),
				Progress:  &model.ProgressRequest{Timeframe: "3-months"},
			}
			require.NoError(t, store.Create(ctx, job))

			var completed atomic.Int32
			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					ok, err := store.Complete(ctx, job.ID, &model.GenerationResult{
						ProgressReport: &model.ProgressReport{Timeframe: "Last 3 Months"},
					}, time.Now().UTC())
					if err == nil && ok {
						completed.Add(1)
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, int32(1), completed.Load())

			got, err := store.Job(ctx, job.ID)
			require.NoError(t, err)
			assert.Equal(t, model.JobStatusReady, got.Status)
			require.NotNil(t, got.Result)
			assert.Equal(t, "Last 3 Months", got.Result.ProgressReport.Timeframe)
			assert.Equal(t, "3-months", got.Progress.Timeframe)
		})
	}
}

func TestRedisJobStoreKeepsTTL(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisJobStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &model.GenerationJob{ID: "ttl", Status: model.JobStatusPending}))
	ok, err := store.Complete(ctx, "ttl", &model.GenerationResult{}, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	ttl, err := client.TTL(ctx, redisJobPrefix+"ttl").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	_, err = store.Job(ctx, "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}
