package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/fittrack/internal/metrics"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

// completeTimeout bounds the store write that flips a job to ready.
const completeTimeout = 10 * time.Second

// AIService runs the placeholder generation panels: a validated form starts
// a pending job which turns ready once, after a fixed delay.
type AIService struct {
	store     JobStore
	generator *Generator
	delay     time.Duration
	now       func() time.Time
}

func NewAIService(store JobStore, generator *Generator, delay time.Duration) *AIService {
	return &AIService{
		store:     store,
		generator: generator,
		delay:     delay,
		now:       time.Now,
	}
}

// Delay is how long a job stays pending.
func (s *AIService) Delay() time.Duration {
	return s.delay
}

func (s *AIService) StartWorkoutPlan(ctx context.Context, req model.WorkoutPlanRequest) (*model.GenerationJob, error) {
	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}
	return s.start(ctx, &model.GenerationJob{Kind: model.JobKindWorkoutPlan, Workout: &req})
}

func (s *AIService) StartNutrition(ctx context.Context, req model.NutritionRequest) (*model.GenerationJob, error) {
	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}
	return s.start(ctx, &model.GenerationJob{Kind: model.JobKindNutrition, Nutrition: &req})
}

func (s *AIService) StartProgressAnalysis(ctx context.Context, req model.ProgressRequest) (*model.GenerationJob, error) {
	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}
	return s.start(ctx, &model.GenerationJob{Kind: model.JobKindProgress, Progress: &req})
}

func (s *AIService) Job(ctx context.Context, id string) (*model.GenerationJob, error) {
	return s.store.Job(ctx, id)
}

func (s *AIService) start(ctx context.Context, job *model.GenerationJob) (*model.GenerationJob, error) {
	job.ID = uuid.New().String()
	job.Status = model.JobStatusPending
	job.CreatedAt = s.now()

	err := s.store.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	metrics.TrackJobStarted(job.Kind)

	result := s.generator.Result(job)
	time.AfterFunc(s.delay, func() {
		_, err := s.complete(job.ID, job.Kind, result)
		if err != nil {
			slog.Error("failed to complete generation job", "error", err, "job_id", job.ID, "kind", job.Kind)
		}
	})

	slog.Debug("generation job started", "job_id", job.ID, "kind", job.Kind, "delay", s.delay)
	return job, nil
}

func (s *AIService) complete(id, kind string, result *model.GenerationResult) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), completeTimeout)
	defer cancel()

	ok, err := s.store.Complete(ctx, id, result, s.now())
	if err != nil {
		return false, err
	}
	if ok {
		metrics.TrackJobCompleted(kind)
		slog.Debug("generation job ready", "job_id", id, "kind", kind)
	}
	return ok, nil
}
