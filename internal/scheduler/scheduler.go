package scheduler

import (
	"context"
	"sync"
	"time"

	"readme-be/internal/config"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/service"
)

// Scheduler drives the two nightly batch jobs: the tagging queue first, then
// recommendation refresh once newly tagged books can influence rankings. Both
// run at fixed UTC hours; a missed tick (process down) simply waits for the
// next day.
type Scheduler struct {
	cfg            config.SchedulerConfig
	tagging        service.ITaggingService
	recommendation service.IRecommendationService
	log            logger.ILogger

	mu      sync.Mutex
	running map[string]bool
	next    map[string]time.Time
}

func New(
	cfg config.SchedulerConfig,
	tagging service.ITaggingService,
	recommendation service.IRecommendationService,
	log logger.ILogger,
) *Scheduler {
	return &Scheduler{
		cfg:            cfg,
		tagging:        tagging,
		recommendation: recommendation,
		log:            log,
		running:        make(map[string]bool),
		next:           make(map[string]time.Time),
	}
}

const (
	jobTagging        = "tagging"
	jobRecommendation = "recommendation"
)

// Start launches the check loop. It returns immediately; the loop stops when
// ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	now := time.Now().UTC()
	s.next[jobTagging] = nextRunAfter(now, s.cfg.TaggingHourUTC)
	s.next[jobRecommendation] = nextRunAfter(now, s.cfg.RecommendationHour)

	s.log.Info("scheduler", "scheduler started", map[string]interface{}{
		"tagging_next":        s.next[jobTagging].Format(time.RFC3339),
		"recommendation_next": s.next[jobRecommendation].Format(time.RFC3339),
	})

	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler", "scheduler stopped", nil)
			return
		case now := <-ticker.C:
			s.check(ctx, now.UTC())
		}
	}
}

func (s *Scheduler) check(ctx context.Context, now time.Time) {
	s.maybeRun(ctx, now, jobTagging, s.cfg.TaggingHourUTC, func(ctx context.Context) error {
		_, err := s.tagging.RunBatch(ctx)
		return err
	})
	s.maybeRun(ctx, now, jobRecommendation, s.cfg.RecommendationHour, func(ctx context.Context) error {
		_, err := s.recommendation.RunBatch(ctx)
		return err
	})
}

func (s *Scheduler) maybeRun(ctx context.Context, now time.Time, job string, hourUTC int, fn func(context.Context) error) {
	s.mu.Lock()
	if s.running[job] || now.Before(s.next[job]) {
		s.mu.Unlock()
		return
	}
	s.running[job] = true
	s.next[job] = nextRunAfter(now, hourUTC)
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			s.running[job] = false
			s.mu.Unlock()
		}()

		s.log.Info("scheduler", "job started", map[string]interface{}{"job": job})
		if err := fn(ctx); err != nil {
			s.log.Error("scheduler", "job failed", map[string]interface{}{
				"job":   job,
				"error": err.Error(),
			})
			return
		}
		s.log.Info("scheduler", "job finished", map[string]interface{}{"job": job})
	}()
}

// nextRunAfter returns the next occurrence of hourUTC:00 strictly after now.
func nextRunAfter(now time.Time, hourUTC int) time.Time {
	if hourUTC < 0 || hourUTC > 23 {
		hourUTC = 0
	}
	next := time.Date(now.Year(), now.Month(), now.Day(), hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
