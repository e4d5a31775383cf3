package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Pruner drops stored sessions older than a TTL and reports how many
// were removed.
type Pruner interface {
	PruneSessions(ttl time.Duration) int
}

type Scheduler struct {
	s        gocron.Scheduler
	pruner   Pruner
	ttl      time.Duration
	interval time.Duration
}

func NewScheduler(pruner Pruner, ttl, interval time.Duration) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:        s,
		pruner:   pruner,
		ttl:      ttl,
		interval: interval,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.pruneSessions),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create prune sessions job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) pruneSessions() {
	removed := s.pruner.PruneSessions(s.ttl)
	if removed > 0 {
		slog.Info("Pruned stale sessions", "removed", removed, "ttl", s.ttl)
	}
}
