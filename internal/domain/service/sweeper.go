package service

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// sweeper periodically evicts expired raids from the registry.
type sweeper struct {
	registry *Registry
	cron     *cron.Cron
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger
	mu       sync.Mutex
	running  bool
}

func newSweeper(log *slog.Logger, registry *Registry, interval time.Duration) *sweeper {
	return &sweeper{
		registry: registry,
		cron:     cron.New(),
		interval: interval,
		now:      time.Now,
		logger:   log.With(slog.String("service", "sweeper")),
	}
}

func (s *sweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.interval < time.Second {
		return fmt.Errorf("sweep interval must be at least 1s, got %s", s.interval)
	}

	s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(s.run))
	s.cron.Start()
	s.running = true
	s.logger.Info("sweeper starting", slog.Duration("interval", s.interval))
	return nil
}

// Stop halts the schedule and waits for a sweep in progress to finish.
func (s *sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.logger.Info("sweeper stopping")
	<-s.cron.Stop().Done()
	s.running = false
}

func (s *sweeper) run() {
	if n := s.registry.Sweep(s.now()); n > 0 {
		s.logger.Info("expired raids removed", slog.Int("count", n))
	}
}
