package application

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/davarch/launch-schedule/internal/domain"
	"go.uber.org/zap"
)

type Scheduler struct {
	log       *zap.Logger
	use       *RefreshUseCase
	every     time.Duration
	pauseFile string

	mu   sync.RWMutex
	tier domain.Tier
}

func NewScheduler(l *zap.Logger, u *RefreshUseCase, tier domain.Tier, every time.Duration, pauseFile string) *Scheduler {
	return &Scheduler{
		log: l, use: u, tier: tier, every: every, pauseFile: pauseFile,
	}
}

func (s *Scheduler) UpdateTier(t domain.Tier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tier = t
	s.log.Info("config reloaded", zap.String("tier", string(t)))
}

func (s *Scheduler) Tier() domain.Tier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tier
}

func (s *Scheduler) Run(ctx context.Context) {
	t := time.NewTicker(s.every)
	defer t.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.isPaused() {
		s.log.Debug("paused: skipping refresh")
		return
	}

	tier := s.Tier()
	m, err := s.use.RefreshOnce(ctx, tier)
	var ue *domain.UnavailableError
	switch {
	case err == nil:
		s.log.Debug("refreshed",
			zap.String("tier", string(tier)),
			zap.String("state", string(m.State)),
			zap.Int("entries", m.Len()),
		)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	case errors.As(err, &ue):
		s.log.Warn("launch data unavailable", zap.String("detail", ue.Detail))
	default:
		s.log.Warn("refresh failed", zap.String("tier", string(tier)), zap.Error(err))
	}
}

func (s *Scheduler) isPaused() bool {
	if s.pauseFile == "" {
		return false
	}
	_, err := os.Stat(s.pauseFile)
	return err == nil
}
