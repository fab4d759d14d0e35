package scheduler

import (
	"context"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type slotCloser interface {
	CloseExpired(ctx context.Context) ([]*domain.Slot, error)
}

// Scheduler periodically closes past-dated slots so they stop accepting
// bookings.
type Scheduler struct {
	slotService slotCloser
	interval    time.Duration
	logger      logger.Logger
}

func New(
	slotService slotCloser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		slotService: slotService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("slot sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("slot sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	closed, err := s.slotService.CloseExpired(ctx)
	if err != nil {
		s.logger.Error("failed to close expired slots",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, slot := range closed {
		s.logger.Info("slot closed",
			logger.String("slot_id", slot.ID),
			logger.String("monastery_id", slot.MonasteryID),
			logger.String("date", slot.Date.Format("2006-01-02")),
		)
	}
}
