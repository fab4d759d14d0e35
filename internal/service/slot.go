package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/bawadev/dhaana/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type SlotService struct {
	repo          ports.SlotRepo
	monasteryRepo ports.MonasteryRepo
	bookingRepo   ports.BookingRepo
	logger        logger.Logger
}

func NewSlotService(
	repo ports.SlotRepo,
	monasteryRepo ports.MonasteryRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
) *SlotService {
	return &SlotService{
		repo:          repo,
		monasteryRepo: monasteryRepo,
		bookingRepo:   bookingRepo,
		logger:        logger,
	}
}

func (s *SlotService) Create(ctx context.Context, input domain.CreateSlotInput, actor domain.Actor) (*domain.Slot, error) {
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if !domain.ValidTimeOfDay(input.TimeOfDay) {
		return nil, fmt.Errorf("%w: time_of_day must be breakfast or lunch", domain.ErrValidation)
	}
	if input.Date.Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("%w: date must not be in the past", domain.ErrValidation)
	}

	monastery, err := s.monasteryRepo.GetByID(ctx, input.MonasteryID)
	if err != nil {
		return nil, fmt.Errorf("check monastery: %w", err)
	}

	if !actor.HasRole(domain.RoleSuperAdmin) {
		if !actor.HasRole(domain.RoleMonasteryAdmin) {
			return nil, fmt.Errorf("%w: only monastery staff may create slots", domain.ErrUnauthorized)
		}
		if monastery.AdminID != actor.ID {
			return nil, domain.ErrNotYourMonastery
		}
	}

	now := time.Now().UTC()
	slot := &domain.Slot{
		ID:                  uuid.New().String(),
		MonasteryID:         monastery.ID,
		Date:                input.Date,
		TimeOfDay:           input.TimeOfDay,
		Capacity:            input.Capacity,
		SpecialRequirements: input.SpecialRequirements,
		IsAvailable:         true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	return slot, nil
}

func (s *SlotService) GetDetails(ctx context.Context, id string) (*domain.SlotDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListBySlot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details.Bookings = make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	return details, nil
}

func (s *SlotService) ListUpcoming(ctx context.Context) ([]*domain.Slot, error) {
	return s.repo.ListUpcoming(ctx)
}

func (s *SlotService) ListByMonastery(ctx context.Context, monasteryID string) ([]*domain.Slot, error) {
	return s.repo.ListByMonastery(ctx, monasteryID)
}

// CloseExpired flips availability off for past-dated slots. Called by the
// background sweeper.
func (s *SlotService) CloseExpired(ctx context.Context) ([]*domain.Slot, error) {
	closed, err := s.repo.CloseExpired(ctx)
	if err != nil {
		return nil, fmt.Errorf("close expired slots: %w", err)
	}

	if len(closed) > 0 {
		s.logger.Info("expired slots closed",
			logger.Int("count", len(closed)),
		)
	}

	return closed, nil
}
