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

// BookingService is the workflow engine boundary: capacity-checked booking
// creation, role-gated status transitions, the available-actions query, and
// the transition audit trail.
type BookingService struct {
	bookingRepo   ports.BookingRepo
	slotRepo      ports.SlotRepo
	monasteryRepo ports.MonasteryRepo
	userRepo      ports.UserRepo
	auditRepo     ports.AuditRepo
	notifier      ports.BookingNotifier
	logger        logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	slotRepo ports.SlotRepo,
	monasteryRepo ports.MonasteryRepo,
	userRepo ports.UserRepo,
	auditRepo ports.AuditRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		slotRepo:      slotRepo,
		monasteryRepo: monasteryRepo,
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

// Create books a slot for the actor, or for a phone-in guest when the actor
// administers the slot's monastery. The capacity check happens atomically
// with the insert in the repository.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput, actor domain.Actor) (*domain.Booking, error) {
	if input.FoodDescription == "" {
		return nil, fmt.Errorf("%w: food description is required", domain.ErrValidation)
	}
	if input.ServingCount <= 0 {
		return nil, fmt.Errorf("%w: serving count must be positive", domain.ErrValidation)
	}
	if input.ContactPhone == "" {
		return nil, fmt.Errorf("%w: contact phone is required", domain.ErrValidation)
	}

	slot, err := s.slotRepo.GetByID(ctx, input.SlotID)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	monastery, err := s.monasteryRepo.GetByID(ctx, slot.MonasteryID)
	if err != nil {
		return nil, fmt.Errorf("check monastery: %w", err)
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		SlotID:          slot.ID,
		FoodDescription: input.FoodDescription,
		ServingCount:    input.ServingCount,
		ContactPhone:    input.ContactPhone,
		Notes:           input.Notes,
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	switch {
	case input.GuestName != "":
		if !actor.HasRole(domain.RoleMonasteryAdmin) && !actor.HasRole(domain.RoleSuperAdmin) {
			return nil, fmt.Errorf("%w: only monastery staff may create guest bookings", domain.ErrUnauthorized)
		}
		if !actor.HasRole(domain.RoleSuperAdmin) && monastery.AdminID != actor.ID {
			return nil, domain.ErrNotYourMonastery
		}
		booking.GuestName = input.GuestName
	case actor.HasRole(domain.RoleDonor):
		donorID := actor.ID
		booking.DonorID = &donorID
	default:
		return nil, fmt.Errorf("%w: guest name is required for staff-created bookings", domain.ErrValidation)
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("slot_id", slot.ID),
		logger.String("actor_id", actor.ID),
		logger.Int("serving_count", booking.ServingCount),
	)

	if admin, err := s.userRepo.GetByID(ctx, monastery.AdminID); err == nil {
		go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), admin, booking, slot)
	} else {
		s.logger.Error("failed to get monastery admin for notification",
			logger.String("monastery_id", monastery.ID),
			logger.String("error", err.Error()),
		)
	}

	return booking, nil
}

// ExecuteTransition applies a named workflow transition. Authorization runs
// against freshly-read state inside the repository transaction; the audit
// append afterwards is best-effort and never rolls the transition back.
func (s *BookingService) ExecuteTransition(
	ctx context.Context,
	bookingID string,
	name domain.TransitionName,
	actor domain.Actor,
	input domain.TransitionInput,
) (*domain.Booking, error) {
	if _, ok := domain.RuleFor(name); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTransition, name)
	}

	booking, from, err := s.bookingRepo.ApplyTransition(ctx, bookingID, name, actor, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking transition applied",
		logger.String("booking_id", booking.ID),
		logger.String("transition", string(name)),
		logger.String("from", string(from)),
		logger.String("to", string(booking.Status)),
		logger.String("actor_id", actor.ID),
	)

	entry := &domain.AuditEntry{
		ID:         uuid.New().String(),
		BookingID:  booking.ID,
		FromStatus: from,
		ToStatus:   booking.Status,
		Transition: name,
		ActorID:    actor.ID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		s.logger.Error("failed to append audit entry",
			logger.String("booking_id", booking.ID),
			logger.String("transition", string(name)),
			logger.String("error", err.Error()),
		)
	}

	go s.notifyTransition(context.WithoutCancel(ctx), booking, name)

	return booking, nil
}

func (s *BookingService) notifyTransition(ctx context.Context, booking *domain.Booking, name domain.TransitionName) {
	slot, err := s.slotRepo.GetByID(ctx, booking.SlotID)
	if err != nil {
		s.logger.Error("failed to get slot for notification",
			logger.String("slot_id", booking.SlotID),
			logger.String("error", err.Error()),
		)
		return
	}

	switch name {
	case domain.TransitionApprove:
		if booking.DonorID == nil {
			return
		}
		donor, err := s.userRepo.GetByID(ctx, *booking.DonorID)
		if err != nil {
			s.logger.Error("failed to get donor for notification",
				logger.String("donor_id", *booking.DonorID),
			)
			return
		}
		s.notifier.NotifyBookingApproved(ctx, donor, booking, slot)

	case domain.TransitionCancel:
		monastery, err := s.monasteryRepo.GetByID(ctx, slot.MonasteryID)
		if err != nil {
			s.logger.Error("failed to get monastery for notification",
				logger.String("monastery_id", slot.MonasteryID),
			)
			return
		}
		admin, err := s.userRepo.GetByID(ctx, monastery.AdminID)
		if err != nil {
			s.logger.Error("failed to get monastery admin for notification",
				logger.String("monastery_id", monastery.ID),
			)
			return
		}
		s.notifier.NotifyBookingCancelled(ctx, admin, booking, slot)
	}
}

// AvailableActions lists the transitions the actor could apply right now.
// A UI hint only: ExecuteTransition re-validates independently.
func (s *BookingService) AvailableActions(ctx context.Context, bookingID string, actor domain.Actor) ([]domain.TransitionName, error) {
	booking, access, err := s.bookingRepo.GetWithAccess(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return domain.AvailableTransitions(booking.Status, actor, *access), nil
}

func (s *BookingService) History(ctx context.Context, bookingID string) ([]*domain.AuditEntry, error) {
	if _, _, err := s.bookingRepo.GetWithAccess(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return s.auditRepo.ListByBooking(ctx, bookingID)
}

func (s *BookingService) ListByDonor(ctx context.Context, donorID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByDonor(ctx, donorID)
}
