package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/bawadev/dhaana/internal/handler/dto"
	"github.com/bawadev/dhaana/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput, actor domain.Actor) (*domain.Booking, error)
	ExecuteTransition(ctx context.Context, bookingID string, name domain.TransitionName, actor domain.Actor, input domain.TransitionInput) (*domain.Booking, error)
	AvailableActions(ctx context.Context, bookingID string, actor domain.Actor) ([]domain.TransitionName, error)
	History(ctx context.Context, bookingID string) ([]*domain.AuditEntry, error)
	ListByDonor(ctx context.Context, donorID string) ([]*domain.Booking, error)
}

type SlotSvc interface {
	Create(ctx context.Context, input domain.CreateSlotInput, actor domain.Actor) (*domain.Slot, error)
	GetDetails(ctx context.Context, id string) (*domain.SlotDetails, error)
	ListUpcoming(ctx context.Context) ([]*domain.Slot, error)
	ListByMonastery(ctx context.Context, monasteryID string) ([]*domain.Slot, error)
}

type MonasterySvc interface {
	Create(ctx context.Context, input domain.CreateMonasteryInput, actor domain.Actor) (*domain.Monastery, error)
	GetByID(ctx context.Context, id string) (*domain.Monastery, error)
	List(ctx context.Context) ([]*domain.Monastery, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type Handler struct {
	bookingService   BookingSvc
	slotService      SlotSvc
	monasteryService MonasterySvc
	userService      UserSvc
	tokens           TokenIssuer
}

func NewHandler(
	bookingService BookingSvc,
	slotService SlotSvc,
	monasteryService MonasterySvc,
	userService UserSvc,
	tokens TokenIssuer,
) *Handler {
	return &Handler{
		bookingService:   bookingService,
		slotService:      slotService,
		monasteryService: monasteryService,
		userService:      userService,
		tokens:           tokens,
	}
}

// Auth

func (h *Handler) IssueToken(c *ginext.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	roles := make([]domain.Role, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, domain.Role(r))
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Roles:          roles,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}
	if actor.ID != userID && !actor.HasRole(domain.RoleSuperAdmin) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "may only list your own bookings"})
		return
	}

	bookings, err := h.bookingService.ListByDonor(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Monasteries

func (h *Handler) CreateMonastery(c *ginext.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req dto.CreateMonasteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateMonasteryInput{
		Name:        req.Name,
		Description: req.Description,
		AdminID:     req.AdminID,
		MaxCapacity: req.MaxCapacity,
	}

	monastery, err := h.monasteryService.Create(c.Request.Context(), input, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMonasteryResponse(monastery))
}

func (h *Handler) GetMonastery(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid monastery id"})
		return
	}

	monastery, err := h.monasteryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMonasteryResponse(monastery))
}

func (h *Handler) ListMonasteries(c *ginext.Context) {
	monasteries, err := h.monasteryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MonasteryResponse, 0, len(monasteries))
	for _, m := range monasteries {
		resp = append(resp, dto.ToMonasteryResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

// Slots

func (h *Handler) CreateSlot(c *ginext.Context) {
	monasteryID := c.Param("id")
	if _, err := uuid.Parse(monasteryID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid monastery id"})
		return
	}

	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateSlotInput{
		MonasteryID:         monasteryID,
		Date:                date,
		TimeOfDay:           domain.TimeOfDay(req.TimeOfDay),
		Capacity:            req.Capacity,
		SpecialRequirements: req.SpecialRequirements,
	}

	slot, err := h.slotService.Create(c.Request.Context(), input, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) ListMonasterySlots(c *ginext.Context) {
	monasteryID := c.Param("id")
	if _, err := uuid.Parse(monasteryID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid monastery id"})
		return
	}

	slots, err := h.slotService.ListByMonastery(c.Request.Context(), monasteryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListSlots(c *ginext.Context) {
	slots, err := h.slotService.ListUpcoming(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	details, err := h.slotService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotDetailsResponse(details))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		SlotID:          slotID,
		GuestName:       req.GuestName,
		FoodDescription: req.FoodDescription,
		ServingCount:    req.ServingCount,
		ContactPhone:    req.ContactPhone,
		Notes:           req.Notes,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) TransitionBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.ExecuteTransition(
		c.Request.Context(),
		bookingID,
		domain.TransitionName(req.Action),
		actor,
		domain.TransitionInput{DeliveryNotes: req.DeliveryNotes},
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBookingActions(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	actions, err := h.bookingService.AvailableActions(c.Request.Context(), bookingID, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]string, 0, len(actions))
	for _, a := range actions {
		resp = append(resp, string(a))
	}

	c.JSON(http.StatusOK, dto.ActionsResponse{Actions: resp})
}

func (h *Handler) GetBookingHistory(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	entries, err := h.bookingService.History(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToAuditEntryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrMonasteryNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrNotYourBooking),
		errors.Is(err, domain.ErrNotYourMonastery):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
