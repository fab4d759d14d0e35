package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/bawadev/dhaana/internal/handler/dto"
	hmocks "github.com/bawadev/dhaana/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerFixture struct {
	bookingSvc   *hmocks.MockBookingSvc
	slotSvc      *hmocks.MockSlotSvc
	monasterySvc *hmocks.MockMonasterySvc
	userSvc      *hmocks.MockUserSvc
	tokens       *hmocks.MockTokenIssuer
	router       http.Handler
}

// asActor injects the acting identity the way the auth middleware would.
func asActor(actor domain.Actor) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func setupRouter(t *testing.T, actor domain.Actor) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		bookingSvc:   hmocks.NewMockBookingSvc(t),
		slotSvc:      hmocks.NewMockSlotSvc(t),
		monasterySvc: hmocks.NewMockMonasterySvc(t),
		userSvc:      hmocks.NewMockUserSvc(t),
		tokens:       hmocks.NewMockTokenIssuer(t),
	}

	h := NewHandler(f.bookingSvc, f.slotSvc, f.monasterySvc, f.userSvc, f.tokens)

	auth := asActor(actor)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/token", h.IssueToken)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", auth, h.GetUserBookings)
		api.POST("/monasteries", auth, h.CreateMonastery)
		api.GET("/monasteries", h.ListMonasteries)
		api.GET("/monasteries/:id", h.GetMonastery)
		api.POST("/monasteries/:id/slots", auth, h.CreateSlot)
		api.GET("/monasteries/:id/slots", h.ListMonasterySlots)
		api.GET("/slots", h.ListSlots)
		api.GET("/slots/:id", h.GetSlot)
		api.POST("/slots/:id/bookings", auth, h.CreateBooking)
		api.POST("/bookings/:id/transition", auth, h.TransitionBooking)
		api.GET("/bookings/:id/actions", auth, h.GetBookingActions)
		api.GET("/bookings/:id/history", auth, h.GetBookingHistory)
	}

	f.router = r
	return f
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func donor(id string) domain.Actor {
	return domain.Actor{ID: id, Roles: []domain.Role{domain.RoleDonor}}
}

func monasteryAdmin(id string) domain.Actor {
	return domain.Actor{ID: id, Roles: []domain.Role{domain.RoleMonasteryAdmin}}
}

// --- Auth ---

func TestHandler_IssueToken_Success(t *testing.T) {
	f := setupRouter(t, domain.Actor{})

	user := &domain.User{ID: uuid.New().String(), Username: "alice", Roles: []domain.Role{domain.RoleDonor}}

	f.userSvc.EXPECT().GetByUsername(mock.Anything, "alice").Return(user, nil)
	f.tokens.EXPECT().Issue(user).Return("signed-token", nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/token", dto.TokenRequest{Username: "alice"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestHandler_IssueToken_UnknownUser(t *testing.T) {
	f := setupRouter(t, domain.Actor{})

	f.userSvc.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/token", dto.TokenRequest{Username: "ghost"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	f := setupRouter(t, domain.Actor{})

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		Roles:     []domain.Role{domain.RoleDonor},
		CreatedAt: time.Now(),
	}

	f.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, []string{"donor"}, resp.Roles)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	f := setupRouter(t, domain.Actor{})

	w := doJSON(t, f.router, http.MethodPost, "/api/users", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserBookings_Own(t *testing.T) {
	userID := uuid.New().String()
	f := setupRouter(t, donor(userID))

	bookings := []*domain.Booking{
		{ID: uuid.New().String(), SlotID: uuid.New().String(), Status: domain.BookingStatusPending},
	}

	f.bookingSvc.EXPECT().ListByDonor(mock.Anything, userID).Return(bookings, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/users/"+userID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_OtherUserForbidden(t *testing.T) {
	f := setupRouter(t, donor(uuid.New().String()))

	w := doJSON(t, f.router, http.MethodGet, "/api/users/"+uuid.New().String()+"/bookings", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Monasteries ---

func TestHandler_CreateMonastery_Success(t *testing.T) {
	adminID := uuid.New().String()
	f := setupRouter(t, domain.Actor{ID: "root", Roles: []domain.Role{domain.RoleSuperAdmin}})

	monastery := &domain.Monastery{
		ID:        uuid.New().String(),
		Name:      "Forest Hermitage",
		AdminID:   adminID,
		CreatedAt: time.Now(),
	}

	f.monasterySvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(monastery, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/monasteries", dto.CreateMonasteryRequest{
		Name:    "Forest Hermitage",
		AdminID: adminID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MonasteryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Forest Hermitage", resp.Name)
}

func TestHandler_CreateMonastery_Forbidden(t *testing.T) {
	f := setupRouter(t, donor(uuid.New().String()))

	f.monasterySvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: only platform admins may register monasteries", domain.ErrUnauthorized))

	w := doJSON(t, f.router, http.MethodPost, "/api/monasteries", dto.CreateMonasteryRequest{
		Name:    "Forest Hermitage",
		AdminID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetMonastery_InvalidID(t *testing.T) {
	f := setupRouter(t, domain.Actor{})

	w := doJSON(t, f.router, http.MethodGet, "/api/monasteries/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Slots ---

func TestHandler_CreateSlot_Success(t *testing.T) {
	monasteryID := uuid.New().String()
	adminID := uuid.New().String()
	f := setupRouter(t, monasteryAdmin(adminID))

	slot := &domain.Slot{
		ID:          uuid.New().String(),
		MonasteryID: monasteryID,
		Date:        time.Now().AddDate(0, 0, 7),
		TimeOfDay:   domain.TimeOfDayLunch,
		Capacity:    40,
		IsAvailable: true,
		CreatedAt:   time.Now(),
	}

	f.slotSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(slot, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/monasteries/"+monasteryID+"/slots", dto.CreateSlotRequest{
		Date:      time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		TimeOfDay: "lunch",
		Capacity:  40,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "lunch", resp.TimeOfDay)
	assert.Equal(t, 40, resp.Capacity)
}

func TestHandler_CreateSlot_InvalidDate(t *testing.T) {
	f := setupRouter(t, monasteryAdmin(uuid.New().String()))

	w := doJSON(t, f.router, http.MethodPost, "/api/monasteries/"+uuid.New().String()+"/slots", dto.CreateSlotRequest{
		Date:      "next tuesday",
		TimeOfDay: "lunch",
		Capacity:  40,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlot_Success(t *testing.T) {
	slotID := uuid.New().String()
	f := setupRouter(t, domain.Actor{})

	details := &domain.SlotDetails{
		Slot: domain.Slot{
			ID:          slotID,
			MonasteryID: uuid.New().String(),
			Date:        time.Now().AddDate(0, 0, 3),
			TimeOfDay:   domain.TimeOfDayBreakfast,
			Capacity:    30,
			IsAvailable: true,
			CreatedAt:   time.Now(),
		},
		Remaining: 22,
		Bookings:  []domain.Booking{},
	}

	f.slotSvc.EXPECT().GetDetails(mock.Anything, slotID).Return(details, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/slots/"+slotID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 22, resp.Remaining)
}

func TestHandler_GetSlot_NotFound(t *testing.T) {
	slotID := uuid.New().String()
	f := setupRouter(t, domain.Actor{})

	f.slotSvc.EXPECT().GetDetails(mock.Anything, slotID).Return(nil, domain.ErrSlotNotFound)

	w := doJSON(t, f.router, http.MethodGet, "/api/slots/"+slotID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	slotID := uuid.New().String()
	donorID := uuid.New().String()
	f := setupRouter(t, donor(donorID))

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		SlotID:          slotID,
		DonorID:         &donorID,
		FoodDescription: "rice and curry",
		ServingCount:    10,
		ContactPhone:    "+94771234567",
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	f.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/slots/"+slotID+"/bookings", dto.CreateBookingRequest{
		FoodDescription: "rice and curry",
		ServingCount:    10,
		ContactPhone:    "+94771234567",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.DonorID)
	assert.Equal(t, donorID, *resp.DonorID)
}

func TestHandler_CreateBooking_CapacityExceeded(t *testing.T) {
	slotID := uuid.New().String()
	f := setupRouter(t, donor(uuid.New().String()))

	f.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: 3 servings remaining", domain.ErrCapacityExceeded))

	w := doJSON(t, f.router, http.MethodPost, "/api/slots/"+slotID+"/bookings", dto.CreateBookingRequest{
		FoodDescription: "rice and curry",
		ServingCount:    10,
		ContactPhone:    "+94771234567",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_TransitionBooking_Success(t *testing.T) {
	bookingID := uuid.New().String()
	adminID := uuid.New().String()
	f := setupRouter(t, monasteryAdmin(adminID))

	approved := &domain.Booking{
		ID:           bookingID,
		SlotID:       uuid.New().String(),
		Status:       domain.BookingStatusMonasteryApproved,
		ServingCount: 10,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	f.bookingSvc.EXPECT().
		ExecuteTransition(mock.Anything, bookingID, domain.TransitionApprove, mock.Anything, mock.Anything).
		Return(approved, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings/"+bookingID+"/transition", dto.TransitionRequest{
		Action: "approve",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "monastery_approved", resp.Status)
}

func TestHandler_TransitionBooking_WrongStatus(t *testing.T) {
	bookingID := uuid.New().String()
	f := setupRouter(t, monasteryAdmin(uuid.New().String()))

	f.bookingSvc.EXPECT().
		ExecuteTransition(mock.Anything, bookingID, domain.TransitionApprove, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: cannot approve a cancelled booking", domain.ErrInvalidStateTransition))

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings/"+bookingID+"/transition", dto.TransitionRequest{
		Action: "approve",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_TransitionBooking_Forbidden(t *testing.T) {
	bookingID := uuid.New().String()
	f := setupRouter(t, donor(uuid.New().String()))

	f.bookingSvc.EXPECT().
		ExecuteTransition(mock.Anything, bookingID, domain.TransitionApprove, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: role donor may not approve", domain.ErrUnauthorized))

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings/"+bookingID+"/transition", dto.TransitionRequest{
		Action: "approve",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_TransitionBooking_UnknownAction(t *testing.T) {
	bookingID := uuid.New().String()
	f := setupRouter(t, donor(uuid.New().String()))

	f.bookingSvc.EXPECT().
		ExecuteTransition(mock.Anything, bookingID, domain.TransitionName("teleport"), mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: teleport", domain.ErrInvalidTransition))

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings/"+bookingID+"/transition", dto.TransitionRequest{
		Action: "teleport",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBookingActions(t *testing.T) {
	bookingID := uuid.New().String()
	donorID := uuid.New().String()
	f := setupRouter(t, donor(donorID))

	f.bookingSvc.EXPECT().AvailableActions(mock.Anything, bookingID, mock.Anything).
		Return([]domain.TransitionName{domain.TransitionCancel}, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/bookings/"+bookingID+"/actions", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ActionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"cancel"}, resp.Actions)
}

func TestHandler_GetBookingHistory(t *testing.T) {
	bookingID := uuid.New().String()
	f := setupRouter(t, donor(uuid.New().String()))

	entries := []*domain.AuditEntry{
		{
			ID:         uuid.New().String(),
			BookingID:  bookingID,
			FromStatus: domain.BookingStatusPending,
			ToStatus:   domain.BookingStatusMonasteryApproved,
			Transition: domain.TransitionApprove,
			ActorID:    uuid.New().String(),
			CreatedAt:  time.Now(),
		},
	}

	f.bookingSvc.EXPECT().History(mock.Anything, bookingID).Return(entries, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/bookings/"+bookingID+"/history", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AuditEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "approve", resp[0].Transition)
}
