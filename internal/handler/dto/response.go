package dto

import (
	"time"

	"github.com/bawadev/dhaana/internal/domain"
)

const dateLayout = "2006-01-02"

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Roles          []string `json:"roles"`
	TelegramChatID *int64   `json:"telegram_chat_id,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type MonasteryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AdminID     string `json:"admin_id"`
	MaxCapacity *int   `json:"max_capacity,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type SlotResponse struct {
	ID                  string `json:"id"`
	MonasteryID         string `json:"monastery_id"`
	Date                string `json:"date"`
	TimeOfDay           string `json:"time_of_day"`
	Capacity            int    `json:"capacity"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
	IsAvailable         bool   `json:"is_available"`
	CreatedAt           string `json:"created_at"`
}

type SlotDetailsResponse struct {
	Slot      SlotResponse      `json:"slot"`
	Remaining int               `json:"remaining"`
	Bookings  []BookingResponse `json:"bookings"`
}

type BookingResponse struct {
	ID                  string  `json:"id"`
	SlotID              string  `json:"slot_id"`
	DonorID             *string `json:"donor_id,omitempty"`
	GuestName           string  `json:"guest_name,omitempty"`
	FoodDescription     string  `json:"food_description"`
	ServingCount        int     `json:"serving_count"`
	ContactPhone        string  `json:"contact_phone"`
	Notes               string  `json:"notes,omitempty"`
	Status              string  `json:"status"`
	ApprovedAt          *string `json:"approved_at,omitempty"`
	ApprovedBy          *string `json:"approved_by,omitempty"`
	DonorConfirmedAt    *string `json:"donor_confirmed_at,omitempty"`
	DeliveryConfirmedAt *string `json:"delivery_confirmed_at,omitempty"`
	DeliveryConfirmedBy *string `json:"delivery_confirmed_by,omitempty"`
	DeliveryOutcome     *string `json:"delivery_outcome,omitempty"`
	DeliveryNotes       string  `json:"delivery_notes,omitempty"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type ActionsResponse struct {
	Actions []string `json:"actions"`
}

type AuditEntryResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Transition string `json:"transition"`
	ActorID    string `json:"actor_id"`
	CreatedAt  string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}

	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Roles:          roles,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToMonasteryResponse(m *domain.Monastery) MonasteryResponse {
	return MonasteryResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		AdminID:     m.AdminID,
		MaxCapacity: m.MaxCapacity,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:                  s.ID,
		MonasteryID:         s.MonasteryID,
		Date:                s.Date.Format(dateLayout),
		TimeOfDay:           string(s.TimeOfDay),
		Capacity:            s.Capacity,
		SpecialRequirements: s.SpecialRequirements,
		IsAvailable:         s.IsAvailable,
		CreatedAt:           s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotDetailsResponse(d *domain.SlotDetails) SlotDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return SlotDetailsResponse{
		Slot:      ToSlotResponse(&d.Slot),
		Remaining: d.Remaining,
		Bookings:  bookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		SlotID:          b.SlotID,
		DonorID:         b.DonorID,
		GuestName:       b.GuestName,
		FoodDescription: b.FoodDescription,
		ServingCount:    b.ServingCount,
		ContactPhone:    b.ContactPhone,
		Notes:           b.Notes,
		Status:          string(b.Status),
		ApprovedBy:      b.ApprovedBy,
		DeliveryNotes:   b.DeliveryNotes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}

	resp.ApprovedAt = formatTime(b.ApprovedAt)
	resp.DonorConfirmedAt = formatTime(b.DonorConfirmedAt)
	resp.DeliveryConfirmedAt = formatTime(b.DeliveryConfirmedAt)
	resp.DeliveryConfirmedBy = b.DeliveryConfirmedBy

	if b.DeliveryOutcome != nil {
		outcome := string(*b.DeliveryOutcome)
		resp.DeliveryOutcome = &outcome
	}

	return resp
}

func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:         e.ID,
		BookingID:  e.BookingID,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		Transition: string(e.Transition),
		ActorID:    e.ActorID,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
