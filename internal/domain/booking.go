package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending           BookingStatus = "pending"
	BookingStatusMonasteryApproved BookingStatus = "monastery_approved"
	BookingStatusConfirmed         BookingStatus = "confirmed"
	BookingStatusDelivered         BookingStatus = "delivered"
	BookingStatusNotDelivered      BookingStatus = "not_delivered"
	BookingStatusCancelled         BookingStatus = "cancelled"
)

// CapacityConsumingStatuses are the statuses whose serving counts are held
// against the slot's capacity: everything except cancelled and
// not_delivered.
var CapacityConsumingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusMonasteryApproved,
	BookingStatusConfirmed,
	BookingStatusDelivered,
}

type DeliveryOutcome string

const (
	DeliveryOutcomeReceived    DeliveryOutcome = "received"
	DeliveryOutcomeNotReceived DeliveryOutcome = "not_received"
)

// Booking is a donor's pledge to supply food for one slot. DonorID is nil
// for guest bookings created by a monastery admin on behalf of a phone-in
// donor.
type Booking struct {
	ID                  string           `json:"id"`
	SlotID              string           `json:"slot_id"`
	DonorID             *string          `json:"donor_id"`
	GuestName           string           `json:"guest_name,omitempty"`
	FoodDescription     string           `json:"food_description"`
	ServingCount        int              `json:"serving_count"`
	ContactPhone        string           `json:"contact_phone"`
	Notes               string           `json:"notes,omitempty"`
	Status              BookingStatus    `json:"status"`
	ApprovedAt          *time.Time       `json:"approved_at,omitempty"`
	ApprovedBy          *string          `json:"approved_by,omitempty"`
	DonorConfirmedAt    *time.Time       `json:"donor_confirmed_at,omitempty"`
	DeliveryConfirmedAt *time.Time       `json:"delivery_confirmed_at,omitempty"`
	DeliveryConfirmedBy *string          `json:"delivery_confirmed_by,omitempty"`
	DeliveryOutcome     *DeliveryOutcome `json:"delivery_outcome,omitempty"`
	DeliveryNotes       string           `json:"delivery_notes,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

type CreateBookingInput struct {
	SlotID          string
	GuestName       string
	FoodDescription string
	ServingCount    int
	ContactPhone    string
	Notes           string
}

// TransitionInput carries optional transition-specific data. The confirmer
// identity is always the acting user.
type TransitionInput struct {
	DeliveryNotes string
}
