package domain

import "time"

type TimeOfDay string

// Monastics take no food after midday, so slots fall into the two
// permitted meal windows.
const (
	TimeOfDayBreakfast TimeOfDay = "breakfast"
	TimeOfDayLunch     TimeOfDay = "lunch"
)

func ValidTimeOfDay(t TimeOfDay) bool {
	return t == TimeOfDayBreakfast || t == TimeOfDayLunch
}

// Slot is a monastery's offered window for receiving food on a given date.
type Slot struct {
	ID                  string    `json:"id"`
	MonasteryID         string    `json:"monastery_id"`
	Date                time.Time `json:"date"`
	TimeOfDay           TimeOfDay `json:"time_of_day"`
	Capacity            int       `json:"capacity"`
	SpecialRequirements string    `json:"special_requirements,omitempty"`
	IsAvailable         bool      `json:"is_available"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// SlotDetails is a slot with its live remaining capacity and bookings.
// Remaining is derived from the capacity-consuming bookings at read time,
// never from a stored counter.
type SlotDetails struct {
	Slot      Slot      `json:"slot"`
	Remaining int       `json:"remaining"`
	Bookings  []Booking `json:"bookings"`
}

type CreateSlotInput struct {
	MonasteryID         string
	Date                time.Time
	TimeOfDay           TimeOfDay
	Capacity            int
	SpecialRequirements string
}
