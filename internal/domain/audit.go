package domain

import "time"

// AuditEntry records one applied transition. Appended best-effort after
// the status change commits.
type AuditEntry struct {
	ID         string         `json:"id"`
	BookingID  string         `json:"booking_id"`
	FromStatus BookingStatus  `json:"from_status"`
	ToStatus   BookingStatus  `json:"to_status"`
	Transition TransitionName `json:"transition"`
	ActorID    string         `json:"actor_id"`
	CreatedAt  time.Time      `json:"created_at"`
}
