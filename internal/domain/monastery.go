package domain

import "time"

// Monastery is a receiving organization. AdminID is the primary owner
// account; super admins may act on any monastery. MaxCapacity, when set,
// overrides the per-slot capacity ceiling.
type Monastery struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AdminID     string    `json:"admin_id"`
	MaxCapacity *int      `json:"max_capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateMonasteryInput struct {
	Name        string
	Description string
	AdminID     string
	MaxCapacity *int
}
