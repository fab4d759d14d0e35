package dto

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
}

type CreateUserRequest struct {
	Username       string   `json:"username" binding:"required"`
	Roles          []string `json:"roles"`
	TelegramChatID *int64   `json:"telegram_chat_id"`
}

type CreateMonasteryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	AdminID     string `json:"admin_id" binding:"required,uuid"`
	MaxCapacity *int   `json:"max_capacity"`
}

type CreateSlotRequest struct {
	Date                string `json:"date" binding:"required"`
	TimeOfDay           string `json:"time_of_day" binding:"required"`
	Capacity            int    `json:"capacity" binding:"required,gt=0"`
	SpecialRequirements string `json:"special_requirements"`
}

type CreateBookingRequest struct {
	GuestName       string `json:"guest_name"`
	FoodDescription string `json:"food_description" binding:"required"`
	ServingCount    int    `json:"serving_count" binding:"required,gt=0"`
	ContactPhone    string `json:"contact_phone" binding:"required"`
	Notes           string `json:"notes"`
}

type TransitionRequest struct {
	Action        string `json:"action" binding:"required"`
	DeliveryNotes string `json:"delivery_notes"`
}
