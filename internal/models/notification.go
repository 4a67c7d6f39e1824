package models

// Notification levels
const (
	NotificationInfo  = "info"
	NotificationError = "error"
)

// Notification is a toast shown to the user after submitting the form.
// swagger:model Notification
type Notification struct {
	// example: info
	Level string `json:"level"`
	// example: Proceeding with payment of 48000000 NGN for 0.5 BTC
	Message string `json:"message"`
}
