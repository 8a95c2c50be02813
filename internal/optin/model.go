package optin

import "time"

// OptIn is a guest's consent to receive the weekly menu over WhatsApp.
type OptIn struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
