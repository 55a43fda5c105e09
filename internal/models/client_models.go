package models

import "time"

// ClientStatus is the lifecycle flag shown on the clients table.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
)

// IsValidClientStatus checks if the provided status string is a valid ClientStatus.
func IsValidClientStatus(status string) bool {
	switch ClientStatus(status) {
	case ClientStatusActive, ClientStatusInactive:
		return true
	default:
		return false
	}
}

// Client represents a customer of the business owned by one user.
type Client struct {
	ID                  string       `json:"id" db:"id"`
	Name                string       `json:"name" db:"name"`
	Email               string       `json:"email" db:"email"`
	Phone               *string      `json:"phone,omitempty" db:"phone"`
	Address             *string      `json:"address,omitempty" db:"address"`
	PostalCode          *string      `json:"postal_code,omitempty" db:"postal_code"`
	Nationality         *string      `json:"nationality,omitempty" db:"nationality"`
	DateOfBirth         *string      `json:"date_of_birth,omitempty" db:"date_of_birth"`                 // YYYY-MM-DD
	AppointmentDateTime *string      `json:"appointment_date_time,omitempty" db:"appointment_date_time"` // YYYY-MM-DDTHH:mm
	Status              ClientStatus `json:"status" db:"status"`
	UserID              string       `json:"user_id" db:"user_id"`
	CreatedAt           time.Time    `json:"created_at" db:"created_at"`
}

// RecordID returns the identifier used to patch local lists.
func (c Client) RecordID() string { return c.ID }

// ClientNote is a free-text annotation attached to exactly one client.
type ClientNote struct {
	ID        string    `json:"id" db:"id"`
	ClientID  string    `json:"client_id" db:"client_id"`
	Text      string    `json:"text" db:"text"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RecordID returns the identifier used to patch local lists.
func (n ClientNote) RecordID() string { return n.ID }
