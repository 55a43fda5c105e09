package models

import "time"

// Feedback is an append-only free-form submission.
type Feedback struct {
	ID        string    `json:"id" db:"id"`
	UserID    *string   `json:"user_id,omitempty" db:"user_id"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Message   string    `json:"message" db:"message"`
	Rating    *int      `json:"rating,omitempty" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MailContent is the message part of a queued mail.
type MailContent struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// MailMessage is an intent record picked up by the external delivery worker.
type MailMessage struct {
	ID        string      `json:"id" db:"id"`
	To        string      `json:"to" db:"recipient"`
	Message   MailContent `json:"message"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}
