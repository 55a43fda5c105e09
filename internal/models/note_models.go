package models

import "time"

// Note is a personal note, independent of any client.
type Note struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RecordID returns the identifier used to patch local lists.
func (n Note) RecordID() string { return n.ID }
