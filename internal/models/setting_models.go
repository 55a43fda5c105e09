package models

import "time"

// UserSettings holds one user's preferences. Nil fields were never saved.
type UserSettings struct {
	UserID       string    `json:"user_id" db:"user_id"`
	CompanyName  *string   `json:"company_name,omitempty" db:"company_name"`
	Timezone     *string   `json:"timezone,omitempty" db:"timezone"`
	BusinessType *string   `json:"business_type,omitempty" db:"business_type"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// BusinessTypes lists the values accepted for UserSettings.BusinessType.
var BusinessTypes = []string{
	"Tech",
	"Marketing",
	"Finance",
	"Health",
	"Education",
	"Retail",
	"Manufacturing",
	"Logistics",
	"Hospitality",
	"Energy",
	"Agriculture",
	"Transportation",
	"Entertainment",
	"Others",
}

// IsValidBusinessType reports whether t is one of BusinessTypes.
func IsValidBusinessType(t string) bool {
	for _, bt := range BusinessTypes {
		if bt == t {
			return true
		}
	}
	return false
}
