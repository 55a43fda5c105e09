package utils

import "strings"

// NewNullString is a helper for string pointers, returning nil if string is empty.
// Useful for fields that are optional and should be NULL in DB if not provided.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeOptional turns a pointer to a blank string into nil and trims the rest.
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return NewNullString(strings.TrimSpace(*s))
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
