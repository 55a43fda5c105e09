package utils

// Keys under which the auth middleware stores the caller identity in the gin context.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserName  = "userName"
	ContextUserRole  = "userRole"
)
