package models

// Session identifies the authenticated user of a request.
type Session struct {
	ID       string // Session id stored in Redis
	UserID   int64
	Username string
}
