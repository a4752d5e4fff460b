package models

import "time"

// Notification is one entry in the admin-sent outbox. Target is an
// account id or "all".
type Notification struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"` // info, warning, success
	Target  string    `json:"target"`
	SentBy  string    `json:"sentBy"`
	SentAt  time.Time `json:"sentAt"`
	Read    bool      `json:"read"`
}
