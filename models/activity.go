package models

import "time"

// ActivityRecord is one entry in a capped, newest-first feed.
type ActivityRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Timestamp   time.Time `json:"timestamp"`
}
