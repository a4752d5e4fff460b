package models

import "time"

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Source      string    `json:"source,omitempty"`
	Author      string    `json:"author"`
	ReadTime    int       `json:"readTime"` // minutes, doubles as the popularity proxy
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}
