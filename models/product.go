package models

import "time"

// Product covers both the seeded reference catalog (numeric string ids
// "1".."15", immutable) and admin-created items (millisecond ids).
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Stock         int       `json:"stock"`
	Rating        int       `json:"rating,omitempty"`
	RatingCount   int       `json:"ratingCount,omitempty"`
	Badge         string    `json:"badge,omitempty"`
	BadgeType     string    `json:"badgeType,omitempty"`
	Features      []string  `json:"features,omitempty"`
	Published     bool      `json:"published"`
	Seeded        bool      `json:"seeded,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// CartItem is one shop cart line. Quantity zero removes the line.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Sale is a drained cart, recorded at checkout and rolled into the
// admin stats total.
type Sale struct {
	ID        string     `json:"id"`
	AccountID string     `json:"accountId"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
}
