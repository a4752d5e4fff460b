package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account is a registered user. Emails are unique case-insensitively;
// the stored password is compared verbatim, as the product always did.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Position  string    `json:"position,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// PublicAccount is Account without the password, for API responses.
type PublicAccount struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Position  string    `json:"position,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Position:  a.Position,
		Avatar:    a.Avatar,
		CreatedAt: a.CreatedAt,
	}
}
