package model

import "time"

// Contact is a single address-book entry owned by exactly one user.
// Contacts are append-only and are never visible outside their owner.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Country   string    `json:"country"`
	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicContact is the caller-facing projection of a Contact.
// The owner id is deliberately not part of it.
type PublicContact struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
	Address string `json:"address"`
}

// PublicView returns the caller-facing projection of the contact.
func (c *Contact) PublicView() *PublicContact {
	return &PublicContact{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Country: c.Country,
		Address: c.Address,
	}
}
