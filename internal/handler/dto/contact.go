package dto

import "github.com/contactbook/contactbook/internal/model"

// CreateContactRequest represents the request body for adding a contact.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Country string `json:"country,omitempty"`
}

// ContactListData is the data object of a listing response.
type ContactListData struct {
	List    []*model.PublicContact `json:"list"`
	HasNext bool                   `json:"has_next"`
	HasPrev bool                   `json:"has_prev"`
	Page    int                    `json:"page"`
	Pages   int                    `json:"pages"`
	PerPage int                    `json:"per_page"`
	Total   int64                  `json:"total"`
}
