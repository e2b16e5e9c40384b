package dto

import (
	"time"

	"github.com/thereayou/contacts-api/internal/models"
)

type ContactRequest struct {
	Firstname string     `json:"firstname" binding:"required,min=1,max=50"`
	Lastname  string     `json:"lastname" binding:"required,min=1,max=50"`
	Email     string     `json:"email" binding:"required,email"`
	Phone     string     `json:"phone" binding:"required,min=7,max=20"`
	Birthday  *time.Time `json:"birthday" binding:"required"`
}

type ContactResponse struct {
	ID        uint       `json:"id"`
	Firstname string     `json:"firstname"`
	Lastname  string     `json:"lastname"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Birthday  *time.Time `json:"birthday"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewContactResponse(contact *models.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Firstname: contact.Firstname,
		Lastname:  contact.Lastname,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Birthday:  contact.Birthday,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

func NewContactListResponse(contacts []models.Contact) []ContactResponse {
	result := make([]ContactResponse, len(contacts))
	for i := range contacts {
		result[i] = NewContactResponse(&contacts[i])
	}
	return result
}
