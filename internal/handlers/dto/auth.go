package dto

import (
	"time"

	"github.com/thereayou/contacts-api/internal/models"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=5,max=16"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=16"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RequestEmail struct {
	Email string `json:"email" binding:"required,email"`
}

type UserPayload struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Avatar    string    `json:"avatar"`
}

type SignupResponse struct {
	User   UserPayload `json:"user"`
	Detail string      `json:"detail"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func NewUserPayload(user *models.User) UserPayload {
	return UserPayload{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Avatar:    user.Avatar,
	}
}
