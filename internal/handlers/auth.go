package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/thereayou/contacts-api/internal/database"
	"github.com/thereayou/contacts-api/internal/email"
	"github.com/thereayou/contacts-api/internal/handlers/dto"
	"github.com/thereayou/contacts-api/internal/models"
	"github.com/thereayou/contacts-api/pkg/auth"
)

type AuthHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
	sender     email.Sender
}

func NewAuthHandler(db *database.Database, jwtMgr *auth.JWTManager, sender email.Sender) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr, sender: sender}
}

// Signup регистрирует пользователя и отправляет письмо с подтверждением
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if _, err := h.db.FindUserByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Account already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "cannot hash password"})
		return
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}

	if err := h.db.SaveUser(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "failed to create user"})
		return
	}

	h.sendConfirmation(c, user)

	c.JSON(http.StatusCreated, dto.SignupResponse{
		User:   dto.NewUserPayload(user),
		Detail: "User successfully created. Check your email for confirmation.",
	})
}

// Login выдаёт пару access/refresh токенов
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.db.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email"})
		return
	}

	if !user.Confirmed {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Email not confirmed"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid password"})
		return
	}

	h.issueTokens(c, user)
}

// RefreshToken обменивает refresh-токен на новую пару токенов
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	claims, err := h.jwtManager.Verify(token, auth.ScopeRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		return
	}

	user, err := h.db.FindUserByEmail(c.Request.Context(), claims.Subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		return
	}

	if user.RefreshToken != token {
		// Скомпрометированный или устаревший токен сбрасывает сессию
		if err := h.db.UpdateRefreshToken(c.Request.Context(), user.ID, ""); err != nil {
			log.Printf("failed to clear refresh token for %s: %v", user.Email, err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid refresh token"})
		return
	}

	h.issueTokens(c, user)
}

// ConfirmedEmail подтверждает e-mail по токену из письма
func (h *AuthHandler) ConfirmedEmail(c *gin.Context) {
	token := c.Param("token")

	claims, err := h.jwtManager.Verify(token, auth.ScopeEmail)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid token for email verification"})
		return
	}

	user, err := h.db.FindUserByEmail(c.Request.Context(), claims.Subject)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Verification error"})
		return
	}

	if user.Confirmed {
		c.JSON(http.StatusOK, gin.H{"message": "Your email is already confirmed"})
		return
	}

	if err := h.db.ConfirmEmail(c.Request.Context(), user.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Verification error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

// RequestEmail повторно отправляет письмо с подтверждением
func (h *AuthHandler) RequestEmail(c *gin.Context) {
	var req dto.RequestEmail
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.db.FindUserByEmail(c.Request.Context(), req.Email)
	if err == nil && user.Confirmed {
		c.JSON(http.StatusOK, gin.H{"message": "Your email is already confirmed"})
		return
	}
	if err == nil {
		h.sendConfirmation(c, user)
	}

	// Ответ одинаковый вне зависимости от того, существует ли аккаунт
	c.JSON(http.StatusOK, gin.H{"message": "Check your email for confirmation."})
}

func (h *AuthHandler) issueTokens(c *gin.Context, user *models.User) {
	accessToken, err := h.jwtManager.GenerateAccessToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not generate token"})
		return
	}

	refreshToken, err := h.jwtManager.GenerateRefreshToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not generate token"})
		return
	}

	if err := h.db.UpdateRefreshToken(c.Request.Context(), user.ID, refreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not store refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	})
}

func (h *AuthHandler) sendConfirmation(c *gin.Context, user *models.User) {
	token, err := h.jwtManager.GenerateEmailToken(user.Email)
	if err != nil {
		log.Printf("failed to generate email token for %s: %v", user.Email, err)
		return
	}
	if err := h.sender.SendConfirmation(c.Request.Context(), user.Email, user.Username, token); err != nil {
		log.Printf("failed to send confirmation email to %s: %v", user.Email, err)
	}
}
