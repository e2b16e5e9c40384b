package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/contacts-api/internal/database"
	"github.com/thereayou/contacts-api/internal/handlers/dto"
	"github.com/thereayou/contacts-api/internal/storage"
)

type UserHandler struct {
	db      *database.Database
	avatars storage.AvatarStore
}

func NewUserHandler(db *database.Database, avatars storage.AvatarStore) *UserHandler {
	return &UserHandler{db: db, avatars: avatars}
}

// GetMe возвращает текущего пользователя
func (h *UserHandler) GetMe(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, dto.NewUserPayload(user))
}

// UpdateAvatar загружает аватар в хранилище и сохраняет его URL
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user := currentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "cannot read file"})
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to upload avatar"})
		return
	}

	updated, err := h.db.UpdateAvatar(c.Request.Context(), user.Email, url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update avatar"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserPayload(updated))
}
