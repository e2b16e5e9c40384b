package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thereayou/contacts-api/internal/database"
	"github.com/thereayou/contacts-api/internal/handlers/dto"
	"github.com/thereayou/contacts-api/internal/middleware"
	"github.com/thereayou/contacts-api/internal/models"
)

type ContactHandler struct {
	db *database.Database
}

func NewContactHandler(db *database.Database) *ContactHandler {
	return &ContactHandler{db: db}
}

func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CurrentUserKey).(*models.User)
}

// ReadContacts возвращает страницу контактов пользователя
func (h *ContactHandler) ReadContacts(c *gin.Context) {
	user := currentUser(c)

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid skip parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "25"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid limit parameter"})
		return
	}

	contacts, err := h.db.ListContacts(c.Request.Context(), user.ID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, dto.NewContactListResponse(contacts))
}

// ReadContact возвращает контакт по id
func (h *ContactHandler) ReadContact(c *gin.Context) {
	user := currentUser(c)

	contactID, err := parseContactID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid contact id"})
		return
	}

	contact, err := h.db.GetContactByID(c.Request.Context(), user.ID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get contact"})
		return
	}

	c.JSON(http.StatusOK, dto.NewContactResponse(contact))
}

// SearchContacts ищет контакты по точному совпадению имени, фамилии или email
func (h *ContactHandler) SearchContacts(c *gin.Context) {
	user := currentUser(c)
	information := c.Param("information")

	contacts, err := h.db.SearchContacts(c.Request.Context(), user.ID, information)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to search contacts"})
		return
	}

	c.JSON(http.StatusOK, dto.NewContactListResponse(contacts))
}

// UpcomingBirthdays возвращает контакты с днём рождения в ближайшие 7 дней
func (h *ContactHandler) UpcomingBirthdays(c *gin.Context) {
	user := currentUser(c)

	contacts, err := h.db.UpcomingBirthdays(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get birthdays"})
		return
	}

	c.JSON(http.StatusOK, dto.NewContactListResponse(contacts))
}

// CreateContact создаёт контакт текущего пользователя
func (h *ContactHandler) CreateContact(c *gin.Context) {
	user := currentUser(c)

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	contact := &models.Contact{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthday:  req.Birthday,
		UserID:    user.ID,
	}

	if err := h.db.CreateContact(c.Request.Context(), contact); err != nil {
		// Нарушение уникальности email/phone не транслируется отдельно
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create contact"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewContactResponse(contact))
}

// UpdateContact перезаписывает все поля контакта
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	user := currentUser(c)

	contactID, err := parseContactID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid contact id"})
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	fields := &models.Contact{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthday:  req.Birthday,
	}

	contact, err := h.db.UpdateContact(c.Request.Context(), user.ID, contactID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, dto.NewContactResponse(contact))
}

// DeleteContact удаляет контакт и возвращает удалённую запись
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	user := currentUser(c)

	contactID, err := parseContactID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid contact id"})
		return
	}

	contact, err := h.db.DeleteContact(c.Request.Context(), user.ID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete contact"})
		return
	}

	c.JSON(http.StatusOK, dto.NewContactResponse(contact))
}

func parseContactID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
