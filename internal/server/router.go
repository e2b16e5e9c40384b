package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/contacts-api/internal/handlers"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, contactH *handlers.ContactHandler,
	userH *handlers.UserHandler, authMW, limitMW gin.HandlerFunc) {
	// Liveness endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Contacts API"})
	})

	// Auth endpoints
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
		auth.GET("/refresh_token", authH.RefreshToken)
		auth.GET("/confirmed_email/:token", authH.ConfirmedEmail)
		auth.POST("/request_email", authH.RequestEmail)
	}

	// Contact endpoints
	contacts := r.Group("/api/contacts", authMW, limitMW)
	{
		contacts.GET("", contactH.ReadContacts)
		contacts.GET("/:id", contactH.ReadContact)
		contacts.GET("/search/:information", contactH.SearchContacts)
		contacts.GET("/get/7-birthdays", contactH.UpcomingBirthdays)
		contacts.POST("", contactH.CreateContact)
		contacts.PUT("/:id", contactH.UpdateContact)
		contacts.DELETE("/:id", contactH.DeleteContact)
	}

	// User endpoints
	users := r.Group("/api/users", authMW)
	{
		users.GET("/me", userH.GetMe)
		users.PATCH("/avatar", userH.UpdateAvatar)
	}
}
