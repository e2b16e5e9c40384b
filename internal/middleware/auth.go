package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/contacts-api/internal/database"
	"github.com/thereayou/contacts-api/pkg/auth"
)

const CurrentUserKey = "currentUser"

// AuthMiddleware проверяет access-токен и кладёт пользователя в контекст
func AuthMiddleware(jwtManager *auth.JWTManager, db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			c.Abort()
			return
		}

		claims, err := jwtManager.Verify(token, auth.ScopeAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			c.Abort()
			return
		}

		user, err := db.FindUserByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
