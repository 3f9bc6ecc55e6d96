package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard-api/internal/models"
)

const userContextKey = "currentUser"

// RequireAPIKey gates every route behind a shared x-api-key header. The
// key is injected from config and compared in constant time so the check
// leaks nothing about the expected value.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	expected := []byte(apiKey)
	return func(c *gin.Context) {
		got := c.GetHeader("x-api-key")
		if got == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key missing"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "API key invalid"})
			return
		}
		c.Next()
	}
}

// RequireAuth resolves the bearer token to a User record and stores it in
// the request context for handlers to pick up with CurrentUser().
func RequireAuth(issuer *TokenIssuer, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth. Only call it on
// routes behind that middleware.
func CurrentUser(c *gin.Context) *models.User {
	u, _ := c.Get(userContextKey)
	user, _ := u.(*models.User)
	return user
}
