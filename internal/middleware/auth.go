package middleware

import (
	"net/http"
	"strings"

	"github.com/antoniuk-oleksandr/blogs-app/internal/token"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserID     = "user_id"
	ContextUsername   = "username"
	ContextEmail      = "email"
	ContextPictureURL = "profile_picture_url"
)

// AuthRequired checks for a valid Bearer access token. Refresh tokens are
// rejected here even though they carry the same signature; only access-type
// tokens grant request access.
func AuthRequired(signer *token.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := signer.ParseClaims(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		if claims["type"] != token.TypeAccess {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, stringClaim(claims, "id"))
		c.Set(ContextUsername, stringClaim(claims, "username"))
		c.Set(ContextEmail, stringClaim(claims, "email"))
		c.Set(ContextPictureURL, stringClaim(claims, "profilePictureUrl"))

		c.Next()
	}
}

func stringClaim(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// GetUserID gets the current user ID from context
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(ContextUserID); exists {
		return id.(string)
	}
	return ""
}

// GetUsername gets the current username from context
func GetUsername(c *gin.Context) string {
	if username, exists := c.Get(ContextUsername); exists {
		return username.(string)
	}
	return ""
}

// GetEmail gets the current user email from context
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextEmail); exists {
		return email.(string)
	}
	return ""
}
