package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	ContextUserIDKey    = "userID"
	ContextTokenKey     = "accessToken"
)

// TokenValidator resolves a bearer token to its user id.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

func bearerToken(c *gin.Context) (string, string) {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader == "" {
		return "", "authorization header required"
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != authorizationType {
		return "", "invalid authorization header format"
	}
	return fields[1], ""
}

func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, problem := bearerToken(c)
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}

		userID, err := tokens.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextTokenKey, tokenString)

		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}

func GetToken(c *gin.Context) string {
	return c.GetString(ContextTokenKey)
}
