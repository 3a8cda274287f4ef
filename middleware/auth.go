package middleware

import (
	"net/http"
	"strings"

	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware authenticates the bearer token and puts the account id
// on the context. There is no role claim: whether an account acts as customer
// or provider on a given request is decided by ownership checks in the
// services.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		accountID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("accountID", accountID)
		c.Next()
	}
}
