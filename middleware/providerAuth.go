package middleware

import (
	"net/http"
	"strings"

	"guidely/utils"

	"github.com/gin-gonic/gin"
)

// ProviderAuthMiddleware verifies Firebase ID tokens issued by the external
// identity provider and pins the caller to the :id route parameter, so a
// provider can only edit their own calendar.
func ProviderAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.GetAuthClient().VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid identity token"})
			return
		}

		if id := c.Param("id"); id != "" && token.UID != id {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token does not match requested provider"})
			return
		}

		c.Set("providerUID", token.UID)
		c.Next()
	}
}
