package handlers

import (
	"github.com/dancedispatch/server/internal/helpers"
	"github.com/gin-gonic/gin"
)

// currentUser pulls the enhanced claims the auth middleware stored on the
// context. ok is false for anonymous requests.
func currentUser(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}
