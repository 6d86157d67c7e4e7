package handlers

import (
	"net/http"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetUser(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := helpers.StringTrim(c.Param("id"))
		if userID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("user ID is required"))
			return
		}

		parsedID, err := uuid.Parse(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid user ID format"))
			return
		}

		accessToken, _ := c.Cookie("access_token")
		user, err := us.GetUser(parsedID, accessToken)
		if err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("user not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(user, ""))
	}
}

// Profile returns the session's own enriched claims.
func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"user_id":  claims.UserID,
			"email":    claims.Email,
			"role":     claims.GetSafeRole(),
			"username": claims.Username,
			"is_admin": claims.IsAdmin(),
		})
	}
}
