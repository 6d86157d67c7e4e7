package handlers

import (
	"net/http"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/models"
	"github.com/dancedispatch/server/internal/services"
	"github.com/gin-gonic/gin"
)

// CheckSaved answers whether the current user has saved the entity. Runs
// behind OptionalAuth: anonymous callers get isSaved=false, not a 401.
func CheckSaved(ss *services.SavedService, kind models.SavedKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		entityID := helpers.StringTrim(c.Param("id"))
		if entityID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("entity ID is required"))
			return
		}

		userID := ""
		if claims, ok := currentUser(c); ok {
			userID = claims.UserID
		}

		isSaved, err := ss.IsSaved(c.Request.Context(), kind, entityID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, gin.H{"isSaved": isSaved})
	}
}

// ToggleSaved writes the saved flag for the current user. Requires an
// authenticated session.
func ToggleSaved(ss *services.SavedService, kind models.SavedKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		entityID := helpers.StringTrim(c.Param("id"))
		if entityID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("entity ID is required"))
			return
		}

		claims, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var reqBody struct {
			Saved *bool `json:"saved" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid request body: "+err.Error()))
			return
		}

		compositeID, err := ss.Toggle(c.Request.Context(), kind, entityID, claims.UserID, *reqBody.Saved)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{"id": compositeID, "saved": *reqBody.Saved}, ""))
	}
}

// ListSaved returns the entity ids the current user has saved for one
// entity kind, for the profile page.
func ListSaved(ss *services.SavedService, kind models.SavedKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		ids, err := ss.ListSaved(c.Request.Context(), kind, claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.ListResponse(ids, len(ids)))
	}
}
