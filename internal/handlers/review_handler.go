package handlers

import (
	"net/http"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/services"
	"github.com/gin-gonic/gin"
)

func ListEventReviews(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("event ID is required"))
			return
		}

		bundles, err := rs.ListForEvent(c.Request.Context(), eventID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.ListResponse(bundles, len(bundles)))
	}
}

// SubmitReviews persists one submission bundle: the body carries the
// entries the review form collected. Requires an authenticated session;
// a malformed entry rejects the whole submission.
func SubmitReviews(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("eventId"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("event ID is required"))
			return
		}

		claims, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var reqBody struct {
			Content []services.ReviewEntry `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid request body: "+err.Error()))
			return
		}

		if err := rs.Submit(c.Request.Context(), reqBody.Content, claims.UserID, eventID); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "Review submitted successfully"))
	}
}
