package handlers

import (
	"net/http"
	"strconv"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/services"
	"github.com/gin-gonic/gin"
)

func ListVenues(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueType := helpers.StringTrim(c.Query("type"))
		exclude := helpers.StringTrim(c.Query("exclude"))

		forceRefresh := false
		if raw := c.Query("refresh"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid refresh parameter"))
				return
			}
			forceRefresh = parsed
		}

		venues, err := vs.ListVenues(c.Request.Context(), venueType, exclude, forceRefresh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.ListResponse(venues, len(venues)))
	}
}

func GetVenueByID(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID := helpers.StringTrim(c.Param("id"))
		if venueID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("venue ID is required"))
			return
		}

		venue, err := vs.GetVenueByID(c.Request.Context(), venueID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		if venue == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("venue not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(venue, ""))
	}
}
