package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/models"
	"github.com/dancedispatch/server/internal/services"
	"github.com/gin-gonic/gin"
)

const windowLayout = "2006-01-02"

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.EventFilter{
			VenueID: helpers.StringTrim(c.Query("venue")),
			HostID:  helpers.StringTrim(c.Query("host")),
		}

		if raw := c.Query("upcoming"); raw != "" {
			upcoming, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid upcoming parameter"))
				return
			}
			filter.UpcomingOnly = upcoming
		}
		if raw := c.Query("from"); raw != "" {
			from, err := time.Parse(windowLayout, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid from date, expected YYYY-MM-DD"))
				return
			}
			filter.From = from
		}
		if raw := c.Query("to"); raw != "" {
			to, err := time.Parse(windowLayout, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid to date, expected YYYY-MM-DD"))
				return
			}
			filter.To = to
		}

		events, err := es.ListEvents(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.ListResponse(events, len(events)))
	}
}

func GetEventByID(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("event ID is required"))
			return
		}

		event, err := es.GetEventByID(c.Request.Context(), eventID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		if event == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("event not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(event, ""))
	}
}

// UpdateEvent applies a partial-field PATCH body to one event. The body is
// a flat JSON object whose keys map case-insensitively onto the stored
// columns; scalar values are coerced to their stored string form.
func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("event ID is required"))
			return
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		fields := make(map[string]string, len(body))
		for name, value := range body {
			switch v := value.(type) {
			case string:
				fields[name] = v
			case float64:
				fields[name] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				fields[name] = strconv.FormatBool(v)
			case nil:
				fields[name] = ""
			default:
				fields[name] = fmt.Sprintf("%v", v)
			}
		}

		id, err := es.UpdateEvent(c.Request.Context(), eventID, fields)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("event not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		updated, err := es.GetEventByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "Event updated successfully"))
	}
}
