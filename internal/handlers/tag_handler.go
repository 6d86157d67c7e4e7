package handlers

import (
	"net/http"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/services"
	"github.com/gin-gonic/gin"
)

func ListTags(ts *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := ts.ListTags(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.ListResponse(tags, len(tags)))
	}
}
