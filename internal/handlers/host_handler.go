package handlers

import (
	"net/http"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/services"
	"github.com/gin-gonic/gin"
)

func ListHosts(hs *services.HostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hosts, err := hs.ListHosts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, helpers.ListResponse(hosts, len(hosts)))
	}
}

func GetHostByID(hs *services.HostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hostID := helpers.StringTrim(c.Param("id"))
		if hostID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("host ID is required"))
			return
		}

		host, err := hs.GetHostByID(c.Request.Context(), hostID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		if host == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("host not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(host, ""))
	}
}
