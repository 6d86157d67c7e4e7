package handlers

import (
	"net/http"
	"os"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/models"
	"github.com/dancedispatch/server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"
)

func Signup(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		res, err := us.CreateUser(&user)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(res, "User created successfully"))
	}
}

// Login authenticates against the identity provider and stores the session
// tokens as http-only cookies for the middleware to pick up.
func Login(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		res, err := us.AuthenticateUser(reqBody.Email, reqBody.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse(err.Error()))
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		if tokenRes, ok := res.(*types.TokenResponse); ok && tokenRes.AccessToken != "" {
			c.SetCookie("access_token", tokenRes.AccessToken, tokenRes.ExpiresIn, "/", "", isProduction, true)
			c.SetCookie("refresh_token", tokenRes.RefreshToken, 3600*24*30, "/", "", isProduction, true)
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(res, "Logged in successfully"))
	}
}

// Logout handler
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"

		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged out successfully",
		})
	}
}
