package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/notenest/notenest_backend/controllers"
)

// RegisterAuthRoutes sets up the public authentication routes
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	auth := e.Group("/api/auth")

	auth.POST("/signup", authController.Signup)
	auth.POST("/verify-signup-otp", authController.VerifySignupOTP)
	auth.POST("/login", authController.Login)
	auth.POST("/verify-login-otp", authController.VerifyLoginOTP)
}
