package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/notenest/notenest_backend/controllers"
)

// SetupRoutes registers all application routes
func SetupRoutes(e *echo.Echo, authController *controllers.AuthController, noteController *controllers.NoteController) {
	RegisterAuthRoutes(e, authController)
	RegisterNoteRoutes(e, noteController)
}
