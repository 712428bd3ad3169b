package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/notenest/notenest_backend/controllers"
	"github.com/notenest/notenest_backend/middleware"
)

// RegisterNoteRoutes sets up the JWT-protected notes routes
func RegisterNoteRoutes(e *echo.Echo, noteController *controllers.NoteController) {
	notes := e.Group("/api/notes")
	notes.Use(middleware.JWTMiddleware())

	notes.GET("", noteController.GetNotes)
	notes.POST("", noteController.CreateNote)
	notes.DELETE("/:id", noteController.DeleteNote)
}
