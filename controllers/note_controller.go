// controllers/note_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/notenest/notenest_backend/middleware"
	"github.com/notenest/notenest_backend/models"
	"github.com/notenest/notenest_backend/services"
)

// NoteController handles the authenticated notes CRUD
type NoteController struct {
	notes  *services.NoteService
	logger *log.Logger
}

// NewNoteController creates a new note controller
func NewNoteController(notes *services.NoteService) *NoteController {
	return &NoteController{
		notes:  notes,
		logger: log.New(os.Stdout, "[NOTES] ", log.LstdFlags),
	}
}

// GetNotes returns all notes owned by the authenticated user
func (nc *NoteController) GetNotes(c echo.Context) error {
	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	notes, err := nc.notes.List(c.Request().Context(), userID)
	if err != nil {
		return writeFlowError(c, nc.logger, err)
	}

	return c.JSON(http.StatusOK, notes)
}

// CreateNote stores a new note for the authenticated user
func (nc *NoteController) CreateNote(c echo.Context) error {
	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var req models.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Title is required",
		})
	}

	note, err := nc.notes.Create(c.Request().Context(), userID, req)
	if err != nil {
		return writeFlowError(c, nc.logger, err)
	}

	return c.JSON(http.StatusCreated, note)
}

// DeleteNote removes a note owned by the authenticated user
func (nc *NoteController) DeleteNote(c echo.Context) error {
	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	if err := nc.notes.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		var flowErr *services.FlowError
		if errors.As(err, &flowErr) && flowErr.Kind == services.KindNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: flowErr.Message,
			})
		}
		return writeFlowError(c, nc.logger, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Note deleted successfully",
	})
}
