// services/note_service.go
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/notenest/notenest_backend/models"
	"github.com/notenest/notenest_backend/utils"
)

// NoteStore is the persistence surface for notes. Delete reports whether a
// matching note existed.
type NoteStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error)
	Insert(ctx context.Context, note *models.Note) (primitive.ObjectID, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
}

// NoteService handles per-user note operations
type NoteService struct {
	store NoteStore
	now   func() time.Time
}

// NewNoteService creates a new note service
func NewNoteService(store NoteStore) *NoteService {
	return &NoteService{
		store: store,
		now:   time.Now,
	}
}

// List returns all notes owned by the user
func (s *NoteService) List(ctx context.Context, userID string) ([]models.Note, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, validationError("Invalid user ID")
	}

	notes, err := s.store.FindByUser(ctx, ownerID)
	if err != nil {
		return nil, dependencyError("Server error", err)
	}

	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// Create stores a new note for the user
func (s *NoteService) Create(ctx context.Context, userID string, req models.NoteRequest) (*models.Note, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, validationError("Invalid user ID")
	}

	if req.Title == "" {
		return nil, validationError("Title is required")
	}

	note := &models.Note{
		UserID:    ownerID,
		Title:     utils.SanitizeInput(req.Title),
		Content:   utils.SanitizeInput(req.Content),
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}

	id, err := s.store.Insert(ctx, note)
	if err != nil {
		return nil, dependencyError("Server error", err)
	}
	note.ID = id

	return note, nil
}

// Delete removes a note owned by the user
func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return validationError("Invalid user ID")
	}

	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return validationError("Invalid note ID")
	}

	deleted, err := s.store.Delete(ctx, id, ownerID)
	if err != nil {
		return dependencyError("Server error", err)
	}
	if !deleted {
		return notFoundError("Note not found")
	}

	return nil
}
