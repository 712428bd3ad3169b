package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/notenest/notenest_backend/models"
	"github.com/notenest/notenest_backend/services"
)

type memNoteStore struct {
	notes map[primitive.ObjectID]models.Note
}

func newMemNoteStore() *memNoteStore {
	return &memNoteStore{notes: make(map[primitive.ObjectID]models.Note)}
}

func (m *memNoteStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Note, error) {
	var out []models.Note
	for _, n := range m.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNoteStore) Insert(_ context.Context, note *models.Note) (primitive.ObjectID, error) {
	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	m.notes[note.ID] = *note
	return note.ID, nil
}

func (m *memNoteStore) Delete(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	n, ok := m.notes[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	delete(m.notes, id)
	return true, nil
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newNoteTestServer() (*echo.Echo, *NoteController) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	nc := NewNoteController(services.NewNoteService(newMemNoteStore()))
	return e, nc
}

func noteRequest(e *echo.Echo, method, target, body, userID string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("userId", userID)
	}
	return rec, c
}

func TestCreateAndListNotes(t *testing.T) {
	e, nc := newNoteTestServer()
	owner := primitive.NewObjectID().Hex()

	rec, c := noteRequest(e, http.MethodPost, "/api/notes", `{"title":"Groceries","content":"milk"}`, owner)
	require.NoError(t, nc.CreateNote(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Groceries", created.Title)
	assert.False(t, created.ID.IsZero())

	rec, c = noteRequest(e, http.MethodGet, "/api/notes", "", owner)
	require.NoError(t, nc.GetNotes(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, created.ID, notes[0].ID)
}

func TestCreateNoteRequiresTitle(t *testing.T) {
	e, nc := newNoteTestServer()
	owner := primitive.NewObjectID().Hex()

	rec, c := noteRequest(e, http.MethodPost, "/api/notes", `{"content":"no title"}`, owner)
	require.NoError(t, nc.CreateNote(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Title is required")
}

func TestListNotesEmptyReturnsArray(t *testing.T) {
	e, nc := newNoteTestServer()

	rec, c := noteRequest(e, http.MethodGet, "/api/notes", "", primitive.NewObjectID().Hex())
	require.NoError(t, nc.GetNotes(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestDeleteNote(t *testing.T) {
	e, nc := newNoteTestServer()
	owner := primitive.NewObjectID().Hex()

	rec, c := noteRequest(e, http.MethodPost, "/api/notes", `{"title":"doomed"}`, owner)
	require.NoError(t, nc.CreateNote(c))
	var created models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// a different user cannot delete it
	rec, c = noteRequest(e, http.MethodDelete, "/api/notes/"+created.ID.Hex(), "", primitive.NewObjectID().Hex())
	c.SetParamNames("id")
	c.SetParamValues(created.ID.Hex())
	require.NoError(t, nc.DeleteNote(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, c = noteRequest(e, http.MethodDelete, "/api/notes/"+created.ID.Hex(), "", owner)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.Hex())
	require.NoError(t, nc.DeleteNote(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note deleted successfully")
}

func TestNotesRequireAuthentication(t *testing.T) {
	e, nc := newNoteTestServer()

	rec, c := noteRequest(e, http.MethodGet, "/api/notes", "", "")
	require.NoError(t, nc.GetNotes(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, c = noteRequest(e, http.MethodPost, "/api/notes", `{"title":"x"}`, "")
	require.NoError(t, nc.CreateNote(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
