package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/notenest/notenest_backend/config"
	"github.com/notenest/notenest_backend/models"
)

// NoteRepository stores note documents in the notes collection
type NoteRepository struct {
	collection *mongo.Collection
}

func NewNoteRepository(db *mongo.Client) *NoteRepository {
	return &NoteRepository{
		collection: config.GetCollection(db, "notes"),
	}
}

// FindByUser returns the user's notes, oldest first
func (r *NoteRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Insert stores a new note and returns its id
func (r *NoteRepository) Insert(ctx context.Context, note *models.Note) (primitive.ObjectID, error) {
	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, note)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return note.ID, nil
}

// Delete removes the note if the user owns it, reporting whether a
// document matched
func (r *NoteRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
