package notes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "notes"

type MongoRepository struct {
	c *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{c: db.Collection(CollectionName)}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create notes index: %w", err)
	}
	return nil
}

// Upsert matches on (_id, owner_id). If the id exists under another owner
// the implied insert collides on _id, which is reported as not found.
func (r *MongoRepository) Upsert(ctx context.Context, note *models.Note) (*models.Note, error) {
	filter := bson.M{"_id": note.ID, "owner_id": note.OwnerID}
	update := bson.M{
		"$set":         bson.M{"title": note.Title, "content": note.Content, "color": note.Color},
		"$setOnInsert": bson.M{"created_at": note.CreatedAt},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	out := &models.Note{}
	if err := r.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(out); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *MongoRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.c.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}

	result := []*models.Note{}
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return result, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return res.DeletedCount > 0, nil
}
