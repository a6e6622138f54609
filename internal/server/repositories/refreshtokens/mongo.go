package refreshtokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "refresh_tokens"

type MongoRepository struct {
	c *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{c: db.Collection(CollectionName)}
}

// EnsureIndexes creates the lookup index and a TTL index that lets the
// server purge expired records.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "hashed_token", Value: 1}}},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	})
	if err != nil {
		return fmt.Errorf("create refresh token indexes: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	if _, err := r.c.InsertOne(ctx, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) Find(ctx context.Context, userID, hashedToken string) (*models.RefreshToken, error) {
	t := &models.RefreshToken{}
	err := r.c.FindOne(ctx, bson.M{"user_id": userID, "hashed_token": hashedToken}).Decode(t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *MongoRepository) Delete(ctx context.Context, userID, hashedToken string) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"user_id": userID, "hashed_token": hashedToken})
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return res.DeletedCount > 0, nil
}
