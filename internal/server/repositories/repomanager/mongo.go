package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepositoryManager serves all repositories from one database.
// WithTx does not open a session: every repository write is a single
// document operation and refresh-token consumption relies on DeleteOne.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  *users.MongoRepository
	tokens *refreshtokens.MongoRepository
	notes  *notes.MongoRepository
}

func NewMongoRepositoryManager(client *mongo.Client, database string) *MongoRepositoryManager {
	db := client.Database(database)
	return &MongoRepositoryManager{
		client: client,
		users:  users.NewMongoRepository(db),
		tokens: refreshtokens.NewMongoRepository(db),
		notes:  notes.NewMongoRepository(db),
	}
}

func OpenMongo(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return NewMongoRepositoryManager(client, database), nil
}

func (m *MongoRepositoryManager) Users() users.Repository                 { return m.users }
func (m *MongoRepositoryManager) RefreshTokens() refreshtokens.Repository { return m.tokens }
func (m *MongoRepositoryManager) Notes() notes.Repository                 { return m.notes }

func (m *MongoRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return fn(ctx, m)
}

// RunMigrations ensures the collection indexes.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if err := m.users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := m.tokens.EnsureIndexes(ctx); err != nil {
		return err
	}
	return m.notes.EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
