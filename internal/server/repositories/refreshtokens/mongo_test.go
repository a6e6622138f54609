//go:build integration

package refreshtokens

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newMongoRepo(t *testing.T) *MongoRepository {
	t.Helper()
	uri := os.Getenv("GOPHNOTES_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("gophnotes_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	r := NewMongoRepository(db)
	require.NoError(t, r.EnsureIndexes(ctx))
	return r
}

func TestMongoRepository(t *testing.T) {
	ctx := context.Background()
	repo := newMongoRepo(t)

	require.NoError(t, repo.Create(ctx, sample("u1", "h1")))
	got, err := repo.Find(ctx, "u1", "h1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, err := repo.Delete(ctx, "u1", "h1"); err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())

	_, err = repo.Find(ctx, "u1", "h1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
