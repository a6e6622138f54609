package notes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjects is an in-memory bucket.
type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	getErr  error
}

func newFakeObjects() *fakeObjects { return &fakeObjects{objects: map[string][]byte{}} }

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeObjects) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for _, k := range keys {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	return out, nil
}

func stores() map[string]Repository {
	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"s3":     NewS3Repository(newFakeObjects(), "bucket"),
	}
}

func TestStores_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	for name, repo := range stores() {
		t.Run(name, func(t *testing.T) {
			t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

			_, err := repo.Upsert(ctx, &models.Note{ID: "b", OwnerID: "u1", Title: "second", CreatedAt: t0.Add(time.Minute)})
			require.NoError(t, err)
			_, err = repo.Upsert(ctx, &models.Note{ID: "a", OwnerID: "u1", Title: "first", CreatedAt: t0})
			require.NoError(t, err)
			_, err = repo.Upsert(ctx, &models.Note{ID: "c", OwnerID: "u2", Title: "other", CreatedAt: t0})
			require.NoError(t, err)

			list, err := repo.ListByOwner(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "a", list[0].ID)
			assert.Equal(t, "b", list[1].ID)

			updated, err := repo.Upsert(ctx, &models.Note{ID: "a", OwnerID: "u1", Title: "renamed", Color: 3, CreatedAt: t0.Add(time.Hour)})
			require.NoError(t, err)
			assert.Equal(t, "renamed", updated.Title)
			assert.True(t, updated.CreatedAt.Equal(t0), "created_at must survive updates")

			empty, err := repo.ListByOwner(ctx, "nobody")
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)
		})
	}
}

func TestStores_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	for name, repo := range stores() {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Upsert(ctx, &models.Note{ID: "n", OwnerID: "alice", Title: "mine"})
			require.NoError(t, err)

			_, err = repo.Upsert(ctx, &models.Note{ID: "n", OwnerID: "bob", Title: "stolen"})
			assert.ErrorIs(t, err, common.ErrorNotFound)

			ok, err := repo.Delete(ctx, "n", "bob")
			require.NoError(t, err)
			assert.False(t, ok)

			list, err := repo.ListByOwner(ctx, "alice")
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "mine", list[0].Title)

			bobs, err := repo.ListByOwner(ctx, "bob")
			require.NoError(t, err)
			assert.Empty(t, bobs)

			ok, err = repo.Delete(ctx, "n", "alice")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = repo.Delete(ctx, "n", "alice")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestS3Repository_Layout(t *testing.T) {
	ctx := context.Background()
	objs := newFakeObjects()
	repo := NewS3Repository(objs, "bucket")

	_, err := repo.Upsert(ctx, &models.Note{ID: "n1", OwnerID: "u1", Title: "t"})
	require.NoError(t, err)

	assert.Contains(t, objs.objects, "notes/u1/n1.json")
	assert.Equal(t, "u1", string(objs.objects["owners/n1"]))
	assert.Contains(t, string(objs.objects["notes/u1/n1.json"]), `"title":"t"`)
}

func TestS3Repository_GetError(t *testing.T) {
	ctx := context.Background()
	objs := newFakeObjects()
	repo := NewS3Repository(objs, "bucket")
	objs.getErr = errors.New("unreachable")

	_, err := repo.Upsert(ctx, &models.Note{ID: "n1", OwnerID: "u1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Delete(ctx, "n1", "u1")
	assert.Error(t, err)
}

func TestS3Repository_CorruptObject(t *testing.T) {
	ctx := context.Background()
	objs := newFakeObjects()
	objs.objects["notes/u1/bad.json"] = []byte("{")
	repo := NewS3Repository(objs, "bucket")

	_, err := repo.ListByOwner(ctx, "u1")
	assert.Error(t, err)
}
