package refreshtokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/redis/go-redis/v9"
)

// RedisRepository keeps each record under its own key with a TTL matching
// the token expiry. DEL returns the number of removed keys, so only one
// concurrent Delete can observe 1.
type RedisRepository struct {
	rdb    redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewRedisRepository(rdb redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = "gophnotes"
	}
	return &RedisRepository{rdb: rdb, prefix: prefix, now: time.Now}
}

func (r *RedisRepository) key(userID, hashedToken string) string {
	return r.prefix + ":rt:" + userID + ":" + hashedToken
}

func (r *RedisRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	ttl := token.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode refresh token: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(token.UserID, token.HashedToken), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

func (r *RedisRepository) Find(ctx context.Context, userID, hashedToken string) (*models.RefreshToken, error) {
	raw, err := r.rdb.Get(ctx, r.key(userID, hashedToken)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}
	t := &models.RefreshToken{}
	if err := json.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("decode refresh token: %w", err)
	}
	return t, nil
}

func (r *RedisRepository) Delete(ctx context.Context, userID, hashedToken string) (bool, error) {
	n, err := r.rdb.Del(ctx, r.key(userID, hashedToken)).Result()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return n > 0, nil
}
