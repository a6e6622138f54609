package models

import "time"

// RefreshToken is the server-side record of an issued refresh token.
// Only the digest of the raw token is kept.
type RefreshToken struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	HashedToken string    `bson:"hashed_token" json:"hashed_token"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
