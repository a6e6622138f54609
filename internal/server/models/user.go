// Package models holds the server-side persisted records.
package models

import (
	"strings"
	"time"
)

type User struct {
	ID             string    `bson:"_id" json:"id"`
	Email          string    `bson:"email" json:"email"`
	HashedPassword string    `bson:"hashed_password" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// NormalizeEmail is applied on every write and lookup of User.Email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
