package models

import "time"

type Note struct {
	ID        string    `bson:"_id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Color     int64     `bson:"color" json:"color"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
