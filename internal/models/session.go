package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is a server-side session record. The browser only ever holds the
// opaque token (signed); everything else stays in the store.
type Session struct {
	Token     string             `bson:"token" json:"token"`
	UserID    primitive.ObjectID `bson:"userId" json:"user_id"`
	Email     string             `bson:"email" json:"email"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expires_at"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
