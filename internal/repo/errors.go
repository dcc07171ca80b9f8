package repo

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound means no record matches the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrMalformedID means the identifier is not a valid ObjectID hex string.
	ErrMalformedID = errors.New("malformed id")
	// ErrDuplicateUser means a user with that email already exists.
	ErrDuplicateUser = errors.New("user already exists")
)

// parseID converts a URL id segment into an ObjectID. Anything that is not a
// well-formed 24-char hex string maps to ErrMalformedID (HTTP 400 upstream).
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrMalformedID
	}
	return oid, nil
}
