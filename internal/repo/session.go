package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nestlist/nestlist/internal/models"
)

// ==========================
// SessionRepo
// ==========================
type SessionRepo struct {
	col *mongo.Collection
}

// ==========================
// Constructor
// ==========================
func NewSessionRepo(db *mongo.Database) *SessionRepo {
	return &SessionRepo{col: db.Collection("sessions")}
}

// ==========================
// Create Session
// ==========================
func (r *SessionRepo) Create(ctx context.Context, s *models.Session) error {
	_, err := r.col.InsertOne(ctx, s)
	return err
}

// ==========================
// Get By Token
// ==========================
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	session := &models.Session{}
	err := r.col.FindOne(ctx, bson.M{"token": token}).Decode(session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// ==========================
// Delete Session
// ==========================
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// ==========================
// Delete Expired
// ==========================

// DeleteExpired removes every session whose expiry is before now and returns
// the number removed. Called by the cron purge job.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": now}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
