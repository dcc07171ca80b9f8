package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nestlist/nestlist/internal/models"
)

// ==========================
// RoommateRepo
// ==========================
type RoommateRepo struct {
	col *mongo.Collection
}

// ==========================
// Constructor
// ==========================
func NewRoommateRepo(db *mongo.Database) *RoommateRepo {
	return &RoommateRepo{col: db.Collection("roommates")}
}

// ==========================
// List Roommates
// ==========================
func (r *RoommateRepo) List(ctx context.Context) ([]models.Roommate, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var roommates []models.Roommate
	if err := cur.All(ctx, &roommates); err != nil {
		return nil, err
	}
	return roommates, nil
}

// ==========================
// Get By ID
// ==========================
func (r *RoommateRepo) GetByID(ctx context.Context, id string) (*models.Roommate, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	roommate := &models.Roommate{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(roommate)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return roommate, nil
}

// ==========================
// Create Roommate
// ==========================
func (r *RoommateRepo) Create(ctx context.Context, m *models.Roommate) (string, error) {
	m.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return "", err
	}

	oid := res.InsertedID.(primitive.ObjectID)
	m.ID = oid
	return oid.Hex(), nil
}

// ==========================
// Update Roommate
// ==========================
func (r *RoommateRepo) Update(ctx context.Context, id string, fields bson.M) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$set": fields})
	return err
}

// ==========================
// Delete Roommate
// ==========================
func (r *RoommateRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
