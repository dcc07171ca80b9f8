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
// PropertyRepo
// ==========================
type PropertyRepo struct {
	col *mongo.Collection
}

// ==========================
// Constructor
// ==========================
func NewPropertyRepo(db *mongo.Database) *PropertyRepo {
	return &PropertyRepo{col: db.Collection("properties")}
}

// ==========================
// List Properties
// ==========================

// List returns every property in the collection's natural order.
func (r *PropertyRepo) List(ctx context.Context) ([]models.Property, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var properties []models.Property
	if err := cur.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ==========================
// Get By ID
// ==========================
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	property := &models.Property{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return property, nil
}

// ==========================
// Create Property
// ==========================

// Create inserts the property and returns its system-generated id as hex.
func (r *PropertyRepo) Create(ctx context.Context, p *models.Property) (string, error) {
	p.CreatedAt = time.Now().UTC()
	if p.Images == nil {
		p.Images = []string{}
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}

	oid := res.InsertedID.(primitive.ObjectID)
	p.ID = oid
	return oid.Hex(), nil
}

// ==========================
// Update Property
// ==========================

// Update sets the named fields on the matching record. A well-formed id that
// matches nothing is a silent no-op.
func (r *PropertyRepo) Update(ctx context.Context, id string, fields bson.M) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$set": fields})
	return err
}

// ==========================
// Delete Property
// ==========================

// Delete removes the matching record; absent ids are a no-op.
func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
