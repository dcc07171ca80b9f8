package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roommate is an independent listing. PropertyTitle is a free-text label,
// not a reference: deleting or renaming a Property leaves it untouched.
type Roommate struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Age           int                `bson:"age" json:"age"`
	Image         string             `bson:"image" json:"image"`
	PropertyTitle string             `bson:"propertyTitle" json:"property_title"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
}
