package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nestlist/nestlist/internal/models"
)

// Store interfaces are declared here, on the consumer side, so handler tests
// can run against in-memory fakes. The mongo implementations live in
// internal/repo.

type PropertyStore interface {
	List(ctx context.Context) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, p *models.Property) (string, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type RoommateStore interface {
	List(ctx context.Context) ([]models.Roommate, error)
	GetByID(ctx context.Context, id string) (*models.Roommate, error)
	Create(ctx context.Context, m *models.Roommate) (string, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
}
