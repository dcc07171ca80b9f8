package store

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nestlist/nestlist/internal/config"
	"github.com/nestlist/nestlist/internal/db"
)

// Open connects the CLI to the same document store the server uses,
// via MONGO_URI / DB_NAME. The returned close func disconnects the client.
func Open(ctx context.Context) (*mongo.Database, func(), error) {
	_ = godotenv.Load()
	cfg := config.Load()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}

	return client.Database(cfg.DBName), closeFn, nil
}
