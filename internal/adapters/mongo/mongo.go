package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/estudos/internal/adapters/config"
	"github.com/rafaelleal24/estudos/internal/adapters/mongo/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewConnection(config config.MongoConfig) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetAppName("estudos").
		SetTimeout(config.Timeout).
		SetConnectTimeout(config.ConnectTimeout).
		SetServerSelectionTimeout(config.ServerSelectionTimeout).
		SetMaxPoolSize(config.MaxPoolSize).
		SetMinPoolSize(config.MinPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// indexes backs the product list order, the supplier join and the outbox scan.
var indexes = map[string][]mongo.IndexModel{
	document.ProductCollection: {
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "supplier_id", Value: 1}}},
	},
	document.SupplierCollection: {
		{Keys: bson.D{{Key: "name", Value: 1}}},
	},
	document.OutboxCollection: {
		{Keys: bson.D{{Key: "attempts", Value: 1}, {Key: "created_at", Value: 1}}},
	},
}

// EnsureIndexes creates the catalog indexes. Existing indexes are left as is.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

func Disconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}
