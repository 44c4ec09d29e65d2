// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/zensupply/backend/internal/config"
	"github.com/zensupply/backend/internal/models"
)

// Initialize connects to MongoDB and verifies the connection with a ping.
func Initialize(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	if !cfg.Configured() {
		return nil, nil, fmt.Errorf("DATABASE_URL and DATABASE_NAME must both be set")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URL).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize)).
		SetServerSelectionTimeout(cfg.Timeout())

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("database", cfg.Name).Info("Database connection established successfully")
	return client, client.Database(cfg.Name), nil
}

func Close(client *mongo.Client) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

// EnsureIndexes creates the indexes the queries rely on. Failures are logged and
// skipped so that a bad index never keeps the service from starting.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	indexes := map[string][]mongo.IndexModel{
		models.CollectionProducts: {
			{
				Keys:    bson.D{{Key: "title", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_product_title"),
			},
		},
		models.CollectionOrders: {
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_order_created_at"),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_order_status_created_at"),
			},
		},
		models.CollectionFeedbacks: {
			{
				Keys:    bson.D{{Key: "rating", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_feedback_rating_created_at"),
			},
		},
	}

	for collection, idx := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, idx); err != nil {
			logrus.WithError(err).WithField("collection", collection).Warn("Failed to create indexes")
		}
	}
}
