package requestRepo

import (
	"context"
	"fmt"
	"time"

	"eccos/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the request queries and the advisory
// lock TTL reaping depend on. Safe to call on every startup.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := database.DB()

	requestIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "requester_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "reservation.date", Value: 1}},
		},
	}
	if _, err := db.Collection("requests").Indexes().CreateMany(ctx, requestIndexes); err != nil {
		return fmt.Errorf("error creating request indexes: %w", err)
	}

	lockIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := db.Collection("reservation_locks").Indexes().CreateOne(ctx, lockIndex); err != nil {
		return fmt.Errorf("error creating reservation lock TTL index: %w", err)
	}
	return nil
}
