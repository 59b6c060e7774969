package messageRepo

import (
	"context"
	"fmt"
	"time"

	"eccos/database"
	"eccos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository persists per-request discussion threads.
type MessageRepository interface {
	Append(msg *models.Message) error
	ListByRequest(requestID string) ([]models.Message, error)
	// MarkRead flags all messages in the thread written by the other side
	// as read. readerIsAdmin identifies which side is reading.
	MarkRead(requestID string, readerIsAdmin bool) error
	// UnreadCount counts messages from the other side not yet read.
	UnreadCount(requestID string, readerIsAdmin bool) (int64, error)
	// DeleteThread removes every message of a request (used on hard delete).
	DeleteThread(requestID string) error
}

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo constructs a new instance of MongoMessageRepo.
func NewMongoMessageRepo() MessageRepository {
	return &MongoMessageRepo{
		coll: database.DB().Collection("request_messages"),
	}
}

func (repo *MongoMessageRepo) Append(msg *models.Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("error appending message to request %s: %w", msg.RequestID, err)
	}
	return nil
}

func (repo *MongoMessageRepo) ListByRequest(requestID string) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"request_id": requestID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing messages for request %s: %w", requestID, err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding messages: %w", err)
	}
	return messages, nil
}

func (repo *MongoMessageRepo) MarkRead(requestID string, readerIsAdmin bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"request_id": requestID,
		"from_admin": !readerIsAdmin,
		"read":       false,
	}
	update := bson.M{"$set": bson.M{"read": true}}
	if _, err := repo.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("error marking messages read for request %s: %w", requestID, err)
	}
	return nil
}

func (repo *MongoMessageRepo) UnreadCount(requestID string, readerIsAdmin bool) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"request_id": requestID,
		"from_admin": !readerIsAdmin,
		"read":       false,
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages for request %s: %w", requestID, err)
	}
	return count, nil
}

func (repo *MongoMessageRepo) DeleteThread(requestID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteMany(ctx, bson.M{"request_id": requestID}); err != nil {
		return fmt.Errorf("error deleting message thread for request %s: %w", requestID, err)
	}
	return nil
}
