package requestRepo

import (
	"context"
	"fmt"
	"time"

	"eccos/database"
	"eccos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	requestColl  *mongo.Collection
	resourceColl *mongo.Collection
}

// NewMongoRequestRepo constructs a new instance of MongoRequestRepo.
func NewMongoRequestRepo() RequestRepository {
	db := database.DB()
	return &MongoRequestRepo{
		requestColl:  db.Collection("requests"),
		resourceColl: db.Collection("resources"),
	}
}

// Insert persists a new request document.
func (repo *MongoRequestRepo) Insert(req *models.Request) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.requestColl.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	return nil
}

// GetByID retrieves a request document by ID.
func (repo *MongoRequestRepo) GetByID(id string) (*models.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var req models.Request
	filter := bson.M{"id": id}
	if err := repo.requestColl.FindOne(ctx, filter).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("error fetching request with id %s: %w", id, err)
	}
	return &req, nil
}

// UpdateStatus sets the status field and bumps the updated timestamp.
func (repo *MongoRequestRepo) UpdateStatus(id string, status models.Status) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := repo.requestColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating status of request %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Delete permanently removes a request document.
func (repo *MongoRequestRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.requestColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting request %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}
