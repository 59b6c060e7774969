package staffRepo

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

// StaffRepository persists staff profiles: the push-notification target and
// role flag for each identity-provider UID.
type StaffRepository interface {
	Upsert(profile *models.StaffProfile) error
	GetByUID(uid string) (*models.StaffProfile, error)
	SetFCMToken(uid, token string) error
	ListAdmins() ([]models.StaffProfile, error)
}

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new instance of MongoStaffRepo.
func NewMongoStaffRepo() StaffRepository {
	return &MongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}

// Upsert writes the profile fields sourced from the verified token, keeping
// any stored FCM token intact.
func (repo *MongoStaffRepo) Upsert(profile *models.StaffProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"uid": profile.UID}
	update := bson.M{"$set": bson.M{
		"name":  profile.Name,
		"email": profile.Email,
		"admin": profile.Admin,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting staff profile %s: %w", profile.UID, err)
	}
	return nil
}

func (repo *MongoStaffRepo) GetByUID(uid string) (*models.StaffProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.StaffProfile
	if err := repo.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("staff profile %s not found", uid)
		}
		return nil, fmt.Errorf("error fetching staff profile %s: %w", uid, err)
	}
	return &profile, nil
}

func (repo *MongoStaffRepo) SetFCMToken(uid, token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"uid": uid}
	update := bson.M{"$set": bson.M{"fcm_token": token}}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error setting FCM token for %s: %w", uid, err)
	}
	return nil
}

func (repo *MongoStaffRepo) ListAdmins() ([]models.StaffProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"admin": true})
	if err != nil {
		return nil, fmt.Errorf("error listing admin profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var admins []models.StaffProfile
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, fmt.Errorf("error decoding admin profiles: %w", err)
	}
	return admins, nil
}
