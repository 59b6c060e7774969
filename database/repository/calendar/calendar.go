package calendarRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eccos/database"
	"eccos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDateNotOpen is returned when closing a date that was never opened.
var ErrDateNotOpen = errors.New("calendar date is not open")

// CalendarRepository persists the set of dates opened for self-service,
// instant-approval reservations.
type CalendarRepository interface {
	OpenDate(date, adminUID string) error
	CloseDate(date string) error
	IsDateOpen(date string) (bool, error)
	ListRange(from, to string) ([]models.OpenDate, error)
}

// MongoCalendarRepo implements CalendarRepository using MongoDB.
type MongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a new instance of MongoCalendarRepo.
func NewMongoCalendarRepo() CalendarRepository {
	return &MongoCalendarRepo{
		coll: database.DB().Collection("availability_calendar"),
	}
}

// OpenDate marks a date open. Opening an already-open date is a no-op.
func (repo *MongoCalendarRepo) OpenDate(date, adminUID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date}
	update := bson.M{"$setOnInsert": models.OpenDate{
		Date:      date,
		OpenedBy:  adminUID,
		CreatedAt: time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error opening calendar date %s: %w", date, err)
	}
	return nil
}

// CloseDate removes a date from the open set.
func (repo *MongoCalendarRepo) CloseDate(date string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return fmt.Errorf("error closing calendar date %s: %w", date, err)
	}
	if res.DeletedCount == 0 {
		return ErrDateNotOpen
	}
	return nil
}

// IsDateOpen reports whether a date is in the open set.
func (repo *MongoCalendarRepo) IsDateOpen(date string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := repo.coll.FindOne(ctx, bson.M{"date": date}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking calendar date %s: %w", date, err)
	}
	return true, nil
}

// ListRange returns open dates in [from, to], ascending. Lexicographic
// comparison is correct for "YYYY-MM-DD" strings.
func (repo *MongoCalendarRepo) ListRange(from, to string) ([]models.OpenDate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing calendar dates: %w", err)
	}
	defer cursor.Close(ctx)

	var dates []models.OpenDate
	if err := cursor.All(ctx, &dates); err != nil {
		return nil, fmt.Errorf("error decoding calendar dates: %w", err)
	}
	return dates, nil
}
