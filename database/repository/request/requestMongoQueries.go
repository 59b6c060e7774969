package requestRepo

import (
	"context"
	"fmt"
	"time"

	"eccos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns request documents matching the filter, newest first.
func (repo *MongoRequestRepo) List(filter Filter) ([]models.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.RequesterID != "" {
		query["requester_id"] = filter.RequesterID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.requestColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding requests: %w", err)
	}
	return requests, nil
}

// ListWindowsForDate returns all reservation windows dated date with Status
// and RequestID denormalized from the owning request. Every status is
// included; blocking-status filtering belongs to the availability engine.
func (repo *MongoRequestRepo) ListWindowsForDate(date string) ([]models.ReservationWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"type":             models.RequestTypeReservation,
		"reservation.date": date,
	}
	cursor, err := repo.requestColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservation windows for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var windows []models.ReservationWindow
	for cursor.Next(ctx) {
		var req models.Request
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("error decoding reservation request: %w", err)
		}
		if req.Reservation == nil {
			continue
		}
		w := *req.Reservation
		w.Status = req.Status
		w.RequestID = req.ID
		windows = append(windows, w)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return windows, nil
}

// ResourceLabels resolves resource ids against the resources catalog.
func (repo *MongoRequestRepo) ResourceLabels(ids []string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	labels := make(map[string]string, len(ids))
	for _, id := range ids {
		labels[id] = id
	}
	if len(ids) == 0 {
		return labels, nil
	}

	cursor, err := repo.resourceColl.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error fetching resource labels: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var res models.Resource
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("error decoding resource: %w", err)
		}
		if res.Label != "" {
			labels[res.ID] = res.Label
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return labels, nil
}
