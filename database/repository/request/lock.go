package requestRepo

import (
	"context"
	"fmt"
	"time"

	"eccos/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// lockTTL bounds how long an orphaned lock can linger if a release is lost;
// the TTL index on expires_at reaps it.
const lockTTL = 15 * time.Second

type lockDoc struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

// MongoLockManager implements LockManager with advisory lock documents in a
// dedicated collection. The unique _id insert is the mutual exclusion: the
// second submission for the same (date, resource) pair gets a duplicate-key
// error and backs off.
type MongoLockManager struct {
	lockColl *mongo.Collection
}

// NewMongoLockManager constructs a new instance of MongoLockManager.
func NewMongoLockManager() LockManager {
	return &MongoLockManager{
		lockColl: database.DB().Collection("reservation_locks"),
	}
}

// Acquire takes one lock document per (date, resource) pair. On any failure
// the already-taken locks are released before returning.
func (m *MongoLockManager) Acquire(date string, resourceIDs []string) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	var taken []string
	release := func() {
		relCtx, relCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer relCancel()
		for _, id := range taken {
			_, _ = m.lockColl.DeleteOne(relCtx, bson.M{"_id": id})
		}
	}

	for _, rid := range resourceIDs {
		doc := lockDoc{
			ID:        date + "|" + rid,
			ExpiresAt: now.Add(lockTTL),
			CreatedAt: now,
		}
		if _, err := m.lockColl.InsertOne(ctx, doc); err != nil {
			release()
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrLockHeld
			}
			return nil, fmt.Errorf("error acquiring reservation lock %s: %w", doc.ID, err)
		}
		taken = append(taken, doc.ID)
	}
	return release, nil
}
