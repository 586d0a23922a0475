package mongodb

import (
	"context"
	"errors"

	"workforce-api/internal/workforce/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionCounters is the auxiliary counter collection name.
const CollectionCounters = "counters"

// CounterRepository mints sequence numbers with an atomic $inc upsert, so a
// counter document is created on first use and never races concurrent
// callers.
type CounterRepository struct {
	collection *mongo.Collection
}

// NewCounterRepository creates the counter repository. The counter collection
// is keyed by _id (the collection name), so no extra index is needed.
func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{collection: db.Collection(CollectionCounters)}
}

// Next atomically increments and returns the sequence for name.
func (r *CounterRepository) Next(ctx context.Context, name string) (int64, error) {
	var counter model.Counter
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// Current returns the sequence for name without bumping it; zero when the
// counter does not exist yet.
func (r *CounterRepository) Current(ctx context.Context, name string) (int64, error) {
	var counter model.Counter
	err := r.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&counter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	return counter.Seq, nil
}
