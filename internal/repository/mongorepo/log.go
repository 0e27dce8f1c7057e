package mongorepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

type logRepository struct {
	coll *mongo.Collection
}

// NewLogRepository returns a log repository over the logs collection.
func NewLogRepository(database *mongo.Database) repository.LogRepository {
	return &logRepository{coll: database.Collection(LogsCollection)}
}

func (r *logRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	doc := logDoc{
		Message:      entry.Message,
		Admin:        entry.Admin,
		RestaurantID: entry.RestaurantID,
		Details:      entry.Details,
		Timestamp:    storeNow(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID).Hex()
	entry.Timestamp = doc.Timestamp
	return nil
}

func (r *logRepository) ListRecent(ctx context.Context, limit int) ([]model.LogEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	docs, err := findAll[logDoc](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	entries := make([]model.LogEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.toModel())
	}
	return entries, nil
}
