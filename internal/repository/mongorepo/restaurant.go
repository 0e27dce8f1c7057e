package mongorepo

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodadmin/internal/errors"
	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

type restaurantRepository struct {
	coll *mongo.Collection
}

// NewRestaurantRepository returns a restaurant repository over the
// restaurants collection.
func NewRestaurantRepository(database *mongo.Database) repository.RestaurantRepository {
	return &restaurantRepository{coll: database.Collection(RestaurantsCollection)}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	doc := restaurantDoc{
		Name:      restaurant.Name,
		Rating:    restaurant.Rating,
		ImageURL:  restaurant.ImageURL,
		CreatedBy: restaurant.CreatedBy,
		CreatedAt: storeNow(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	restaurant.ID = res.InsertedID.(primitive.ObjectID).Hex()
	restaurant.CreatedAt = doc.CreatedAt
	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, errors.ErrRestaurantNotFound
	}
	var doc restaurantDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("find restaurant %s: %w", id, err)
	}
	restaurant := doc.toModel()
	return &restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	docs, err := findAll[restaurantDoc](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	restaurants := make([]model.Restaurant, 0, len(docs))
	for _, d := range docs {
		restaurants = append(restaurants, d.toModel())
	}
	return restaurants, nil
}

func (r *restaurantRepository) ListIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	docs, err := findAll[restaurantDoc](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID.Hex())
	}
	return ids, nil
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.coll, bson.M{})
}

func (r *restaurantRepository) Update(ctx context.Context, id string, update model.RestaurantUpdate) error {
	oid, ok := parseID(id)
	if !ok {
		return errors.ErrRestaurantNotFound
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":       update.Name,
		"rating":     update.Rating,
		"image_url":  update.ImageURL,
		"updated_at": update.UpdatedAt.UTC().Truncate(time.Millisecond),
	}})
	if err != nil {
		return fmt.Errorf("update restaurant %s: %w", id, err)
	}
	return nil
}
