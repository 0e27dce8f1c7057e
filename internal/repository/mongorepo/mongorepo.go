// Package mongorepo stores the dashboard data in MongoDB. Each level of the
// restaurants → menus → menuItems hierarchy is its own collection keyed by
// the parent id.
package mongorepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodadmin/internal/repository"
)

// Collection names.
const (
	RestaurantsCollection = "restaurants"
	MenusCollection       = "menus"
	MenuItemsCollection   = "menuItems"
	UsersCollection       = "users"
	AdminsCollection      = "admins"
	LogsCollection        = "logs"
)

// NewRepositories builds MongoDB-backed repositories on database.
func NewRepositories(database *mongo.Database) *repository.Repositories {
	return &repository.Repositories{
		Restaurants: NewRestaurantRepository(database),
		Menus:       NewMenuRepository(database),
		MenuItems:   NewMenuItemRepository(database),
		Users:       NewUserRepository(database),
		Admins:      NewAdminRepository(database),
		Logs:        NewLogRepository(database),
	}
}

// EnsureIndexes creates the secondary indexes the repositories query by.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		MenusCollection:     {{Keys: bson.D{{Key: "restaurant_id", Value: 1}}}},
		MenuItemsCollection: {{Keys: bson.D{{Key: "menu_id", Value: 1}}}},
		LogsCollection:      {{Keys: bson.D{{Key: "timestamp", Value: -1}}}},
		AdminsCollection: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
	}
	for coll, models := range indexes {
		if _, err := database.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// storeNow is the store-assigned timestamp. BSON dates keep milliseconds.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// parseID converts a hex id; ok is false for anything that is not an ObjectID.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

func count(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	return n, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}
