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

var byID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

type menuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository returns a menu repository over the menus collection.
func NewMenuRepository(database *mongo.Database) repository.MenuRepository {
	return &menuRepository{coll: database.Collection(MenusCollection)}
}

func (r *menuRepository) Create(ctx context.Context, menu *model.Menu) error {
	doc := menuDoc{RestaurantID: menu.RestaurantID, Name: menu.Name, CreatedAt: storeNow()}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert menu: %w", err)
	}
	menu.ID = res.InsertedID.(primitive.ObjectID).Hex()
	menu.CreatedAt = doc.CreatedAt
	return nil
}

func (r *menuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Menu, error) {
	docs, err := findAll[menuDoc](ctx, r.coll, bson.M{"restaurant_id": restaurantID}, byID)
	if err != nil {
		return nil, err
	}
	menus := make([]model.Menu, 0, len(docs))
	for _, d := range docs {
		menus = append(menus, d.toModel())
	}
	return menus, nil
}

func (r *menuRepository) CountByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	return count(ctx, r.coll, bson.M{"restaurant_id": restaurantID})
}

type menuItemRepository struct {
	coll *mongo.Collection
}

// NewMenuItemRepository returns a menu item repository over the menuItems
// collection.
func NewMenuItemRepository(database *mongo.Database) repository.MenuItemRepository {
	return &menuItemRepository{coll: database.Collection(MenuItemsCollection)}
}

func (r *menuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	doc := newMenuItemDoc(item)
	doc.CreatedAt = storeNow()
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID).Hex()
	item.CreatedAt = doc.CreatedAt
	return nil
}

func (r *menuItemRepository) ListByMenu(ctx context.Context, menuID string) ([]model.MenuItem, error) {
	docs, err := findAll[menuItemDoc](ctx, r.coll, bson.M{"menu_id": menuID}, byID)
	if err != nil {
		return nil, err
	}
	items := make([]model.MenuItem, 0, len(docs))
	for _, d := range docs {
		item, err := d.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *menuItemRepository) CountByMenu(ctx context.Context, menuID string) (int64, error) {
	return count(ctx, r.coll, bson.M{"menu_id": menuID})
}
