package mongorepo

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"foodadmin/internal/errors"
	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository returns a user repository over the users collection.
func NewUserRepository(database *mongo.Database) repository.UserRepository {
	return &userRepository{coll: database.Collection(UsersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	doc := userDoc{Name: user.Name, Email: user.Email, CreatedAt: storeNow()}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID).Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.coll, bson.M{})
}

type adminRepository struct {
	coll *mongo.Collection
}

// NewAdminRepository returns an admin repository over the admins collection.
func NewAdminRepository(database *mongo.Database) repository.AdminRepository {
	return &adminRepository{coll: database.Collection(AdminsCollection)}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	now := storeNow()
	doc := adminDoc{
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		Active:       admin.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	admin.ID = res.InsertedID.(primitive.ObjectID).Hex()
	admin.CreatedAt, admin.UpdatedAt = now, now
	return nil
}

func (r *adminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, errors.ErrAdminNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *adminRepository) findOne(ctx context.Context, filter bson.M) (*model.Admin, error) {
	var doc adminDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	admin := doc.toModel()
	return &admin, nil
}
