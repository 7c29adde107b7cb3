package repository

import (
	"context"
	"errors"

	"github.com/Shankz20191/qkart-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

// EnsureIndexes creates the unique index on email that enforces one cart
// per user.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	cart.Version = 0
	_, err := r.collection.InsertOne(ctx, cart)
	return err
}

// Save replaces the whole aggregate. The filter includes the version the
// cart was read at, so a concurrent save in between makes this one match
// nothing and fail with ErrVersionConflict instead of silently overwriting.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	version := cart.Version
	cart.Version = version + 1

	res, err := r.collection.ReplaceOne(ctx, bson.M{"email": cart.Email, "version": version}, cart)
	if err != nil {
		cart.Version = version
		return err
	}
	if res.MatchedCount == 0 {
		cart.Version = version
		return ErrVersionConflict
	}
	return nil
}
