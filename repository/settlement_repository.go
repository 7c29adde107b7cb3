package repository

import (
	"context"

	"github.com/Shankz20191/qkart-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SettlementRepository commits checkout across the users and carts
// collections in a single MongoDB transaction, so a crash can never leave
// the wallet debited with the cart still full (or the reverse).
type SettlementRepository struct {
	client *mongo.Client
	users  *mongo.Collection
	carts  *mongo.Collection
}

func NewSettlementRepository(client *mongo.Client, db *mongo.Database) *SettlementRepository {
	return &SettlementRepository{
		client: client,
		users:  db.Collection("users"),
		carts:  db.Collection("carts"),
	}
}

// Settle persists the already-debited user and the already-cleared cart.
// The cart write is version-guarded: if the cart changed since the caller
// read it, the whole transaction aborts with ErrVersionConflict and both
// aggregates keep their prior state.
func (r *SettlementRepository) Settle(ctx context.Context, user *models.User, cart *models.Cart) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	version := cart.Version
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.users.UpdateOne(sc,
			bson.M{"email": user.Email},
			bson.M{"$set": bson.M{"walletMoney": user.WalletMoney}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}

		res, err = r.carts.UpdateOne(sc,
			bson.M{"email": cart.Email, "version": version},
			bson.M{
				"$set": bson.M{"cartItems": []models.CartItem{}},
				"$inc": bson.M{"version": 1},
			},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrVersionConflict
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	cart.Version = version + 1
	return nil
}
