package repository

import (
	"context"
	"errors"

	"github.com/Shankz20191/qkart-backend/models"
)

// Sentinel errors shared by all repositories.
var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrVersionConflict is returned when a version-guarded write matched no
	// document, meaning a concurrent writer got there first.
	ErrVersionConflict = errors.New("aggregate version conflict")
)

// ProductRepo resolves catalog product ids to product documents.
type ProductRepo interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// CartRepo persists the cart aggregate as a whole; there are no
// partial-field updates.
type CartRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	// Save replaces the stored aggregate, guarded by the version the cart
	// was loaded at. ErrVersionConflict means the caller must re-read.
	Save(ctx context.Context, cart *models.Cart) error
	EnsureIndexes(ctx context.Context) error
}

// UserRepo is the read surface of the account provider.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// SettlementRepo commits a checkout: the wallet debit and the cart clear
// either both persist or neither does.
type SettlementRepo interface {
	Settle(ctx context.Context, user *models.User, cart *models.Cart) error
}
