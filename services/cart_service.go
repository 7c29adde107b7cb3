package services

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/Shankz20191/qkart-backend/common/errors"
	"github.com/Shankz20191/qkart-backend/models"
	"github.com/Shankz20191/qkart-backend/repository"

	"go.uber.org/zap"
)

type ICatalog interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

type IEventProducer interface {
	SendCheckoutEvent(ctx context.Context, event models.CheckoutEvent) error
}

// CartService owns the cart lifecycle: add/update/remove on the aggregate
// and checkout settlement against the user's wallet. Every mutation is a
// read-modify-save of the whole aggregate; the version-guarded save turns
// lost-update races into retriable conflicts.
type CartService struct {
	catalog  ICatalog
	carts    repository.CartRepo
	users    repository.UserRepo
	settle   repository.SettlementRepo
	producer IEventProducer

	defaultAddress       string
	defaultPaymentOption string
	logger               *zap.Logger
}

func NewCartService(
	catalog ICatalog,
	carts repository.CartRepo,
	users repository.UserRepo,
	settle repository.SettlementRepo,
	producer IEventProducer,
	defaultAddress string,
	defaultPaymentOption string,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		catalog:              catalog,
		carts:                carts,
		users:                users,
		settle:               settle,
		producer:             producer,
		defaultAddress:       defaultAddress,
		defaultPaymentOption: defaultPaymentOption,
		logger:               logger,
	}
}

// GetCartByUser fetches the user's cart.
func (s *CartService) GetCartByUser(ctx context.Context, email string) (*models.Cart, error) {
	cart, err := s.carts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return cart, nil
}

// AddProductToCart adds a new product line to the user's cart, creating the
// cart on first use. A product already present fails: quantity changes go
// through UpdateProductQuantity.
func (s *CartService) AddProductToCart(ctx context.Context, email, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		cart = &models.Cart{
			Email:         email,
			PaymentOption: s.defaultPaymentOption,
			CartItems: []models.CartItem{
				{Product: *product, Quantity: quantity},
			},
		}
		if err := s.carts.Create(ctx, cart); err != nil {
			return nil, apperrors.Internal(err)
		}
		return cart, nil
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if cart.FindItem(product.ID.Hex()) >= 0 {
		return nil, ErrProductInCart
	}

	cart.CartItems = append(cart.CartItems, models.CartItem{Product: *product, Quantity: quantity})
	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateProductQuantity replaces the quantity of an existing cart line. The
// line's embedded snapshot is left untouched.
func (s *CartService) UpdateProductQuantity(ctx context.Context, email, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.carts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if len(cart.CartItems) == 0 {
		return nil, ErrCartNotFound
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	index := cart.FindItem(product.ID.Hex())
	if index < 0 {
		return nil, ErrProductNotInCart
	}

	cart.CartItems[index].Quantity = quantity
	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveProductFromCart removes exactly one line from the cart. If the line
// is absent and the product no longer resolves in the catalog either, the
// removal is a no-op rather than an error.
func (s *CartService) RemoveProductFromCart(ctx context.Context, email, productID string) (*models.Cart, error) {
	cart, err := s.carts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if len(cart.CartItems) == 0 {
		return nil, ErrCartNotFound
	}

	index := cart.FindItem(productID)
	if index < 0 {
		_, err := s.catalog.GetProduct(ctx, productID)
		if errors.Is(err, ErrProductNotFound) {
			// Nothing to remove and nothing to remove it by.
			return cart, nil
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrProductNotInCart
	}

	cart.CartItems = append(cart.CartItems[:index], cart.CartItems[index+1:]...)
	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Checkout settles the cart against the user's wallet. Preconditions run in
// a fixed order and the first failure wins; on success the wallet debit and
// the cart clear commit together.
func (s *CartService) Checkout(ctx context.Context, email string) error {
	cart, err := s.carts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCartNotFound
	}
	if err != nil {
		return apperrors.Internal(err)
	}

	if len(cart.CartItems) == 0 {
		return ErrCartEmpty
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// The email comes from an authenticated principal; a missing account
		// document is state corruption, not caller error.
		return apperrors.Internal(err)
	}

	if !user.AddressSet {
		return ErrAddressNotSet
	}
	if user.Address == s.defaultAddress {
		return ErrAddressNotSet
	}

	total := cart.Total()
	if total > user.WalletMoney {
		return ErrInsufficientFunds
	}

	settledItems := cart.CartItems
	user.WalletMoney -= total
	cart.CartItems = []models.CartItem{}

	if err := s.settle.Settle(ctx, user, cart); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return ErrCartConflict
		}
		return apperrors.Internal(err)
	}

	s.publishCheckout(ctx, email, settledItems, total)
	return nil
}

func (s *CartService) saveCart(ctx context.Context, cart *models.Cart) error {
	err := s.carts.Save(ctx, cart)
	if errors.Is(err, repository.ErrVersionConflict) {
		return ErrCartConflict
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// publishCheckout emits the checkout event best-effort; a broker outage must
// not fail an already-settled checkout.
func (s *CartService) publishCheckout(ctx context.Context, email string, items []models.CartItem, total float64) {
	if s.producer == nil {
		return
	}
	event := models.CheckoutEvent{
		Event:     "checkout.completed",
		Email:     email,
		Items:     items,
		Total:     total,
		Timestamp: time.Now(),
	}
	if err := s.producer.SendCheckoutEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish checkout event",
			zap.String("email", email), zap.Error(err))
	}
}
