package services

import (
	"net/http"

	apperrors "github.com/Shankz20191/qkart-backend/common/errors"
)

// Validation errors returned by the cart and catalog services. Each is a
// stable sentinel: callers match with errors.Is, handlers map Code to the
// HTTP status. Anything else coming out of the services is a 500 fault.
var (
	ErrProductNotFound = apperrors.New(http.StatusBadRequest,
		"Product doesn't exist in database", nil)
	ErrProductInCart = apperrors.New(http.StatusBadRequest,
		"Product already in cart. Use the cart sidebar to update or remove product from cart", nil)
	ErrProductNotInCart = apperrors.New(http.StatusBadRequest,
		"Product not in cart", nil)
	ErrCartNotFound = apperrors.New(http.StatusNotFound,
		"User does not have a cart", nil)
	ErrCartEmpty = apperrors.New(http.StatusBadRequest,
		"Cart is empty", nil)
	ErrInvalidQuantity = apperrors.New(http.StatusBadRequest,
		"Quantity must be at least 1", nil)
	ErrAddressNotSet = apperrors.New(http.StatusBadRequest,
		"Address not set", nil)
	ErrInsufficientFunds = apperrors.New(http.StatusBadRequest,
		"Wallet balance is insufficient to place order", nil)
	ErrCartConflict = apperrors.New(http.StatusConflict,
		"Cart was modified by another request, please retry", nil)
)
