package controllers

import (
	"context"
	"net/http"

	apperrors "github.com/Shankz20191/qkart-backend/common/errors"
	"github.com/Shankz20191/qkart-backend/middleware"
	"github.com/Shankz20191/qkart-backend/models"

	"github.com/gin-gonic/gin"
)

type ICartService interface {
	GetCartByUser(ctx context.Context, email string) (*models.Cart, error)
	AddProductToCart(ctx context.Context, email, productID string, quantity int) (*models.Cart, error)
	UpdateProductQuantity(ctx context.Context, email, productID string, quantity int) (*models.Cart, error)
	RemoveProductFromCart(ctx context.Context, email, productID string) (*models.Cart, error)
	Checkout(ctx context.Context, email string) error
}

type CartController struct {
	service ICartService
}

func NewCartController(service ICartService) *CartController {
	return &CartController{service: service}
}

type cartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// GetCart returns the current cart for the authenticated user.
func (cc *CartController) GetCart(c *gin.Context) {
	email, err := middleware.GetEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	cart, err := cc.service.GetCartByUser(c.Request.Context(), email)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddItem adds a product to the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	email, err := middleware.GetEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, err := cc.service.AddProductToCart(c.Request.Context(), email, req.ProductID, req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

// UpdateItem changes the quantity of a product already in the cart.
func (cc *CartController) UpdateItem(c *gin.Context) {
	email, err := middleware.GetEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, err := cc.service.UpdateProductQuantity(c.Request.Context(), email, req.ProductID, req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveItem removes a product from the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	email, err := middleware.GetEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	productID := c.Param("product_id")

	cart, err := cc.service.RemoveProductFromCart(c.Request.Context(), email, productID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Checkout settles the cart against the user's wallet balance.
func (cc *CartController) Checkout(c *gin.Context) {
	email, err := middleware.GetEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := cc.service.Checkout(c.Request.Context(), email); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
