package services

import (
	"context"
	"errors"

	"github.com/Shankz20191/qkart-backend/cache"
	apperrors "github.com/Shankz20191/qkart-backend/common/errors"
	"github.com/Shankz20191/qkart-backend/models"
	"github.com/Shankz20191/qkart-backend/repository"

	"go.uber.org/zap"
)

type IProductCache interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	Set(ctx context.Context, product *models.Product) error
}

// CatalogService resolves product ids to immutable snapshots, cache-aside:
// Redis first, Mongo on miss. Cache failures degrade to the repository read
// and are only logged.
type CatalogService struct {
	repo   repository.ProductRepo
	cache  IProductCache
	logger *zap.Logger
}

func NewCatalogService(repo repository.ProductRepo, productCache IProductCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		cache:  productCache,
		logger: logger,
	}
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if s.cache != nil {
		product, err := s.cache.Get(ctx, id)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("product cache get failed", zap.String("product_id", id), zap.Error(err))
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			s.logger.Warn("product cache set failed", zap.String("product_id", id), zap.Error(err))
		}
	}
	return product, nil
}
