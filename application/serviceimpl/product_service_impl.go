package serviceimpl

import (
	"context"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/pkg/apperrors"
	"shop-backend/pkg/logger"
)

type ProductServiceImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
) services.ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ProductServiceImpl) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			logger.WarnContext(ctx, "Product category not found", "category_id", req.CategoryID)
			return nil, apperrors.NewReference("product", "category not found: "+req.CategoryID.String())
		}
	}

	productSlug := req.Slug
	if productSlug == "" {
		productSlug = req.Name
	}
	productSlug = slug.Make(productSlug)

	if existing, err := s.productRepo.GetBySlug(ctx, productSlug); err == nil && existing != nil {
		logger.WarnContext(ctx, "Product slug already exists", "slug", productSlug)
		return nil, apperrors.NewConflict("product", "slug already exists: "+productSlug)
	}

	product := &models.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        productSlug,
		Description: req.Description,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		CategoryID:  req.CategoryID,
		Stock:       req.Stock,
		IsActive:    true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to create product", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

func (s *ProductServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Product, error) {
	return s.productRepo.GetBySlug(ctx, slugStr)
}

func (s *ProductServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		newSlug := slug.Make(*req.Slug)
		existing, err := s.productRepo.GetBySlug(ctx, newSlug)
		if err == nil && existing != nil && existing.ID != id {
			logger.WarnContext(ctx, "Product slug already exists", "slug", newSlug)
			return nil, apperrors.NewConflict("product", "slug already exists: "+newSlug)
		}
		product.Slug = newSlug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OldPrice != nil {
		product.OldPrice = req.OldPrice
	}
	if req.CategoryID.Present {
		if req.CategoryID.Value != nil {
			if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID.Value); err != nil {
				return nil, apperrors.NewReference("product", "category not found: "+req.CategoryID.Value.String())
			}
		}
		product.CategoryID = req.CategoryID.Value
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to update product", "product_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Product updated", "product_id", id)
	return product, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete product", "product_id", id, "error", err)
		return err
	}
	logger.InfoContext(ctx, "Product deleted", "product_id", id)
	return nil
}

func (s *ProductServiceImpl) List(ctx context.Context, query *dto.ListProductsQuery) ([]*models.Product, int64, error) {
	query.Normalize()
	filter := repositories.ProductFilter{
		CategoryID: query.CategoryID,
		IsActive:   query.IsActive,
		Search:     query.Search,
	}
	return s.productRepo.List(ctx, filter, query.Page, query.Limit)
}
