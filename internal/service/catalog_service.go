package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"boba-storefront/internal/models"
	"boba-storefront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

type CatalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

type ProductListInput struct {
	CategorySlug *string
	FeaturedOnly bool
	Limit        int
	Offset       int
}

// ListProducts returns active products for the storefront, newest first.
func (s *CatalogService) ListProducts(ctx context.Context, in ProductListInput) ([]models.Product, int64, error) {
	return s.repo.Products.List(ctx, repository.ProductListFilter{
		CategorySlug: in.CategorySlug,
		FeaturedOnly: in.FeaturedOnly,
		ActiveOnly:   true,
		Limit:        in.Limit,
		Offset:       in.Offset,
	})
}

// GetProduct resolves one product by slug with its active variants. Inactive
// products are hidden from the storefront.
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	p, err := s.repo.Products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, ErrNotFound
	}
	return p, nil
}

// ListCustomizations returns the active customization options grouped by
// category order, for rendering the drink builder.
func (s *CatalogService) ListCustomizations(ctx context.Context) ([]models.CustomizationOption, error) {
	return s.repo.Customizations.ListActive(ctx)
}

type CreateProductInput struct {
	CategoryID    *uuid.UUID
	Name          string
	Slug          string
	Description   *string
	BasePrice     int64
	FeaturedImage *string
	IsFeatured    bool

	DefaultVariantSKU  string
	DefaultVariantName string
	StockQuantity      int
}

// CreateProduct inserts a product together with its default variant in one
// transaction. Requires an elevated role.
func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if err := requireElevated(ctx); err != nil {
		return nil, err
	}

	in.Slug = strings.ToLower(strings.TrimSpace(in.Slug))
	if in.Name == "" || !slugRe.MatchString(in.Slug) || in.BasePrice < 0 {
		return nil, ErrValidation
	}
	if in.DefaultVariantName == "" {
		in.DefaultVariantName = "Regular"
	}
	if in.DefaultVariantSKU == "" {
		in.DefaultVariantSKU = in.Slug + "-regular"
	}

	exists, err := s.repo.Products.ExistsBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSlug
	}

	product := &models.Product{
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Slug:          in.Slug,
		Description:   in.Description,
		BasePrice:     in.BasePrice,
		FeaturedImage: in.FeaturedImage,
		IsActive:      true,
		IsFeatured:    in.IsFeatured,
	}

	err = s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Products.Create(ctx, product); err != nil {
			return err
		}
		variant := &models.ProductVariant{
			ProductID:     product.ID,
			SKU:           in.DefaultVariantSKU,
			Name:          in.DefaultVariantName,
			StockQuantity: in.StockQuantity,
			IsDefault:     true,
			IsActive:      true,
		}
		if err := tx.Products.CreateVariant(ctx, variant); err != nil {
			return err
		}
		product.Variants = []models.ProductVariant{*variant}
		return nil
	})
	if err != nil {
		// slug uniqueness is rechecked by the index under concurrent creates
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}

	s.log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("slug", product.Slug))
	return product, nil
}

type UpdateProductInput struct {
	Name          *string
	Description   *string
	BasePrice     *int64
	CategoryID    *uuid.UUID
	FeaturedImage *string
	IsActive      *bool
	IsFeatured    *bool
}

// UpdateProduct applies a partial update; nil fields are left untouched.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, in UpdateProductInput) (*models.Product, error) {
	if err := requireElevated(ctx); err != nil {
		return nil, err
	}

	existing, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrValidation
		}
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.BasePrice != nil {
		if *in.BasePrice < 0 {
			return nil, ErrValidation
		}
		fields["base_price"] = *in.BasePrice
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.FeaturedImage != nil {
		fields["featured_image"] = *in.FeaturedImage
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.repo.Products.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Products.GetByID(ctx, id)
}

// DeleteProduct deactivates a product instead of removing it, so existing
// order snapshots keep a live reference.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := requireElevated(ctx); err != nil {
		return err
	}

	existing, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Products.UpdateFields(ctx, id, map[string]any{"is_active": false})
}

// UpdateVariantStock sets the absolute stock count for a variant.
func (s *CatalogService) UpdateVariantStock(ctx context.Context, variantID uuid.UUID, stock int) error {
	if err := requireElevated(ctx); err != nil {
		return err
	}
	if stock < 0 {
		return ErrValidation
	}

	v, err := s.repo.Products.GetVariantByID(ctx, variantID)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrNotFound
	}
	return s.repo.Products.UpdateVariantStock(ctx, variantID, stock)
}

func requireElevated(ctx context.Context) error {
	_, role, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	if !role.Elevated() {
		return ErrForbidden
	}
	return nil
}
