package repository

import (
	"context"
	"errors"

	"boba-storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductListFilter struct {
	CategorySlug *string
	FeaturedOnly bool
	ActiveOnly   bool
	Limit        int
	Offset       int
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	CreateVariant(ctx context.Context, v *models.ProductVariant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error)
	UpdateVariantStock(ctx context.Context, id uuid.UUID, stock int) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) CreateVariant(ctx context.Context, v *models.ProductVariant) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Preload("Variants").Preload("Category").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", "is_active = true").
		Preload("Category").
		First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("slug = ?", slug).Count(&cnt).Error
	return cnt > 0, err
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if f.ActiveOnly {
		q = q.Where("products.is_active = true")
	}
	if f.FeaturedOnly {
		q = q.Where("products.is_featured = true")
	}
	if f.CategorySlug != nil {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", *f.CategorySlug)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Product
	err := q.Order("products.created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Preload("Variants", "is_active = true").
		Find(&list).Error
	return list, total, err
}

func (r *productRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) GetVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	var v models.ProductVariant
	err := r.db.WithContext(ctx).Preload("Product").First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *productRepo) UpdateVariantStock(ctx context.Context, id uuid.UUID, stock int) error {
	return r.db.WithContext(ctx).Model(&models.ProductVariant{}).
		Where("id = ?", id).Update("stock_quantity", stock).Error
}
