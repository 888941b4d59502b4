package repository

import (
	"context"

	"boba-storefront/internal/models"

	"gorm.io/gorm"
)

type CustomizationRepo interface {
	ListActive(ctx context.Context) ([]models.CustomizationOption, error)
}

type customizationRepo struct{ db *gorm.DB }

func NewCustomizationRepo(db *gorm.DB) CustomizationRepo { return &customizationRepo{db: db} }

func (r *customizationRepo) ListActive(ctx context.Context) ([]models.CustomizationOption, error) {
	var rows []models.CustomizationOption
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("category ASC, sort_order ASC").
		Find(&rows).Error
	return rows, err
}
