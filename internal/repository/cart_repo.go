package repository

import (
	"context"
	"encoding/json"
	"errors"

	"boba-storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepo interface {
	Create(ctx context.Context, item *models.CartItem) error
	// FindMatching looks up a row with the same variant and the same
	// customization selection; nil means no match.
	FindMatching(ctx context.Context, userID, variantID uuid.UUID, cust models.Customizations) (*models.CartItem, error)
	IncrementQuantity(ctx context.Context, id uuid.UUID, delta int) error
	UpdateQuantity(ctx context.Context, id, userID uuid.UUID, quantity int) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type cartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) CartRepo { return &cartRepo{db: db} }

func (r *cartRepo) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepo) FindMatching(ctx context.Context, userID, variantID uuid.UUID, cust models.Customizations) (*models.CartItem, error) {
	raw, err := json.Marshal(cust)
	if err != nil {
		return nil, err
	}
	var item models.CartItem
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND variant_id = ? AND customizations = ?::jsonb", userID, variantID, string(raw)).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *cartRepo) IncrementQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *cartRepo) UpdateQuantity(ctx context.Context, id, userID uuid.UUID, quantity int) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", quantity)
	return tx.RowsAffected, tx.Error
}

func (r *cartRepo) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CartItem{})
	return tx.RowsAffected, tx.Error
}

func (r *cartRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{})
	return tx.RowsAffected, tx.Error
}

func (r *cartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Variant").
		Preload("Variant.Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *cartRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_id = ?", userID).Count(&cnt).Error
	return cnt, err
}
