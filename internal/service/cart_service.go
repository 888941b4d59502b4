package service

import (
	"context"

	"boba-storefront/internal/models"
	"boba-storefront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) *CartService {
	return &CartService{repo: repo, log: log}
}

type AddItemInput struct {
	VariantID      uuid.UUID
	Quantity       int
	Customizations models.Customizations
}

// AddItem puts a variant into the caller's cart. An existing row with the
// same variant and the same customization selection has its quantity
// incremented instead.
func (s *CartService) AddItem(ctx context.Context, in AddItemInput) (*models.CartItem, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if in.Quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	variant, err := s.repo.Products.GetVariantByID(ctx, in.VariantID)
	if err != nil {
		return nil, err
	}
	if variant == nil || !variant.IsActive || variant.Product == nil || !variant.Product.IsActive {
		return nil, ErrVariantUnavailable
	}

	existing, err := s.repo.Cart.FindMatching(ctx, userID, in.VariantID, in.Customizations)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.repo.Cart.IncrementQuantity(ctx, existing.ID, in.Quantity); err != nil {
			return nil, err
		}
		existing.Quantity += in.Quantity
		return existing, nil
	}

	item := &models.CartItem{
		UserID:         userID,
		VariantID:      in.VariantID,
		Quantity:       in.Quantity,
		Customizations: in.Customizations,
	}
	if err := s.repo.Cart.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	if quantity < 1 {
		return ErrQuantityInvalid
	}
	rows, err := s.repo.Cart.UpdateQuantity(ctx, itemID, userID, quantity)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	rows, err := s.repo.Cart.Delete(ctx, itemID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context) error {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	_, err = s.repo.Cart.DeleteByUser(ctx, userID)
	return err
}

type CartView struct {
	Items  []models.CartItem
	Totals Totals
}

// GetCart returns the caller's cart with totals computed from resolved
// prices. Client-supplied prices are never trusted.
func (s *CartService) GetCart(ctx context.Context) (*CartView, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Cart.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	priced, err := pricedItemsFromCart(rows)
	if err != nil {
		return nil, err
	}
	return &CartView{Items: rows, Totals: CalculateTotals(priced)}, nil
}

// pricedItemsFromCart resolves each cart row's prices from the joined
// variant and parent product rows.
func pricedItemsFromCart(rows []models.CartItem) ([]PricedItem, error) {
	priced := make([]PricedItem, 0, len(rows))
	for _, row := range rows {
		if row.Variant == nil || row.Variant.Product == nil {
			return nil, ErrVariantUnavailable
		}
		var surcharges []int64
		for _, t := range row.Customizations.Toppings {
			surcharges = append(surcharges, ToppingSurcharge(t))
		}
		priced = append(priced, PricedItem{
			Quantity:          row.Quantity,
			UnitBasePrice:     row.Variant.Product.BasePrice,
			UnitPriceModifier: row.Variant.PriceModifier,
			Surcharges:        surcharges,
		})
	}
	return priced, nil
}
