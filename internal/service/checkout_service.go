package service

import (
	"context"
	"errors"
	"time"

	"boba-storefront/internal/models"
	"boba-storefront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	currencyIDR = "IDR"

	// attempts for the order insert when the generated order number
	// collides with an existing one
	orderNumberAttempts = 3
)

type CheckoutService struct {
	repo   *repository.Repository
	events EventBus
	now    func() time.Time
	log    *zap.Logger
}

func NewCheckoutService(repo *repository.Repository, events EventBus, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		repo:   repo,
		events: events,
		now:    time.Now,
		log:    log,
	}
}

type AddressInput struct {
	FullName      string
	Phone         string
	StreetAddress string
	City          string
	State         *string
	PostalCode    string
	Country       string
}

func (a *AddressInput) validate() error {
	if len(a.FullName) < 2 || len(a.Phone) < 10 || len(a.StreetAddress) < 5 ||
		len(a.City) < 2 || len(a.PostalCode) < 5 {
		return ErrAddressInvalid
	}
	if a.Country == "" {
		a.Country = "Indonesia"
	}
	return nil
}

type PlaceOrderInput struct {
	ShippingAddress *AddressInput
	Notes           *string
	SaveAddress     bool
}

// PlaceOrder converts the caller's persisted cart into an order. Inside one
// transaction it optionally saves the shipping address, resolves current
// prices from the variant and product rows, generates the order number,
// inserts the order and its item snapshots and clears the cart. On any
// failure nothing is committed.
func (s *CheckoutService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if in.SaveAddress && in.ShippingAddress == nil {
		return nil, ErrAddressInvalid
	}
	if in.ShippingAddress != nil {
		if err := in.ShippingAddress.validate(); err != nil {
			return nil, err
		}
	}

	var order *models.Order
	for attempt := 0; ; attempt++ {
		order, err = s.placeOrderOnce(ctx, userID, in)
		if err == nil {
			break
		}
		// The order number carries the only unique constraint written here;
		// a duplicate key means the random suffix collided.
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < orderNumberAttempts-1 {
			s.log.Warn("order number collision, regenerating",
				zap.Int("attempt", attempt+1))
			continue
		}
		return nil, err
	}

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			evItems = append(evItems, OrderItemEvent{
				VariantID:   it.VariantID,
				ProductName: it.ProductName,
				VariantName: it.VariantName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				TotalPrice:  it.TotalPrice,
			})
		}
		if err := s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			UserID:      order.UserID,
			Items:       evItems,
			TotalAmount: order.TotalAmount,
			Currency:    currencyIDR,
			CreatedAt:   order.CreatedAt,
		}); err != nil {
			s.log.Warn("failed to publish order created event",
				zap.String("order_number", order.OrderNumber), zap.Error(err))
		}
	}

	return order, nil
}

func (s *CheckoutService) placeOrderOnce(ctx context.Context, userID uuid.UUID, in PlaceOrderInput) (*models.Order, error) {
	var order *models.Order

	err := s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		cart, err := tx.Cart.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(cart) == 0 {
			return ErrCartEmpty
		}

		priced, err := pricedItemsFromCart(cart)
		if err != nil {
			return err
		}
		totals := CalculateTotals(priced)

		var shippingAddressID *uuid.UUID
		if in.SaveAddress {
			addr := &models.Address{
				UserID:        userID,
				Label:         "Shipping",
				FullName:      in.ShippingAddress.FullName,
				Phone:         in.ShippingAddress.Phone,
				StreetAddress: in.ShippingAddress.StreetAddress,
				City:          in.ShippingAddress.City,
				State:         in.ShippingAddress.State,
				PostalCode:    in.ShippingAddress.PostalCode,
				Country:       in.ShippingAddress.Country,
			}
			if err := tx.Addresses.Create(ctx, addr); err != nil {
				return err
			}
			shippingAddressID = &addr.ID
		}

		o := &models.Order{
			UserID:            userID,
			ShippingAddressID: shippingAddressID,
			OrderNumber:       GenerateOrderNumber(s.now()),
			Status:            models.OrderStatusPending,
			Subtotal:          totals.Subtotal,
			TaxAmount:         totals.Tax,
			ShippingAmount:    totals.Shipping,
			DiscountAmount:    totals.Discount,
			TotalAmount:       totals.Total,
			Notes:             in.Notes,
		}
		if err := tx.Orders.Create(ctx, o); err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(cart))
		for _, row := range cart {
			var customizations []models.OrderItemCustomization
			for _, t := range row.Customizations.Toppings {
				customizations = append(customizations, models.OrderItemCustomization{
					CustomizationName: t,
					PriceModifier:     ToppingSurcharge(t),
				})
			}
			unitPrice := row.Variant.Product.BasePrice + row.Variant.PriceModifier
			var surchargeSum int64
			for _, c := range customizations {
				surchargeSum += c.PriceModifier
			}
			items = append(items, models.OrderItem{
				OrderID:        o.ID,
				VariantID:      row.VariantID,
				ProductName:    row.Variant.Product.Name,
				VariantName:    row.Variant.Name,
				UnitPrice:      unitPrice,
				Quantity:       row.Quantity,
				TotalPrice:     (unitPrice + surchargeSum) * int64(row.Quantity),
				Customizations: customizations,
			})
		}
		if err := tx.OrderItems.BulkCreate(ctx, items); err != nil {
			return err
		}
		o.Items = items

		if _, err := tx.Cart.DeleteByUser(ctx, userID); err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// InitiatePayment records a payment attempt for a pending order owned by
// the caller. Cash on delivery confirms the order immediately; every other
// method leaves it pending until external confirmation. Ownership failures
// and nonexistence are both reported as not found.
func (s *CheckoutService) InitiatePayment(ctx context.Context, orderID uuid.UUID, method models.PaymentProvider) (*models.Payment, string, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, "", err
	}
	if !method.Valid() {
		return nil, "", ErrInvalidPaymentMethod
	}

	order, err := s.repo.Orders.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, "", ErrOrderAlreadyProcessed
	}

	status := models.PaymentStatusProcessing
	if method == models.PaymentCashOnDelivery {
		status = models.PaymentStatusPending
	}

	payment := &models.Payment{
		OrderID:  order.ID,
		Provider: method,
		Status:   status,
		Amount:   order.TotalAmount,
		Currency: currencyIDR,
		Metadata: models.Metadata{
			"method":      string(method),
			"initiatedAt": s.now().UTC().Format(time.RFC3339),
		},
	}

	err = s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Payments.Create(ctx, payment); err != nil {
			return err
		}
		if method == models.PaymentCashOnDelivery {
			return tx.Orders.UpdateStatus(ctx, order.ID, models.OrderStatusConfirmed)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	if s.events != nil {
		if err := s.events.PublishPaymentInitiated(ctx, PaymentInitiatedEvent{
			PaymentID:   payment.ID,
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Provider:    method,
			Amount:      payment.Amount,
			Currency:    payment.Currency,
			InitiatedAt: s.now(),
		}); err != nil {
			s.log.Warn("failed to publish payment initiated event",
				zap.String("order_number", order.OrderNumber), zap.Error(err))
		}
	}

	return payment, "/checkout/success?order=" + order.OrderNumber, nil
}

// GetOrderSummary returns the caller's order with its items, customization
// snapshots and payment.
func (s *CheckoutService) GetOrderSummary(ctx context.Context, orderNumber string) (*models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	order, err := s.repo.Orders.GetByNumberForUser(ctx, orderNumber, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

type OrderListFilter struct {
	Status *models.OrderStatus
	Limit  int
	Offset int
}

// ListOrders returns the caller's own orders; an elevated role sees all.
func (s *CheckoutService) ListOrders(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.OrderListFilter{
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	if !role.Elevated() {
		filter.UserID = &userID
	}
	return s.repo.Orders.List(ctx, filter)
}

// UpdateOrderStatus is the admin-side status mutation, independent of
// payment events.
func (s *CheckoutService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	_, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if !role.Elevated() {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	oldStatus := order.Status
	if err := s.repo.Orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	if s.events != nil && oldStatus != status {
		if err := s.events.PublishOrderStatusChanged(ctx, OrderStatusChangedEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			OldStatus:   oldStatus,
			NewStatus:   status,
			ChangedAt:   s.now(),
		}); err != nil {
			s.log.Warn("failed to publish order status changed event",
				zap.String("order_number", order.OrderNumber), zap.Error(err))
		}
	}

	return order, nil
}
