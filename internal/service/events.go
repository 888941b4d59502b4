package service

import (
	"context"
	"time"

	"boba-storefront/internal/models"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	VariantID   uuid.UUID `json:"variant_id"`
	ProductName string    `json:"product_name"`
	VariantName string    `json:"variant_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	TotalPrice  int64     `json:"total_price"`
}

type OrderCreatedEvent struct {
	OrderID     uuid.UUID        `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	UserID      uuid.UUID        `json:"user_id"`
	Items       []OrderItemEvent `json:"items"`
	TotalAmount int64            `json:"total_amount"`
	Currency    string           `json:"currency"`
	CreatedAt   time.Time        `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID     uuid.UUID          `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	OldStatus   models.OrderStatus `json:"old_status"`
	NewStatus   models.OrderStatus `json:"new_status"`
	ChangedAt   time.Time          `json:"changed_at"`
}

type PaymentInitiatedEvent struct {
	PaymentID   uuid.UUID              `json:"payment_id"`
	OrderID     uuid.UUID              `json:"order_id"`
	OrderNumber string                 `json:"order_number"`
	Provider    models.PaymentProvider `json:"provider"`
	Amount      int64                  `json:"amount"`
	Currency    string                 `json:"currency"`
	InitiatedAt time.Time              `json:"initiated_at"`
}

// EventBus publishes order lifecycle events. A nil bus disables publishing;
// publish failures must never fail the originating request.
type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, e OrderStatusChangedEvent) error
	PublishPaymentInitiated(ctx context.Context, e PaymentInitiatedEvent) error
}
