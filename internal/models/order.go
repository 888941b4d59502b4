package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusRefunded       OrderStatus = "refunded"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending: {}, OrderStatusConfirmed: {}, OrderStatusPreparing: {},
	OrderStatusReady: {}, OrderStatusOutForDelivery: {}, OrderStatusDelivered: {},
	OrderStatusCancelled: {}, OrderStatusRefunded: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// Order monetary fields are frozen at creation; only Status and UpdatedAt
// change afterwards.
type Order struct {
	ID                uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID            uuid.UUID   `gorm:"type:uuid;not null;index"`
	ShippingAddressID *uuid.UUID  `gorm:"type:uuid"`
	OrderNumber       string      `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status            OrderStatus `gorm:"type:text;not null;default:'pending';index"`
	Subtotal          int64       `gorm:"not null;default:0"`
	TaxAmount         int64       `gorm:"not null;default:0"`
	ShippingAmount    int64       `gorm:"not null;default:0"`
	DiscountAmount    int64       `gorm:"not null;default:0"`
	TotalAmount       int64       `gorm:"not null;default:0"`
	Notes             *string     `gorm:"type:text"`
	CreatedAt         time.Time   `gorm:"not null;default:now();index"`
	UpdatedAt         time.Time   `gorm:"not null;default:now()"`

	Items   []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment *Payment    `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// OrderItem snapshots names and prices at purchase time so later catalog
// edits never alter historical orders.
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VariantID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	VariantName string    `gorm:"type:varchar(255);not null"`
	UnitPrice   int64     `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	TotalPrice  int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`

	Customizations []OrderItemCustomization `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

func (OrderItem) TableName() string { return "order_items" }

type OrderItemCustomization struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderItemID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomizationName string    `gorm:"type:varchar(100);not null"`
	PriceModifier     int64     `gorm:"not null;default:0"`
}

func (OrderItemCustomization) TableName() string { return "order_item_customizations" }

type PaymentProvider string

const (
	PaymentBankTransfer   PaymentProvider = "bank_transfer"
	PaymentEWallet        PaymentProvider = "e_wallet"
	PaymentCashOnDelivery PaymentProvider = "cod"
	PaymentQRIS           PaymentProvider = "qris"
)

var paymentProviders = map[PaymentProvider]struct{}{
	PaymentBankTransfer: {}, PaymentEWallet: {}, PaymentCashOnDelivery: {}, PaymentQRIS: {},
}

func (p PaymentProvider) Valid() bool {
	_, ok := paymentProviders[p]
	return ok
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type Metadata map[string]any

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(Metadata{})
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(value any) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for metadata")
	}
}

type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Provider  PaymentProvider `gorm:"type:varchar(50);not null"`
	Status    PaymentStatus   `gorm:"type:text;not null;default:'pending';index"`
	Amount    int64           `gorm:"not null"`
	Currency  string          `gorm:"type:char(3);not null;default:'IDR'"`
	Metadata  Metadata        `gorm:"type:jsonb"`
	CreatedAt time.Time       `gorm:"not null;default:now()"`
}

func (Payment) TableName() string { return "payments" }
