package dto

import (
	"time"

	"boba-storefront/internal/models"
	"boba-storefront/internal/service"

	"github.com/google/uuid"
)

// --- auth ---

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}

// --- cart ---

type CustomizationsPayload struct {
	SugarLevel string   `json:"sugar_level"`
	IceLevel   string   `json:"ice_level"`
	Toppings   []string `json:"toppings"`
}

type AddCartItemRequest struct {
	VariantID      uuid.UUID             `json:"variant_id" binding:"required"`
	Quantity       int                   `json:"quantity" binding:"required,min=1"`
	Customizations CustomizationsPayload `json:"customizations"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartItemResponse struct {
	ID             uuid.UUID             `json:"id"`
	VariantID      uuid.UUID             `json:"variant_id"`
	ProductName    string                `json:"product_name"`
	VariantName    string                `json:"variant_name"`
	Quantity       int                   `json:"quantity"`
	UnitPrice      int64                 `json:"unit_price"`
	LineTotal      int64                 `json:"line_total"`
	Customizations CustomizationsPayload `json:"customizations"`
}

type CartResponse struct {
	Items  []CartItemResponse `json:"items"`
	Totals service.Totals     `json:"totals"`
}

// --- checkout ---

type AddressPayload struct {
	FullName      string  `json:"full_name"`
	Phone         string  `json:"phone"`
	StreetAddress string  `json:"street_address"`
	City          string  `json:"city"`
	State         *string `json:"state"`
	PostalCode    string  `json:"postal_code"`
	Country       string  `json:"country"`
}

type CheckoutInitiateRequest struct {
	ShippingAddress *AddressPayload `json:"shipping_address"`
	Notes           *string         `json:"notes"`
	SaveAddress     bool            `json:"save_address"`
}

type ProcessPaymentRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Method  string    `json:"method" binding:"required"`
}

type ProcessPaymentResponse struct {
	Payment  PaymentResponse `json:"payment"`
	Redirect string          `json:"redirect"`
}

type OrderSummaryRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
}

// --- orders ---

type OrderItemCustomizationResponse struct {
	Name          string `json:"name"`
	PriceModifier int64  `json:"price_modifier"`
}

type OrderItemResponse struct {
	ID             uuid.UUID                        `json:"id"`
	ProductName    string                           `json:"product_name"`
	VariantName    string                           `json:"variant_name"`
	UnitPrice      int64                            `json:"unit_price"`
	Quantity       int                              `json:"quantity"`
	TotalPrice     int64                            `json:"total_price"`
	Customizations []OrderItemCustomizationResponse `json:"customizations,omitempty"`
}

type PaymentResponse struct {
	ID       uuid.UUID `json:"id"`
	Provider string    `json:"provider"`
	Status   string    `json:"status"`
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency"`
}

type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrderNumber    string              `json:"order_number"`
	Status         string              `json:"status"`
	Subtotal       int64               `json:"subtotal"`
	TaxAmount      int64               `json:"tax_amount"`
	ShippingAmount int64               `json:"shipping_amount"`
	DiscountAmount int64               `json:"discount_amount"`
	TotalAmount    int64               `json:"total_amount"`
	Notes          *string             `json:"notes,omitempty"`
	Items          []OrderItemResponse `json:"items,omitempty"`
	Payment        *PaymentResponse    `json:"payment,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

func NewOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		Status:         string(o.Status),
		Subtotal:       o.Subtotal,
		TaxAmount:      o.TaxAmount,
		ShippingAmount: o.ShippingAmount,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt,
	}
	for i := range o.Items {
		it := &o.Items[i]
		item := OrderItemResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			TotalPrice:  it.TotalPrice,
		}
		for _, c := range it.Customizations {
			item.Customizations = append(item.Customizations, OrderItemCustomizationResponse{
				Name:          c.CustomizationName,
				PriceModifier: c.PriceModifier,
			})
		}
		resp.Items = append(resp.Items, item)
	}
	if o.Payment != nil {
		p := NewPaymentResponse(o.Payment)
		resp.Payment = &p
	}
	return resp
}

func NewPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:       p.ID,
		Provider: string(p.Provider),
		Status:   string(p.Status),
		Amount:   p.Amount,
		Currency: p.Currency,
	}
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

// --- catalog ---

type VariantResponse struct {
	ID            uuid.UUID `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	PriceModifier int64     `json:"price_modifier"`
	StockQuantity int       `json:"stock_quantity"`
	IsDefault     bool      `json:"is_default"`
}

type ProductResponse struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Description   *string           `json:"description,omitempty"`
	BasePrice     int64             `json:"base_price"`
	FeaturedImage *string           `json:"featured_image,omitempty"`
	IsFeatured    bool              `json:"is_featured"`
	Category      *string           `json:"category,omitempty"`
	Variants      []VariantResponse `json:"variants,omitempty"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		BasePrice:     p.BasePrice,
		FeaturedImage: p.FeaturedImage,
		IsFeatured:    p.IsFeatured,
	}
	if p.Category != nil {
		resp.Category = &p.Category.Name
	}
	for _, v := range p.Variants {
		resp.Variants = append(resp.Variants, VariantResponse{
			ID:            v.ID,
			SKU:           v.SKU,
			Name:          v.Name,
			PriceModifier: v.PriceModifier,
			StockQuantity: v.StockQuantity,
			IsDefault:     v.IsDefault,
		})
	}
	return resp
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
}

type CustomizationResponse struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Name          string    `json:"name"`
	DisplayName   string    `json:"display_name"`
	PriceModifier int64     `json:"price_modifier"`
	SortOrder     int       `json:"sort_order"`
}

// --- admin ---

type CreateProductRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	Name          string     `json:"name" binding:"required"`
	Slug          string     `json:"slug" binding:"required"`
	Description   *string    `json:"description"`
	BasePrice     int64      `json:"base_price" binding:"required,min=0"`
	FeaturedImage *string    `json:"featured_image"`
	IsFeatured    bool       `json:"is_featured"`

	DefaultVariantSKU  string `json:"default_variant_sku"`
	DefaultVariantName string `json:"default_variant_name"`
	StockQuantity      int    `json:"stock_quantity"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	BasePrice     *int64     `json:"base_price"`
	CategoryID    *uuid.UUID `json:"category_id"`
	FeaturedImage *string    `json:"featured_image"`
	IsActive      *bool      `json:"is_active"`
	IsFeatured    *bool      `json:"is_featured"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateStockRequest struct {
	StockQuantity int `json:"stock_quantity" binding:"min=0"`
}
