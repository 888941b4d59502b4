package handlers

import (
	"net/http"

	"boba-storefront/internal/models"
	"boba-storefront/internal/service"
	"boba-storefront/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	cart *service.CartService
	log  *zap.Logger
}

func NewCartHandler(cart *service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{cart: cart, log: log}
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid add to cart request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	_, err := h.cart.AddItem(c.Request.Context(), service.AddItemInput{
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
		Customizations: models.Customizations{
			SugarLevel: req.Customizations.SugarLevel,
			IceLevel:   req.Customizations.IceLevel,
			Toppings:   req.Customizations.Toppings,
		},
	})
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	h.writeCart(c)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid item id", nil))
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	if err := h.cart.UpdateItemQuantity(c.Request.Context(), itemID, req.Quantity); err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	h.writeCart(c)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid item id", nil))
		return
	}

	if err := h.cart.RemoveItem(c.Request.Context(), itemID); err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	h.writeCart(c)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context()); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	h.writeCart(c)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	h.writeCart(c)
}

// writeCart renders the current cart; mutations respond with the fresh
// state so the client never needs a second round trip.
func (h *CartHandler) writeCart(c *gin.Context) {
	view, err := h.cart.GetCart(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	resp := dto.CartResponse{
		Items:  make([]dto.CartItemResponse, 0, len(view.Items)),
		Totals: view.Totals,
	}
	for i := range view.Items {
		row := &view.Items[i]
		item := dto.CartItemResponse{
			ID:        row.ID,
			VariantID: row.VariantID,
			Quantity:  row.Quantity,
			Customizations: dto.CustomizationsPayload{
				SugarLevel: row.Customizations.SugarLevel,
				IceLevel:   row.Customizations.IceLevel,
				Toppings:   row.Customizations.Toppings,
			},
		}
		if row.Variant != nil {
			item.VariantName = row.Variant.Name
			if row.Variant.Product != nil {
				item.ProductName = row.Variant.Product.Name
				unit := row.Variant.Product.BasePrice + row.Variant.PriceModifier
				var surcharges int64
				for _, t := range row.Customizations.Toppings {
					surcharges += service.ToppingSurcharge(t)
				}
				item.UnitPrice = unit
				item.LineTotal = (unit + surcharges) * int64(row.Quantity)
			}
		}
		resp.Items = append(resp.Items, item)
	}

	c.JSON(http.StatusOK, resp)
}
