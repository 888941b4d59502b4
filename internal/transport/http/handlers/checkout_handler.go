package handlers

import (
	"net/http"

	"boba-storefront/internal/models"
	"boba-storefront/internal/service"
	"boba-storefront/internal/transport/http/dto"
	"boba-storefront/internal/transport/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
	log      *zap.Logger
}

func NewCheckoutHandler(checkout *service.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, log: log}
}

func (h *CheckoutHandler) Initiate(c *gin.Context) {
	var req dto.CheckoutInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	in := service.PlaceOrderInput{
		Notes:       req.Notes,
		SaveAddress: req.SaveAddress,
	}
	if req.ShippingAddress != nil {
		in.ShippingAddress = &service.AddressInput{
			FullName:      req.ShippingAddress.FullName,
			Phone:         req.ShippingAddress.Phone,
			StreetAddress: req.ShippingAddress.StreetAddress,
			City:          req.ShippingAddress.City,
			State:         req.ShippingAddress.State,
			PostalCode:    req.ShippingAddress.PostalCode,
			Country:       req.ShippingAddress.Country,
		}
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		middleware.RecordOrderOperation("place_order", false)
		writeServiceError(c, h.log, err)
		return
	}
	middleware.RecordOrderOperation("place_order", true)

	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid payment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	payment, redirect, err := h.checkout.InitiatePayment(
		c.Request.Context(), req.OrderID, models.PaymentProvider(req.Method))
	if err != nil {
		middleware.RecordOrderOperation("process_payment", false)
		writeServiceError(c, h.log, err)
		return
	}
	middleware.RecordOrderOperation("process_payment", true)

	c.JSON(http.StatusOK, dto.ProcessPaymentResponse{
		Payment:  dto.NewPaymentResponse(payment),
		Redirect: redirect,
	})
}

func (h *CheckoutHandler) GetOrderSummary(c *gin.Context) {
	var req dto.OrderSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	order, err := h.checkout.GetOrderSummary(c.Request.Context(), req.OrderNumber)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	f := service.OrderListFilter{
		Limit:  atoiQuery(c, "limit", 20),
		Offset: atoiQuery(c, "offset", 0),
	}
	if s := c.Query("status"); s != "" {
		status := models.OrderStatus(s)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order status", nil))
			return
		}
		f.Status = &status
	}

	orders, total, err := h.checkout.ListOrders(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	resp := dto.OrderListResponse{Total: total, Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, dto.NewOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}
