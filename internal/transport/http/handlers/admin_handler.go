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

type AdminHandler struct {
	catalog  *service.CatalogService
	checkout *service.CheckoutService
	log      *zap.Logger
}

func NewAdminHandler(catalog *service.CatalogService, checkout *service.CheckoutService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{catalog: catalog, checkout: checkout, log: log}
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create product request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), service.CreateProductInput{
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		Slug:               req.Slug,
		Description:        req.Description,
		BasePrice:          req.BasePrice,
		FeaturedImage:      req.FeaturedImage,
		IsFeatured:         req.IsFeatured,
		DefaultVariantSKU:  req.DefaultVariantSKU,
		DefaultVariantName: req.DefaultVariantName,
		StockQuantity:      req.StockQuantity,
	})
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", nil))
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), id, service.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		CategoryID:    req.CategoryID,
		FeaturedImage: req.FeaturedImage,
		IsActive:      req.IsActive,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", nil))
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) UpdateVariantStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid variant id", nil))
		return
	}

	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	if err := h.catalog.UpdateVariantStock(c.Request.Context(), id, req.StockQuantity); err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", nil))
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	order, err := h.checkout.UpdateOrderStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
