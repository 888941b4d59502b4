package handlers

import (
	"errors"
	"net/http"

	"boba-storefront/internal/service"
	"boba-storefront/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError maps service sentinel errors onto the HTTP error
// envelope. Anything unrecognized is a 500 with the detail withheld from
// the client.
func writeServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("authentication required"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewForbiddenError("insufficient privileges"))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("resource not found"))
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("order not found"))
	case errors.Is(err, service.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("cart is empty", nil))
	case errors.Is(err, service.ErrQuantityInvalid):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("quantity must be at least 1", nil))
	case errors.Is(err, service.ErrVariantUnavailable):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("variant is not available", nil))
	case errors.Is(err, service.ErrOrderAlreadyProcessed):
		c.JSON(http.StatusConflict, dto.NewConflictError("order has already been processed"))
	case errors.Is(err, service.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid payment method", nil))
	case errors.Is(err, service.ErrInvalidOrderStatus):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order status", nil))
	case errors.Is(err, service.ErrAddressInvalid):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid shipping address", nil))
	case errors.Is(err, service.ErrDuplicateSlug):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("product with this slug already exists", nil))
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.NewConflictError("user with this email already exists"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid email or password"))
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("validation failed", nil))
	default:
		log.Error("unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}
