package handlers

import (
	"net/http"
	"strconv"

	"boba-storefront/internal/service"
	"boba-storefront/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	in := service.ProductListInput{
		FeaturedOnly: c.Query("featured") == "true",
		Limit:        atoiQuery(c, "limit", 20),
		Offset:       atoiQuery(c, "offset", 0),
	}
	if cat := c.Query("category"); cat != "" {
		in.CategorySlug = &cat
	}

	products, total, err := h.catalog.ListProducts(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	resp := dto.ProductListResponse{Total: total, Products: make([]dto.ProductResponse, 0, len(products))}
	for i := range products {
		resp.Products = append(resp.Products, dto.NewProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

func (h *CatalogHandler) ListCustomizations(c *gin.Context) {
	opts, err := h.catalog.ListCustomizations(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	resp := make([]dto.CustomizationResponse, 0, len(opts))
	for _, o := range opts {
		resp = append(resp, dto.CustomizationResponse{
			ID:            o.ID,
			Category:      string(o.Category),
			Name:          o.Name,
			DisplayName:   o.DisplayName,
			PriceModifier: o.PriceModifier,
			SortOrder:     o.SortOrder,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func atoiQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
