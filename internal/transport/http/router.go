package http

import (
	"boba-storefront/internal/ratelimit"
	"boba-storefront/internal/service"
	"boba-storefront/internal/transport/http/handlers"
	"boba-storefront/internal/transport/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Auth     *service.AuthService
	Catalog  *service.CatalogService
	Cart     *service.CartService
	Checkout *service.CheckoutService

	Tokens  service.TokenProvider
	Roles   service.RoleResolver
	Limiter ratelimit.Limiter

	Production bool
	Log        *zap.Logger
}

// Router assembles the gin engine. Middleware runs in a fixed order:
// authenticate, path guard, security headers, rate limit.
func Router(d RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Prometheus())
	r.Use(middleware.Authenticate(d.Tokens, d.Roles, d.Log))
	r.Use(middleware.Guard())
	r.Use(middleware.SecurityHeaders(d.Production))
	r.Use(middleware.RateLimit(d.Limiter, d.Log))

	authHandler := handlers.NewAuthHandler(d.Auth, d.Log)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog, d.Log)
	cartHandler := handlers.NewCartHandler(d.Cart, d.Log)
	checkoutHandler := handlers.NewCheckoutHandler(d.Checkout, d.Log)
	adminHandler := handlers.NewAdminHandler(d.Catalog, d.Checkout, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:slug", catalogHandler.GetProduct)
		api.GET("/customizations", catalogHandler.ListCustomizations)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart", cartHandler.AddItem)
		api.PATCH("/cart/:id", cartHandler.UpdateItem)
		api.DELETE("/cart/:id", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.Clear)
	}

	actions := r.Group("/_actions")
	{
		actions.POST("/checkout.initiate", checkoutHandler.Initiate)
		actions.POST("/checkout.processPayment", checkoutHandler.ProcessPayment)
		actions.POST("/checkout.getOrderSummary", checkoutHandler.GetOrderSummary)
	}

	r.GET("/account/orders", checkoutHandler.ListOrders)

	admin := r.Group("/admin")
	{
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PATCH("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.PATCH("/variants/:id/stock", adminHandler.UpdateVariantStock)
		admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
	}

	return r
}
