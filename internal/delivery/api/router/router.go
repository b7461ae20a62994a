// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ShopHandler    *handler.ShopHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	shopHandler    *handler.ShopHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		shopHandler:    params.ShopHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role and ownership rules are enforced by the use cases, not here.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticate := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	shopsGroup := api.Group("/shops")
	{
		shopsGroup.POST("", r.shopHandler.CreateShop, authenticate)
		shopsGroup.GET("", r.shopHandler.ListShops)
		shopsGroup.GET("/owner/my-shops", r.shopHandler.ListMyShops, authenticate)
		shopsGroup.GET("/:id", r.shopHandler.GetShop)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct, authenticate)
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, authenticate)
	}

	ordersGroup := api.Group("/orders")
	ordersGroup.Use(authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
		ordersGroup.PUT("/:id/assign", r.orderHandler.AssignDeliveryAgent)
	}

	api.GET("/delivery-agents", r.authHandler.ListDeliveryAgents, authenticate)

	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.POST("", r.reviewHandler.CreateReview, authenticate)
		reviewsGroup.GET("/:target_id", r.reviewHandler.ListReviews)
	}
}
