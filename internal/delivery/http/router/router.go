// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gemstore/internal/delivery/http/middleware"
	"gemstore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	ShippingHandler *handler.ShippingHandler
	UploadHandler   *handler.UploadHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	shippingHandler *handler.ShippingHandler
	uploadHandler   *handler.UploadHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		shippingHandler: params.ShippingHandler,
		uploadHandler:   params.UploadHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Catalog routes. Browsing is open, writes require authentication.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.POST("/init", r.productHandler.Init)
	}

	// Order routes, all scoped to the authenticated user
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("/user", r.orderHandler.ListMine)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus)
	}

	// Shipping routes. Rates are static and public, addresses are per user.
	shippingGroup := e.Group("/shipping")
	{
		shippingGroup.GET("/rates", r.shippingHandler.Rates)
		shippingGroup.GET("", r.shippingHandler.List, r.authMiddleware.Authenticate)
		shippingGroup.POST("", r.shippingHandler.Create, r.authMiddleware.Authenticate)
		shippingGroup.PUT("/:id", r.shippingHandler.Update, r.authMiddleware.Authenticate)
		shippingGroup.DELETE("/:id", r.shippingHandler.Delete, r.authMiddleware.Authenticate)
		shippingGroup.PATCH("/:id/set-default", r.shippingHandler.SetDefault, r.authMiddleware.Authenticate)
	}

	// Avatar routes that require authentication
	uploadGroup := e.Group("/upload")
	uploadGroup.Use(r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("/avatar/:userId", r.uploadHandler.UploadAvatar)
		uploadGroup.GET("/avatar/:userId", r.uploadHandler.GetAvatar)
	}
}
