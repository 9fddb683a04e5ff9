// Package router contains routing setup for the HTTP delivery.
package router

import (
	"cannadex/internal/delivery/http/middleware"
	"cannadex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware Fx injects into the router.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	StrainHandler  *handler.StrainHandler
	ProductHandler *handler.ProductHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	strainHandler  *handler.StrainHandler
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		strainHandler:  params.StrainHandler,
		productHandler: params.ProductHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account and session endpoints.
	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.POST("/refresh", r.userHandler.RefreshToken)
		usersGroup.POST("/logout", r.userHandler.Logout)

		usersGroup.POST("/logout-all", r.userHandler.LogoutAll, r.authMiddleware.Authenticate)
		usersGroup.GET("/profile", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Catalog reads are public; writes require a logged-in user.
	strainGroup := api.Group("/strains")
	{
		strainGroup.GET("", r.strainHandler.ListStrains)
		strainGroup.GET("/:id", r.strainHandler.GetStrain)
		strainGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)

		strainGroup.POST("", r.strainHandler.CreateStrain, r.authMiddleware.Authenticate)
		strainGroup.PUT("/:id", r.strainHandler.UpdateStrain, r.authMiddleware.Authenticate)
		strainGroup.DELETE("/:id", r.strainHandler.DeleteStrain, r.authMiddleware.Authenticate)
		strainGroup.POST("/:id/reviews", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)

		productGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, r.authMiddleware.Authenticate)
	}

	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.DELETE("/:id", r.reviewHandler.DeleteReview, r.authMiddleware.Authenticate)
	}
}
