// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	BusinessHandler *handler.BusinessHandler
	CategoryHandler *handler.CategoryHandler
	ReviewHandler   *handler.ReviewHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	businessHandler *handler.BusinessHandler
	categoryHandler *handler.CategoryHandler
	reviewHandler   *handler.ReviewHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		businessHandler: params.BusinessHandler,
		categoryHandler: params.CategoryHandler,
		reviewHandler:   params.ReviewHandler,
		favoriteHandler: params.FavoriteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role checks live in the usecase layer; routes only declare whether a
// request must carry an identity at all.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public directory browsing. Identity is optional here: guests and
	// logged-in users share these handlers.
	publicGroup := e.Group("/businesses")
	publicGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		publicGroup.GET("/top-rated", r.businessHandler.TopRated)
		publicGroup.GET("/search", r.businessHandler.Search)
		publicGroup.GET("/filter", r.businessHandler.FilterByRating)
		publicGroup.GET("/category/:categoryId", r.businessHandler.ByCategory)
		publicGroup.GET("/:id", r.businessHandler.Get)
		publicGroup.GET("/:id/qr", r.businessHandler.ShareQR)
		publicGroup.GET("/:businessId/reviews", r.reviewHandler.ListByBusiness)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
	}

	// Listing management requires an authenticated owner (or admin for
	// update/delete; the usecase decides).
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	{
		ownerGroup.GET("/businesses", r.businessHandler.Mine)
		ownerGroup.GET("/businesses/:id", r.businessHandler.GetForEdit)
		ownerGroup.POST("/businesses", r.businessHandler.Create)
		ownerGroup.PUT("/businesses/:id", r.businessHandler.Update)
		ownerGroup.DELETE("/businesses/:id", r.businessHandler.Delete)
	}

	// Authenticated user features: profile, reviews, favorites
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.GET("/reviews", r.reviewHandler.Mine)
		userGroup.GET("/favorites", r.favoriteHandler.Mine)
	}

	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewGroup.POST("", r.reviewHandler.Create)
		reviewGroup.PUT("/:id", r.reviewHandler.Update)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete)
	}

	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.POST("/:businessId", r.favoriteHandler.Add)
		favoriteGroup.DELETE("/:businessId", r.favoriteHandler.Remove)
	}

	// Moderation and catalogue management. The usecase layer enforces the
	// admin role on every one of these.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/businesses", r.businessHandler.List)
		adminGroup.GET("/businesses/pending", r.businessHandler.Pending)
		adminGroup.POST("/businesses/approve-all", r.businessHandler.ApproveAll)
		adminGroup.POST("/categories", r.categoryHandler.Create)
		adminGroup.PUT("/categories/:id", r.categoryHandler.Update)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.Delete)
	}
}
