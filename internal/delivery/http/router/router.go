// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dealsmarket/internal/delivery/http/middleware"
	"dealsmarket/internal/delivery/http/router/handler"
	"dealsmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PageHandler     *handler.PageHandler
	RetailerHandler *handler.RetailerHandler
	DealHandler     *handler.DealHandler
	ConsumerHandler *handler.ConsumerHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	pageHandler     *handler.PageHandler
	retailerHandler *handler.RetailerHandler
	dealHandler     *handler.DealHandler
	consumerHandler *handler.ConsumerHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		pageHandler:     params.PageHandler,
		retailerHandler: params.RetailerHandler,
		dealHandler:     params.DealHandler,
		consumerHandler: params.ConsumerHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the pages and the JSON API.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	r.registerPages(e)
	r.registerAPI(e.Group("/api"))
}

// registerPages wires the navigational routes. The session middleware and the edge gate run
// before every one of them; the retailer pages also apply their own guard.
func (r *router) registerPages(e *echo.Echo) {
	pages := r.pageHandler

	e.GET("/", pages.Home)
	e.GET("/deals/:id", pages.DealDetail)
	e.GET("/auth/login", pages.Login)
	e.GET("/auth/signup", pages.Signup)

	e.GET("/watchlist", pages.Watchlist)
	e.GET("/alerts", pages.Alerts)
	e.GET("/profile", pages.Profile)

	retailer := e.Group("/retailer")
	{
		retailer.GET("/apply", pages.RetailerApply)
		retailer.GET("/pending", pages.RetailerPending)
		retailer.GET("/rejected", pages.RetailerRejected)
		retailer.GET("/dashboard", pages.RetailerDashboard)
		retailer.GET("/dashboard/deals", pages.RetailerDeals)
		retailer.GET("/dashboard/deals/:id", pages.RetailerDealDetail)
		retailer.GET("/dashboard/settings", pages.RetailerSettings)
	}
}

func (r *router) registerAPI(api *echo.Group) {
	authenticate := r.authMiddleware.Authenticate
	retailerOnly := r.authMiddleware.RequireRole(entity.RoleRetailer)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Identity provider
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	// Public catalogue
	api.GET("/categories", r.consumerHandler.ListCategories)
	dealsGroup := api.Group("/deals")
	{
		dealsGroup.GET("", r.dealHandler.ListPublic)
		dealsGroup.GET("/:id", r.dealHandler.GetPublic)
		dealsGroup.POST("/:id/click", r.dealHandler.TrackClick)
		dealsGroup.GET("/:id/qr", r.dealHandler.ShareQR)

		dealsGroup.POST("/:id/pause", r.dealHandler.Pause, authenticate, retailerOnly)
		dealsGroup.POST("/:id/resume", r.dealHandler.Resume, authenticate, retailerOnly)
	}

	// Retailer account; consumers may apply, everything else needs the retailer role.
	retailerGroup := api.Group("/retailer")
	retailerGroup.Use(authenticate)
	{
		retailerGroup.POST("/apply", r.retailerHandler.Apply)
		retailerGroup.GET("/status", r.retailerHandler.Status)

		retailerGroup.GET("/profile", r.retailerHandler.GetProfile, retailerOnly)
		retailerGroup.PATCH("/profile", r.retailerHandler.UpdateProfile, retailerOnly)
		retailerGroup.PUT("/settings", r.retailerHandler.UpdateSettings, retailerOnly)

		retailerDeals := retailerGroup.Group("/deals", retailerOnly)
		{
			retailerDeals.GET("", r.dealHandler.ListOwn)
			retailerDeals.POST("", r.dealHandler.Create)
			retailerDeals.GET("/:id", r.dealHandler.GetOwn)
			retailerDeals.PUT("/:id", r.dealHandler.Update)
			retailerDeals.DELETE("/:id", r.dealHandler.Delete)
		}
	}

	// Consumer-owned data
	watchlistGroup := api.Group("/watchlist", authenticate)
	{
		watchlistGroup.GET("", r.consumerHandler.ListWatchlist)
		watchlistGroup.POST("", r.consumerHandler.AddToWatchlist)
		watchlistGroup.DELETE("/:dealId", r.consumerHandler.RemoveFromWatchlist)
	}

	alertsGroup := api.Group("/alerts", authenticate)
	{
		alertsGroup.GET("", r.consumerHandler.ListAlerts)
		alertsGroup.POST("", r.consumerHandler.CreateAlert)
		alertsGroup.DELETE("/:id", r.consumerHandler.DeleteAlert)
	}

	profileGroup := api.Group("/profile", authenticate)
	{
		profileGroup.GET("", r.consumerHandler.GetProfile)
		profileGroup.PATCH("", r.consumerHandler.UpdateProfile)
	}

	// Review queues
	adminGroup := api.Group("/admin", authenticate, adminOnly)
	{
		adminGroup.GET("/retailers", r.adminHandler.ListRetailers)
		adminGroup.POST("/retailers/:id/review", r.adminHandler.ReviewRetailer)
		adminGroup.GET("/deals", r.adminHandler.ListDeals)
		adminGroup.POST("/deals/:id/review", r.adminHandler.ReviewDeal)
	}
}
