// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MeHandler           *handler.MeHandler
	OnboardingHandler   *handler.OnboardingHandler
	ListingHandler      *handler.ListingHandler
	DealHandler         *handler.DealHandler
	ValuationHandler    *handler.ValuationHandler
	FounderHandler      *handler.FounderHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	meHandler           *handler.MeHandler
	onboardingHandler   *handler.OnboardingHandler
	listingHandler      *handler.ListingHandler
	dealHandler         *handler.DealHandler
	valuationHandler    *handler.ValuationHandler
	founderHandler      *handler.FounderHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		meHandler:           params.MeHandler,
		onboardingHandler:   params.OnboardingHandler,
		listingHandler:      params.ListingHandler,
		dealHandler:         params.DealHandler,
		valuationHandler:    params.ValuationHandler,
		founderHandler:      params.FounderHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes: the session is resolved when present, then the caller's tier budget applies
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.OptionalAuth)
	apiV1.Use(r.rateLimitMiddleware.Handle)

	// Public browsing
	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.GET("", r.listingHandler.SearchListings)
		listingsGroup.GET("/:id", r.listingHandler.GetListing)
		listingsGroup.GET("/:id/qr", r.listingHandler.GetListingQR)
		listingsGroup.POST("", r.listingHandler.CreateListing, r.authMiddleware.Authenticate)
		listingsGroup.POST("/:id/nda", r.dealHandler.SignNDA, r.authMiddleware.Authenticate)
	}

	// Signed-in user routes
	meGroup := apiV1.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/profile", r.meHandler.GetProfile)
		meGroup.GET("/destination", r.meHandler.GetDestination)
		meGroup.GET("/plan", r.meHandler.GetPlan)
		meGroup.GET("/entitlements/:name", r.meHandler.CheckEntitlement)
		meGroup.GET("/sections", r.meHandler.GetSectionAccess)
	}

	apiV1.POST("/onboarding", r.onboardingHandler.CompleteOnboarding, r.authMiddleware.Authenticate)
	apiV1.POST("/valuations", r.valuationHandler.Estimate, r.authMiddleware.Authenticate)

	// Deal rooms need a plan that includes them
	dealsGroup := apiV1.Group("/deals")
	dealsGroup.Use(r.authMiddleware.Authenticate)
	dealsGroup.Use(r.authMiddleware.RequireEntitlement(entity.EntitlementDealRoom))
	{
		dealsGroup.GET("", r.dealHandler.ListDealRooms)
		dealsGroup.GET("/:id", r.dealHandler.GetDealRoom)
		dealsGroup.POST("/:id/messages", r.dealHandler.SendMessage)
		dealsGroup.POST("/:id/offers", r.dealHandler.SubmitOffer)
	}

	// Founder dashboard
	founderGroup := apiV1.Group("/founder")
	founderGroup.Use(r.authMiddleware.Authenticate)
	founderGroup.Use(r.authMiddleware.RequireSection(entity.RoleFounder))
	{
		founderGroup.GET("/metrics", r.founderHandler.GetMetrics)
	}

	// Admin operations
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireSection(entity.RoleAdmin))
	{
		adminGroup.GET("/users/:id/profile", r.adminHandler.GetUserProfile)
		adminGroup.PUT("/users/:id/tier", r.adminHandler.UpdateTier)
		adminGroup.POST("/users/:id/roles", r.adminHandler.GrantRole)
	}
}
