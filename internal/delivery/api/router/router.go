// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodiecircle/internal/delivery/api/middleware"
	"foodiecircle/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler     *handler.SearchHandler
	FollowHandler     *handler.FollowHandler
	DishHandler       *handler.DishHandler
	PreferenceHandler *handler.PreferenceHandler
	DeviceHandler     *handler.DeviceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler     *handler.SearchHandler
	followHandler     *handler.FollowHandler
	dishHandler       *handler.DishHandler
	preferenceHandler *handler.PreferenceHandler
	deviceHandler     *handler.DeviceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:     params.SearchHandler,
		followHandler:     params.FollowHandler,
		dishHandler:       params.DishHandler,
		preferenceHandler: params.PreferenceHandler,
		deviceHandler:     params.DeviceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiV1 := e.Group("/api/v1")

	// Discovery is open to anonymous visitors; follow flags need a token
	public := apiV1.Group("")
	public.Use(r.authMiddleware.OptionalAuthenticate)
	{
		public.GET("/search", r.searchHandler.Search)
		public.GET("/search/filters", r.searchHandler.FilterOptions)
		public.GET("/restaurants/:name", r.searchHandler.RestaurantDetail)
		public.GET("/restaurants/:name/qr", r.searchHandler.RestaurantQR)
	}

	followsGroup := apiV1.Group("/follows")
	followsGroup.Use(r.authMiddleware.Authenticate)
	{
		followsGroup.GET("", r.followHandler.ListSubscriptions)
		followsGroup.GET("/status", r.followHandler.Status)
		followsGroup.POST("/toggle", r.followHandler.Toggle)
		followsGroup.POST("/qr", r.followHandler.FollowByQR)
		followsGroup.DELETE("/:id", r.followHandler.Unsubscribe)
	}

	dishesGroup := apiV1.Group("/dishes")
	dishesGroup.Use(r.authMiddleware.Authenticate)
	{
		dishesGroup.POST("", r.dishHandler.LogDish)
	}

	preferencesGroup := apiV1.Group("/preferences")
	preferencesGroup.Use(r.authMiddleware.Authenticate)
	{
		preferencesGroup.GET("", r.preferenceHandler.GetPreferences)
		preferencesGroup.PUT("", r.preferenceHandler.UpdatePreferences)
	}

	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}
}
