package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/recipebook/recipe-book/docs"
	"github.com/recipebook/recipe-book/internal/api/handler"
	"github.com/recipebook/recipe-book/internal/api/middleware"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

// Dependencies is everything the router needs to serve the API.
type Dependencies struct {
	Auth       ports.AuthService
	Categories ports.CategoryService
	Recipes    ports.RecipeService
	Reports    ports.ReportService

	// Ready lists the dependencies checked by GET /health/ready.
	Ready     map[string]handler.Pinger
	JWTSecret string
	Log       zerolog.Logger
	// Metrics mounts the Prometheus middleware and GET /metrics. Leave it off
	// when building several routers in one process (tests).
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	if deps.Metrics {
		e.Use(echoprometheus.NewMiddleware("recipebook"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	requireAuth := middleware.Auth(deps.JWTSecret)
	optionalAuth := middleware.OptionalAuth(deps.JWTSecret)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, requireAuth)
	e.PUT("/auth/profile", authHandler.UpdateProfile, requireAuth)

	// --- Categories ---
	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	e.GET("/categories", categoryHandler.List)
	e.POST("/categories", categoryHandler.Create, requireAuth)
	e.PUT("/categories/:id", categoryHandler.Update, requireAuth)
	e.DELETE("/categories/:id", categoryHandler.Delete, requireAuth)

	// --- Recipes ---
	recipeHandler := handler.NewRecipeHandler(deps.Recipes)
	e.GET("/recipes", recipeHandler.List)
	e.GET("/recipes/my", recipeHandler.Mine, requireAuth)
	e.GET("/recipes/saved", recipeHandler.Saved, requireAuth)
	e.GET("/recipes/:id", recipeHandler.Get)
	// Anonymous creation is decided by the recipe service policy.
	e.POST("/recipes", recipeHandler.Create, optionalAuth)
	e.PUT("/recipes/:id", recipeHandler.Update, requireAuth)
	e.DELETE("/recipes/:id", recipeHandler.Delete, requireAuth)
	e.GET("/recipes/:id/share", recipeHandler.Share)
	e.POST("/recipes/:id/image", recipeHandler.UploadImage, requireAuth)
	e.GET("/recipes/:id/bookmark", recipeHandler.IsBookmarked, requireAuth)
	e.POST("/recipes/:id/bookmark", recipeHandler.ToggleBookmark, requireAuth)

	// --- Reports ---
	reportHandler := handler.NewReportHandler(deps.Reports)
	e.GET("/reports", reportHandler.Generate, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(deps.Ready)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger logs one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
