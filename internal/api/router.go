package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ncgames/boardgame-reviews-backend/internal/api/handlers"
	"github.com/ncgames/boardgame-reviews-backend/internal/api/middleware"
	"github.com/ncgames/boardgame-reviews-backend/internal/api/response"
	"github.com/ncgames/boardgame-reviews-backend/internal/repository"
	"gorm.io/gorm"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB     *gorm.DB
	Logger *slog.Logger

	// CORS
	AllowedOrigins string
	AppEnv         string

	// Rate limiting (0 disables the limiter)
	RateLimit float64
	RateBurst int
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.SecureCORS(cfg.AllowedOrigins, cfg.AppEnv))
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.Logger))
	}
	e.Use(middleware.RequestID())
	if cfg.Logger != nil {
		e.Use(middleware.RequestLogger(cfg.Logger))
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(cfg.DB)
	reviewRepo := repository.NewReviewRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	reviewHandler := handlers.NewReviewHandler(reviewRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo, reviewRepo, userRepo)
	userHandler := handlers.NewUserHandler(userRepo)

	// Health routes
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	// API routes
	api := e.Group("/api")

	api.GET("/categories", categoryHandler.List)

	api.GET("/reviews", reviewHandler.List)
	api.GET("/reviews/:review_id", reviewHandler.Get)
	api.PATCH("/reviews/:review_id", reviewHandler.UpdateVotes)

	api.GET("/reviews/:review_id/comments", commentHandler.ListByReview)
	api.POST("/reviews/:review_id/comments", commentHandler.Create)

	api.GET("/users", userHandler.List)

	return e
}

// errorHandler maps unmatched routes and methods to the catch-all
// 404 Invalid URL body, and everything else to a generic 500. Matched
// routes produce their own responses, so this never masks a more
// specific failure.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				_ = response.NotFound(c, handlers.MsgInvalidURL)
				return
			}
		}

		if logger != nil {
			logger.Error("unhandled error",
				slog.String("path", c.Request().URL.Path),
				slog.String("error", err.Error()),
			)
		}
		_ = response.InternalError(c, "Internal server error")
	}
}
