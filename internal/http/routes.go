package http

import (
	"os"
	"strconv"
	"time"

	"charity_farm/internal/config"
	"charity_farm/internal/economy"
	"charity_farm/internal/http/handlers"
	"charity_farm/internal/http/middleware"
	"charity_farm/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, rates *economy.Rates, version string, cfg *config.Config) {
	hub := ws.NewHub()
	h := handlers.NewHandler(db, rates, hub)
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	actionRateLimit := 120
	actionRateWindow := time.Minute
	if cfg != nil {
		actionRateLimit = cfg.ActionRateLimit
		actionRateWindow = time.Duration(cfg.ActionRateWindow) * time.Second
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Root routes keep the original paths (/tap, /help_project/...)
	root := r.Group("")
	root.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(root, h, authRateLimit, authRateWindow, actionRateLimit, actionRateWindow)

	// Versioned alias
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, authRateLimit, authRateWindow, actionRateLimit, actionRateWindow)

	// Live feed of donations and project completions
	r.GET("/ws", h.WS(hub))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, authRateLimit int, authRateWindow time.Duration, actionRateLimit int, actionRateWindow time.Duration) {
	// Auth
	authRL := middleware.RedisRateLimit(authRateLimit, authRateWindow)
	api.POST("/auth/register", authRL, h.Register)
	api.POST("/auth/login", authRL, h.Login)

	// Profile and stats
	api.GET("/me", middleware.JWT(), h.Me)
	api.GET("/user_stats", middleware.JWT(), h.UserStats)
	api.GET("/history", middleware.JWT(), h.History)

	// Economy actions (per user, not per IP)
	actRL := middleware.ActionRateLimit(actionRateLimit, actionRateWindow)
	api.POST("/tap", middleware.JWT(), actRL, h.Tap)
	api.GET("/afk_earnings", middleware.JWT(), h.AFKEarnings)
	api.POST("/help_project/:project_id", middleware.JWT(), actRL, h.HelpProject)
	api.POST("/purchase_upgrade/:upgrade_id", middleware.JWT(), actRL, h.PurchaseUpgrade)

	// Catalogs and leaderboard (public)
	api.GET("/projects", h.ListProjects)
	api.GET("/upgrades", h.ListUpgrades)
	api.GET("/top", h.TopHelpers)
}
