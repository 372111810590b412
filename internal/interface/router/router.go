package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/infrastructure/cache"
	"github.com/shotahirama/labshare/internal/infrastructure/di"
	"github.com/shotahirama/labshare/internal/interface/middleware"
)

// Router はルート定義を管理します
type Router struct {
	echo        *echo.Echo
	handlers    *di.Handlers
	middlewares *di.Middlewares
}

// NewRouter は新しいRouterを作成します
func NewRouter(e *echo.Echo, handlers *di.Handlers, middlewares *di.Middlewares) *Router {
	return &Router{
		echo:        e,
		handlers:    handlers,
		middlewares: middlewares,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupHealthRoutes()
	r.setupAPIRoutes()
	r.setupDataAPIRoutes()
}

// setupHealthRoutes はヘルスチェックルートを設定します
func (r *Router) setupHealthRoutes() {
	if r.handlers.Health == nil {
		return
	}
	r.echo.GET("/health", r.handlers.Health.Check)
	r.echo.GET("/ready", r.handlers.Health.Ready)
}

// setupAPIRoutes はAPIルートを設定します
func (r *Router) setupAPIRoutes() {
	api := r.echo.Group("/api/v1")

	r.setupAuthRoutes(api)
	r.setupChgrpRoutes(api)
	r.setupActivityRoutes(api)
	r.setupDataRoutes(api)
}

// setupAuthRoutes は認証関連ルートを設定します
func (r *Router) setupAuthRoutes(api *echo.Group) {
	authGroup := api.Group("/auth")

	// Public auth routes
	authGroup.GET("/login", r.handlers.Auth.LoginPage)
	authGroup.POST("/login", r.handlers.Auth.Login,
		r.middlewares.RateLimit.ByIP(cache.RateLimitAuthLogin))
	authGroup.POST("/logout", r.handlers.Auth.Logout)

	// Token issuance for script clients (authenticated via session)
	authGroup.POST("/token", r.handlers.Auth.IssueToken,
		r.middlewares.SessionAuth.Authenticate())

	api.GET("/me", r.handlers.Auth.Me, r.middlewares.SessionAuth.Authenticate())
}

// setupChgrpRoutes はグループ移動関連ルートを設定します
func (r *Router) setupChgrpRoutes(api *echo.Group) {
	chgrpGroup := api.Group("/chgrp", r.middlewares.SessionAuth.Authenticate())
	chgrpGroup.POST("", r.handlers.Chgrp.Submit)
	chgrpGroup.GET("/groups", r.handlers.Chgrp.TargetGroups)
}

// setupActivityRoutes はアクティビティ関連ルートを設定します
func (r *Router) setupActivityRoutes(api *echo.Group) {
	api.GET("/activities", r.handlers.Activity.List,
		r.middlewares.SessionAuth.Authenticate())
}

// setupDataRoutes はプロジェクト・データセット関連ルートを設定します
func (r *Router) setupDataRoutes(api *echo.Group) {
	projectsGroup := api.Group("/projects", r.middlewares.SessionAuth.Authenticate())
	projectsGroup.POST("", r.handlers.Project.Create)
	projectsGroup.GET("/:id", r.handlers.Project.Get)

	datasetsGroup := api.Group("/datasets", r.middlewares.SessionAuth.Authenticate())
	datasetsGroup.POST("", r.handlers.Dataset.Create)
	datasetsGroup.GET("/:id", r.handlers.Dataset.Get)
	datasetsGroup.POST("/:id/files", r.handlers.File.Upload,
		r.middlewares.RateLimit.ByUser(cache.RateLimitAPIUpload))

	filesGroup := api.Group("/files", r.middlewares.SessionAuth.Authenticate())
	filesGroup.GET("/:id/download", r.handlers.File.Download)
}

// setupDataAPIRoutes はスクリプトクライアント向けのBearerトークン認証ルートを設定します
// Cookieセッションを使えないクライアントは /api/v1/auth/token で取得した
// アクセストークンでこれらのルートにアクセスします
func (r *Router) setupDataAPIRoutes() {
	dataAPI := r.echo.Group("/api/data/v1", r.middlewares.JWTAuth.Authenticate())

	dataAPI.GET("/projects/:id", r.handlers.Project.Get)
	dataAPI.GET("/datasets/:id", r.handlers.Dataset.Get)
	dataAPI.GET("/files/:id/download", r.handlers.File.Download)
}

// ApplyGlobalMiddlewares は共通ミドルウェアを適用します
func ApplyGlobalMiddlewares(e *echo.Echo, corsOrigins []string) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.SecurityHeaders())

	corsConfig := middleware.DefaultCORSConfig()
	if len(corsOrigins) > 0 {
		corsConfig.AllowOrigins = corsOrigins
	}
	e.Use(middleware.CORSWithConfig(corsConfig))

	e.Use(middleware.CSRF())
}
