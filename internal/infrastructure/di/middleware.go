package di

import (
	"github.com/shotahirama/labshare/internal/interface/middleware"
)

// Middlewares はアプリケーションのミドルウェアを保持します
type Middlewares struct {
	SessionAuth *middleware.SessionAuthMiddleware
	JWTAuth     *middleware.JWTAuthMiddleware
	RateLimit   *middleware.RateLimitMiddleware
}

// NewMiddlewares はContainerから全てのミドルウェアを初期化します
func NewMiddlewares(c *Container) *Middlewares {
	return &Middlewares{
		SessionAuth: middleware.NewSessionAuthMiddleware(c.SessionRepo, c.UserRepo),
		JWTAuth:     middleware.NewJWTAuthMiddleware(c.TokenService),
		RateLimit:   middleware.NewRateLimitMiddleware(c.RateLimiter),
	}
}
