package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/pkg/apperror"
	"github.com/shotahirama/labshare/pkg/jwt"
)

// JWTAuthMiddleware はAPIアクセストークン認証ミドルウェアを提供します
// Cookieセッションを使えないスクリプトクライアント向けです
type JWTAuthMiddleware struct {
	tokenService *jwt.TokenService
}

// NewJWTAuthMiddleware は新しいJWTAuthMiddlewareを作成します
func NewJWTAuthMiddleware(tokenService *jwt.TokenService) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{tokenService: tokenService}
}

// Authenticate は認証ミドルウェアを返します
func (m *JWTAuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return apperror.NewUnauthorizedError("authorization header required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return apperror.NewUnauthorizedError("invalid authorization header format")
			}

			claims, err := m.tokenService.VerifyAccessToken(parts[1])
			if err != nil {
				return apperror.NewUnauthorizedError("invalid or expired token")
			}

			SetUserID(c, claims.UserID.String())

			return next(c)
		}
	}
}
