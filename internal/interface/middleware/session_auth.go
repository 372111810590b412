package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// SessionAuthMiddleware はCookieセッション認証ミドルウェアを提供します
type SessionAuthMiddleware struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
}

// NewSessionAuthMiddleware は新しいSessionAuthMiddlewareを作成します
func NewSessionAuthMiddleware(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

// Authenticate は認証ミドルウェアを返します
func (m *SessionAuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return apperror.NewUnauthorizedError("authentication required")
			}

			session, err := m.sessionRepo.FindByID(c.Request().Context(), cookie.Value)
			if err != nil {
				return apperror.NewUnauthorizedError("invalid or expired session")
			}

			if session.IsExpired() {
				return apperror.NewUnauthorizedError("session expired")
			}

			user, err := m.userRepo.FindByID(c.Request().Context(), session.UserID)
			if err != nil {
				return apperror.NewUnauthorizedError("invalid session user")
			}

			if !user.IsActive() {
				return apperror.NewUnauthorizedError("account is not active")
			}

			// スライディングウィンドウで有効期限を延長
			session.Refresh()
			if err := m.sessionRepo.Save(c.Request().Context(), session); err != nil {
				slog.Warn("failed to refresh session",
					"request_id", GetRequestID(c),
					"error", err.Error(),
				)
			}

			// コンテキストにユーザー情報を設定
			SetUserID(c, user.ID.String())
			SetSessionID(c, session.ID)
			SetUser(c, user)

			// リクエストコンテキストにも設定（UseCase層で使用）
			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, ctxKeyUserID, user.ID.String())
			ctx = context.WithValue(ctx, ctxKeySessionID, session.ID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// OptionalAuth はオプショナル認証ミドルウェアを返します
// セッションがあれば検証し、なくてもエラーにしない
func (m *SessionAuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := m.sessionRepo.FindByID(c.Request().Context(), cookie.Value)
			if err != nil || session.IsExpired() {
				return next(c)
			}

			user, err := m.userRepo.FindByID(c.Request().Context(), session.UserID)
			if err != nil || !user.IsActive() {
				return next(c)
			}

			SetUserID(c, user.ID.String())
			SetSessionID(c, session.ID)
			SetUser(c, user)

			return next(c)
		}
	}
}
