package middleware

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// contextKey is a custom type for context.WithValue keys to avoid collisions
type contextKey string

const (
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUser      = "user"

	// Typed keys for context.WithValue (prevents SA1029)
	ctxKeyUserID    contextKey = ContextKeyUserID
	ctxKeySessionID contextKey = ContextKeySessionID
)

// GetUserID はコンテキストからユーザーIDを取得します
func GetUserID(c echo.Context) string {
	if id, ok := c.Get(ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}

// GetUserUUID はコンテキストからユーザーIDをUUIDとして取得します
// 認証ミドルウェアを通過していないコンテキストではエラーを返します
func GetUserUUID(c echo.Context) (uuid.UUID, error) {
	userID := GetUserID(c)
	if userID == "" {
		return uuid.Nil, errors.New("user id not found in context")
	}
	return uuid.Parse(userID)
}

// GetSessionID はコンテキストからセッションIDを取得します
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(ContextKeySessionID).(string); ok {
		return id
	}
	return ""
}

// GetUser はコンテキストからユーザーを取得します
func GetUser(c echo.Context) *entity.User {
	if user, ok := c.Get(ContextKeyUser).(*entity.User); ok {
		return user
	}
	return nil
}

// SetUserID はコンテキストにユーザーIDを設定します
func SetUserID(c echo.Context, userID string) {
	c.Set(ContextKeyUserID, userID)
}

// SetSessionID はコンテキストにセッションIDを設定します
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(ContextKeySessionID, sessionID)
}

// SetUser はコンテキストにユーザーを設定します
func SetUser(c echo.Context, user *entity.User) {
	c.Set(ContextKeyUser, user)
}
