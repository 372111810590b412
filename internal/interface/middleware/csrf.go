package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/pkg/apperror"
)

const (
	// SessionCookieName はセッションIDのCookie名です
	SessionCookieName = "session_id"
	// CSRFCookieName はCSRFトークンのCookie名です
	CSRFCookieName = "csrf_token"
	// CSRFHeaderName はCSRFトークンのヘッダー名です
	CSRFHeaderName = "X-CSRF-Token"
	// CSRFFormField はCSRFトークンのフォームフィールド名です
	// フォームPOSTするクライアントはヘッダーの代わりにこのフィールドでトークンを送れます
	CSRFFormField = "csrf_token"
	// csrfTokenBytes はCSRFトークンのバイト数です（32バイト = 256ビット）
	csrfTokenBytes = 32
)

// GenerateCSRFToken は暗号学的に安全なCSRFトークンを生成します
func GenerateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SecureCookies はCookieのSecureフラグを制御するグローバル設定です
// ローカル開発（HTTP）では false、本番（HTTPS）では true に設定します
var SecureCookies = false

// SetSessionCookie はセッションCookieを設定します
func SetSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(entity.SessionTTL.Seconds()),
	})
}

// ClearSessionCookie はセッションCookieを削除します
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// SetCSRFCookie はCSRFトークンCookieを設定します（JavaScriptから読み取り可能）
func SetCSRFCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: false, // JSから読み取り可能にする（double-submit cookie pattern）
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(entity.SessionTTL.Seconds()),
	})
}

// ClearCSRFCookie はCSRFトークンCookieを削除します
func ClearCSRFCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CSRFCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: false,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// CSRF はCSRF保護ミドルウェアを返します（double-submit cookie pattern）
// 状態変更メソッド（POST, PUT, PATCH, DELETE）すべてに対してCSRFトークンを検証します
// ログインPOSTも対象で、トークンCookieはログインページのGETで事前に発行されます
// トークンは X-CSRF-Token ヘッダーまたはフォームフィールドで送信できます
func CSRF() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 安全なメソッドはスキップ
			method := strings.ToUpper(c.Request().Method)
			if method == "GET" || method == "HEAD" || method == "OPTIONS" {
				return next(c)
			}

			// CSRFトークンをCookieから取得
			csrfCookie, err := c.Cookie(CSRFCookieName)
			if err != nil || csrfCookie.Value == "" {
				return apperror.NewForbiddenError("CSRF token missing")
			}

			// CSRFトークンをヘッダーから取得し、なければフォームフィールドを見る
			submitted := c.Request().Header.Get(CSRFHeaderName)
			if submitted == "" {
				submitted = c.FormValue(CSRFFormField)
			}
			if submitted == "" {
				return apperror.NewForbiddenError("CSRF token required")
			}

			// 定数時間比較でトークンを検証
			if subtle.ConstantTimeCompare([]byte(csrfCookie.Value), []byte(submitted)) != 1 {
				return apperror.NewForbiddenError("CSRF token mismatch")
			}

			return next(c)
		}
	}
}
