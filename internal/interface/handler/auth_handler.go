package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/interface/dto/request"
	"github.com/shotahirama/labshare/internal/interface/dto/response"
	"github.com/shotahirama/labshare/internal/interface/middleware"
	"github.com/shotahirama/labshare/internal/interface/presenter"
	authcmd "github.com/shotahirama/labshare/internal/usecase/auth/command"
	authqry "github.com/shotahirama/labshare/internal/usecase/auth/query"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// AuthHandler は認証関連のHTTPハンドラーです
type AuthHandler struct {
	loginCommand      *authcmd.LoginCommand
	logoutCommand     *authcmd.LogoutCommand
	issueTokenCommand *authcmd.IssueTokenCommand
	getUserQuery      *authqry.GetUserQuery

	// loginRedirect はログイン成功後のリダイレクト先です
	loginRedirect string
}

// NewAuthHandler は新しいAuthHandlerを作成します
func NewAuthHandler(
	loginCommand *authcmd.LoginCommand,
	logoutCommand *authcmd.LogoutCommand,
	issueTokenCommand *authcmd.IssueTokenCommand,
	getUserQuery *authqry.GetUserQuery,
	loginRedirect string,
) *AuthHandler {
	return &AuthHandler{
		loginCommand:      loginCommand,
		logoutCommand:     logoutCommand,
		issueTokenCommand: issueTokenCommand,
		getUserQuery:      getUserQuery,
		loginRedirect:     loginRedirect,
	}
}

// LoginPage はログインフォーム用のCSRF Cookieを発行します
// GET /api/v1/auth/login
func (h *AuthHandler) LoginPage(c echo.Context) error {
	token, err := middleware.GenerateCSRFToken()
	if err != nil {
		return apperror.NewInternalError(err)
	}
	middleware.SetCSRFCookie(c, token)

	return presenter.OK(c, map[string]string{"csrf_token": token})
}

// Login はログインを処理します
// POST /api/v1/auth/login
// フォームPOSTを受け付け、成功時はセッションCookieとCSRF Cookieを設定して302を返します
func (h *AuthHandler) Login(c echo.Context) error {
	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.loginCommand.Execute(c.Request().Context(), authcmd.LoginInput{
		Username:  req.Username,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	})
	if err != nil {
		return err
	}

	middleware.SetSessionCookie(c, output.SessionID)
	middleware.SetCSRFCookie(c, output.CSRFToken)

	return c.Redirect(http.StatusFound, h.loginRedirect)
}

// Logout はログアウトを処理します
// POST /api/v1/auth/logout
// セッションを破棄しCookieを削除して302を返します
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	if err := h.logoutCommand.Execute(c.Request().Context(), authcmd.LogoutInput{
		SessionID: sessionID,
	}); err != nil {
		return err
	}

	middleware.ClearSessionCookie(c)
	middleware.ClearCSRFCookie(c)

	return c.Redirect(http.StatusFound, "/")
}

// IssueToken はデータAPI用のアクセストークンを発行します
// POST /api/v1/auth/token
func (h *AuthHandler) IssueToken(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	output, err := h.issueTokenCommand.Execute(c.Request().Context(), authcmd.IssueTokenInput{
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
	})
}

// Me は認証済みユーザー自身の情報を返します
// GET /api/v1/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	user, err := h.getUserQuery.Execute(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToUserResponse(user))
}
