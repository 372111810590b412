package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// LoginInput はログインの入力を定義します
type LoginInput struct {
	Username  string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginOutput はログインの出力を定義します
type LoginOutput struct {
	SessionID string
	CSRFToken string
	ExpiresAt time.Time
	User      *entity.User
}

// LoginCommand はログインコマンドです
type LoginCommand struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewLoginCommand は新しいLoginCommandを作成します
func NewLoginCommand(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
) *LoginCommand {
	return &LoginCommand{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Execute はログインを実行します
func (c *LoginCommand) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	// 1. ユーザー名でユーザーを検索
	user, err := c.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, apperror.NewUnauthorizedError("invalid credentials")
	}

	// 2. パスワード検証
	password := valueobject.PasswordFromHash(user.PasswordHash)
	if !password.Verify(input.Password) {
		return nil, apperror.NewUnauthorizedError("invalid credentials")
	}

	// 3. ユーザー状態チェック
	if !user.CanLogin() {
		return nil, apperror.NewUnauthorizedError("account suspended")
	}

	// 4. セッション作成
	// CSRFトークンはCookieとリクエストの二重送信で検証される
	now := time.Now()
	session := &entity.Session{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		CSRFToken:  uuid.New().String(),
		UserAgent:  input.UserAgent,
		IPAddress:  input.IPAddress,
		ExpiresAt:  now.Add(entity.SessionTTL),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	if err := c.sessionRepo.Save(ctx, session); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &LoginOutput{
		SessionID: session.ID,
		CSRFToken: session.CSRFToken,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}
