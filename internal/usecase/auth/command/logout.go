package command

import (
	"context"

	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// LogoutInput はログアウトの入力を定義します
type LogoutInput struct {
	SessionID string
}

// LogoutCommand はログアウトコマンドです
type LogoutCommand struct {
	sessionRepo repository.SessionRepository
}

// NewLogoutCommand は新しいLogoutCommandを作成します
func NewLogoutCommand(sessionRepo repository.SessionRepository) *LogoutCommand {
	return &LogoutCommand{sessionRepo: sessionRepo}
}

// Execute はログアウトを実行します
// セッションが存在しない場合もエラーにしません
func (c *LogoutCommand) Execute(ctx context.Context, input LogoutInput) error {
	if input.SessionID == "" {
		return nil
	}

	if err := c.sessionRepo.Delete(ctx, input.SessionID); err != nil {
		return apperror.NewInternalError(err)
	}

	return nil
}
