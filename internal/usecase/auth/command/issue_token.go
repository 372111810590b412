package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/pkg/apperror"
	"github.com/shotahirama/labshare/pkg/jwt"
)

// IssueTokenInput はAPIトークン発行の入力を定義します
type IssueTokenInput struct {
	UserID uuid.UUID
}

// IssueTokenOutput はAPIトークン発行の出力を定義します
type IssueTokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// IssueTokenCommand はデータAPI用のアクセストークンを発行するコマンドです
// セッション認証済みユーザーがBearerトークンを取得するために使用します
type IssueTokenCommand struct {
	userRepo     repository.UserRepository
	tokenService *jwt.TokenService
}

// NewIssueTokenCommand は新しいIssueTokenCommandを作成します
func NewIssueTokenCommand(userRepo repository.UserRepository, tokenService *jwt.TokenService) *IssueTokenCommand {
	return &IssueTokenCommand{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute はアクセストークンを発行します
func (c *IssueTokenCommand) Execute(ctx context.Context, input IssueTokenInput) (*IssueTokenOutput, error) {
	user, err := c.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive() {
		return nil, apperror.NewUnauthorizedError("account suspended")
	}

	token, expiresAt, err := c.tokenService.GenerateAccessToken(user.ID, user.Email.String(), user.Admin)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &IssueTokenOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
