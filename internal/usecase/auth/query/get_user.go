package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
)

// GetUserQuery はユーザー取得クエリです
type GetUserQuery struct {
	userRepo repository.UserRepository
}

// NewGetUserQuery は新しいGetUserQueryを作成します
func NewGetUserQuery(userRepo repository.UserRepository) *GetUserQuery {
	return &GetUserQuery{userRepo: userRepo}
}

// Execute はユーザーを取得します
func (q *GetUserQuery) Execute(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return q.userRepo.FindByID(ctx, userID)
}
