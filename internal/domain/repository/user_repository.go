package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
)

// UserRepository はユーザーリポジトリインターフェースを定義します
type UserRepository interface {
	// Create はユーザーを作成します
	Create(ctx context.Context, user *entity.User) error

	// Update はユーザーを更新します
	Update(ctx context.Context, user *entity.User) error

	// FindByID はIDでユーザーを検索します
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername はユーザー名でユーザーを検索します
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail はメールアドレスでユーザーを検索します
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)

	// ExistsByUsername はユーザー名が存在するかを確認します
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Delete はユーザーを削除します
	Delete(ctx context.Context, id uuid.UUID) error
}
