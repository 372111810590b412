package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// ProjectRepository はプロジェクトリポジトリのインターフェース
type ProjectRepository interface {
	// 基本CRUD
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	// 検索
	FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Project, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Project, error)
	FindByNameInGroup(ctx context.Context, groupID uuid.UUID, name string) (*entity.Project, error)
}
