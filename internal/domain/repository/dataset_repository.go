package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// DatasetRepository はデータセットリポジトリのインターフェース
type DatasetRepository interface {
	// 基本CRUD
	Create(ctx context.Context, dataset *entity.Dataset) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dataset, error)
	Update(ctx context.Context, dataset *entity.Dataset) error
	Delete(ctx context.Context, id uuid.UUID) error

	// 検索
	FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Dataset, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Dataset, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Dataset, error)
}
