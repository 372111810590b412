package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// DatasetFileRepository はデータセットファイルリポジトリのインターフェース
type DatasetFileRepository interface {
	// 基本CRUD
	Create(ctx context.Context, file *entity.DatasetFile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DatasetFile, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// 検索
	FindByDatasetID(ctx context.Context, datasetID uuid.UUID) ([]*entity.DatasetFile, error)

	// 集計
	SumSizeByDatasetID(ctx context.Context, datasetID uuid.UUID) (int64, error)
}
