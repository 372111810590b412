package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/internal/infrastructure/database"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// DatasetFileRepository はデータセットファイルリポジトリの実装です
type DatasetFileRepository struct {
	*database.BaseRepository
}

// インターフェース実装の確認
var _ repository.DatasetFileRepository = (*DatasetFileRepository)(nil)

// NewDatasetFileRepository は新しいDatasetFileRepositoryを作成します
func NewDatasetFileRepository(txManager *database.TxManager) *DatasetFileRepository {
	return &DatasetFileRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

const datasetFileColumns = `id, dataset_id, file_name, content_type, size, storage_key, uploaded_by, created_at`

// Create はデータセットファイルを作成します
func (r *DatasetFileRepository) Create(ctx context.Context, file *entity.DatasetFile) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO dataset_files (id, dataset_id, file_name, content_type, size, storage_key, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		file.ID,
		file.DatasetID,
		file.FileName,
		file.ContentType,
		file.Size,
		file.StorageKey.String(),
		file.UploadedBy,
		file.CreatedAt,
	)
	return r.HandleError(err)
}

// FindByID はIDでデータセットファイルを検索します
func (r *DatasetFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DatasetFile, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+datasetFileColumns+` FROM dataset_files WHERE id = $1`, id)
	return r.scanFile(row)
}

// Delete はデータセットファイルを削除します
func (r *DatasetFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Querier(ctx).Exec(ctx, `DELETE FROM dataset_files WHERE id = $1`, id)
	return r.HandleError(err)
}

// FindByDatasetID はデータセットIDでファイルを検索します
func (r *DatasetFileRepository) FindByDatasetID(ctx context.Context, datasetID uuid.UUID) ([]*entity.DatasetFile, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+datasetFileColumns+` FROM dataset_files WHERE dataset_id = $1 ORDER BY created_at`, datasetID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	files := make([]*entity.DatasetFile, 0)
	for rows.Next() {
		file, err := r.scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}
	return files, nil
}

// SumSizeByDatasetID はデータセット内ファイルの合計サイズを返します
func (r *DatasetFileRepository) SumSizeByDatasetID(ctx context.Context, datasetID uuid.UUID) (int64, error) {
	var total int64
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT COALESCE(SUM(size), 0) FROM dataset_files WHERE dataset_id = $1`, datasetID).Scan(&total)
	if err != nil {
		return 0, r.HandleError(err)
	}
	return total, nil
}

// scanFile は行からデータセットファイルエンティティを復元します
func (r *DatasetFileRepository) scanFile(row pgx.Row) (*entity.DatasetFile, error) {
	var (
		id          uuid.UUID
		datasetID   uuid.UUID
		fileName    string
		contentType string
		size        int64
		storageKey  string
		uploadedBy  uuid.UUID
		createdAt   time.Time
	)
	err := row.Scan(&id, &datasetID, &fileName, &contentType, &size, &storageKey, &uploadedBy, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("dataset file")
		}
		return nil, r.HandleError(err)
	}

	key, err := valueobject.StorageKeyFromString(storageKey)
	if err != nil {
		return nil, err
	}

	return entity.ReconstructDatasetFile(id, datasetID, fileName, contentType, size, key, uploadedBy, createdAt), nil
}
