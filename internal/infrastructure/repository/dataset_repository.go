package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/infrastructure/database"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// DatasetRepository はデータセットリポジトリの実装です
type DatasetRepository struct {
	*database.BaseRepository
}

// インターフェース実装の確認
var _ repository.DatasetRepository = (*DatasetRepository)(nil)

// NewDatasetRepository は新しいDatasetRepositoryを作成します
func NewDatasetRepository(txManager *database.TxManager) *DatasetRepository {
	return &DatasetRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

const datasetColumns = `id, name, owner_id, group_id, project_id, created_at, updated_at`

// Create はデータセットを作成します
func (r *DatasetRepository) Create(ctx context.Context, dataset *entity.Dataset) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO datasets (id, name, owner_id, group_id, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		dataset.ID,
		dataset.Name,
		dataset.OwnerID,
		dataset.GroupID,
		dataset.ProjectID,
		dataset.CreatedAt,
		dataset.UpdatedAt,
	)
	return r.HandleError(err)
}

// FindByID はIDでデータセットを検索します
func (r *DatasetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dataset, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+datasetColumns+` FROM datasets WHERE id = $1`, id)
	return r.scanDataset(row)
}

// Update はデータセットを更新します
func (r *DatasetRepository) Update(ctx context.Context, dataset *entity.Dataset) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		UPDATE datasets
		SET name = $2, owner_id = $3, group_id = $4, project_id = $5, updated_at = $6
		WHERE id = $1`,
		dataset.ID,
		dataset.Name,
		dataset.OwnerID,
		dataset.GroupID,
		dataset.ProjectID,
		dataset.UpdatedAt,
	)
	return r.HandleError(err)
}

// Delete はデータセットを削除します
func (r *DatasetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Querier(ctx).Exec(ctx, `DELETE FROM datasets WHERE id = $1`, id)
	return r.HandleError(err)
}

// FindByGroupID はグループIDでデータセットを検索します
func (r *DatasetRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Dataset, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+datasetColumns+` FROM datasets WHERE group_id = $1 ORDER BY created_at`, groupID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanDatasets(rows)
}

// FindByProjectID はプロジェクトIDでデータセットを検索します
func (r *DatasetRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Dataset, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+datasetColumns+` FROM datasets WHERE project_id = $1 ORDER BY created_at`, projectID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanDatasets(rows)
}

// FindByOwnerID はオーナーIDでデータセットを検索します
func (r *DatasetRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Dataset, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+datasetColumns+` FROM datasets WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanDatasets(rows)
}

// scanDataset は行からデータセットエンティティを復元します
func (r *DatasetRepository) scanDataset(row pgx.Row) (*entity.Dataset, error) {
	var (
		id        uuid.UUID
		name      string
		ownerID   uuid.UUID
		groupID   uuid.UUID
		projectID *uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&id, &name, &ownerID, &groupID, &projectID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("dataset")
		}
		return nil, r.HandleError(err)
	}

	return entity.ReconstructDataset(id, name, ownerID, groupID, projectID, createdAt, updatedAt), nil
}

// scanDatasets は行セットからデータセットの一覧を復元します
func (r *DatasetRepository) scanDatasets(rows pgx.Rows) ([]*entity.Dataset, error) {
	datasets := make([]*entity.Dataset, 0)
	for rows.Next() {
		dataset, err := r.scanDataset(rows)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, dataset)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}
	return datasets, nil
}
