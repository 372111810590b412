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

// ProjectRepository はプロジェクトリポジトリの実装です
type ProjectRepository struct {
	*database.BaseRepository
}

// インターフェース実装の確認
var _ repository.ProjectRepository = (*ProjectRepository)(nil)

// NewProjectRepository は新しいProjectRepositoryを作成します
func NewProjectRepository(txManager *database.TxManager) *ProjectRepository {
	return &ProjectRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

const projectColumns = `id, name, owner_id, group_id, created_at, updated_at`

// Create はプロジェクトを作成します
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO projects (id, name, owner_id, group_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		project.ID,
		project.Name,
		project.OwnerID,
		project.GroupID,
		project.CreatedAt,
		project.UpdatedAt,
	)
	return r.HandleError(err)
}

// FindByID はIDでプロジェクトを検索します
func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return r.scanProject(row)
}

// Update はプロジェクトを更新します
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		UPDATE projects
		SET name = $2, owner_id = $3, group_id = $4, updated_at = $5
		WHERE id = $1`,
		project.ID,
		project.Name,
		project.OwnerID,
		project.GroupID,
		project.UpdatedAt,
	)
	return r.HandleError(err)
}

// Delete はプロジェクトを削除します
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Querier(ctx).Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return r.HandleError(err)
}

// FindByGroupID はグループIDでプロジェクトを検索します
func (r *ProjectRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Project, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE group_id = $1 ORDER BY created_at`, groupID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanProjects(rows)
}

// FindByOwnerID はオーナーIDでプロジェクトを検索します
func (r *ProjectRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Project, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanProjects(rows)
}

// FindByNameInGroup はグループ内で名前が一致するプロジェクトを検索します
func (r *ProjectRepository) FindByNameInGroup(ctx context.Context, groupID uuid.UUID, name string) (*entity.Project, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE group_id = $1 AND name = $2`,
		groupID, name)
	return r.scanProject(row)
}

// scanProject は行からプロジェクトエンティティを復元します
func (r *ProjectRepository) scanProject(row pgx.Row) (*entity.Project, error) {
	var (
		id        uuid.UUID
		name      string
		ownerID   uuid.UUID
		groupID   uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&id, &name, &ownerID, &groupID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("project")
		}
		return nil, r.HandleError(err)
	}

	return entity.ReconstructProject(id, name, ownerID, groupID, createdAt, updatedAt), nil
}

// scanProjects は行セットからプロジェクトの一覧を復元します
func (r *ProjectRepository) scanProjects(rows pgx.Rows) ([]*entity.Project, error) {
	projects := make([]*entity.Project, 0)
	for rows.Next() {
		project, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}
	return projects, nil
}
