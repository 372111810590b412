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

// GroupRepository はグループリポジトリの実装です
type GroupRepository struct {
	*database.BaseRepository
}

// インターフェース実装の確認
var _ repository.GroupRepository = (*GroupRepository)(nil)

// NewGroupRepository は新しいGroupRepositoryを作成します
func NewGroupRepository(txManager *database.TxManager) *GroupRepository {
	return &GroupRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

const groupColumns = `id, name, permissions, owner_id, created_at, updated_at`

// Create はグループを作成します
func (r *GroupRepository) Create(ctx context.Context, group *entity.Group) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO groups (id, name, permissions, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		group.ID,
		group.Name.String(),
		group.Permissions.String(),
		group.OwnerID,
		group.CreatedAt,
		group.UpdatedAt,
	)
	return r.HandleError(err)
}

// FindByID はIDでグループを検索します
func (r *GroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE id = $1`, id)
	return r.scanGroup(row)
}

// Update はグループを更新します
func (r *GroupRepository) Update(ctx context.Context, group *entity.Group) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		UPDATE groups
		SET name = $2, permissions = $3, owner_id = $4, updated_at = $5
		WHERE id = $1`,
		group.ID,
		group.Name.String(),
		group.Permissions.String(),
		group.OwnerID,
		group.UpdatedAt,
	)
	return r.HandleError(err)
}

// Delete はグループを削除します
func (r *GroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Querier(ctx).Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	return r.HandleError(err)
}

// FindByOwnerID はオーナーIDでグループを検索します
func (r *GroupRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanGroups(rows)
}

// FindByMemberID はメンバーIDでグループを検索します
func (r *GroupRepository) FindByMemberID(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	rows, err := r.Querier(ctx).Query(ctx, `
		SELECT g.id, g.name, g.permissions, g.owner_id, g.created_at, g.updated_at
		FROM groups g
		INNER JOIN memberships m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at`, userID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanGroups(rows)
}

// ExistsByID はグループが存在するかを確認します
func (r *GroupRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, r.HandleError(err)
	}
	return exists, nil
}

// scanGroup は行からグループエンティティを復元します
func (r *GroupRepository) scanGroup(row pgx.Row) (*entity.Group, error) {
	var (
		id        uuid.UUID
		nameStr   string
		permsStr  string
		ownerID   uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&id, &nameStr, &permsStr, &ownerID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("group")
		}
		return nil, r.HandleError(err)
	}

	name, err := valueobject.NewGroupName(nameStr)
	if err != nil {
		return nil, err
	}
	perms, err := valueobject.NewPermissionLevel(permsStr)
	if err != nil {
		return nil, err
	}

	return entity.ReconstructGroup(id, name, perms, ownerID, createdAt, updatedAt), nil
}

// scanGroups は行セットからグループエンティティの一覧を復元します
func (r *GroupRepository) scanGroups(rows pgx.Rows) ([]*entity.Group, error) {
	groups := make([]*entity.Group, 0)
	for rows.Next() {
		group, err := r.scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}
	return groups, nil
}
