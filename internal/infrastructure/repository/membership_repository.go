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

// MembershipRepository はメンバーシップリポジトリの実装です
type MembershipRepository struct {
	*database.BaseRepository
}

// インターフェース実装の確認
var _ repository.MembershipRepository = (*MembershipRepository)(nil)

// NewMembershipRepository は新しいMembershipRepositoryを作成します
func NewMembershipRepository(txManager *database.TxManager) *MembershipRepository {
	return &MembershipRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

const membershipColumns = `id, group_id, user_id, role, joined_at`

// Create はメンバーシップを作成します
func (r *MembershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO memberships (id, group_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)`,
		membership.ID,
		membership.GroupID,
		membership.UserID,
		membership.Role.String(),
		membership.JoinedAt,
	)
	return r.HandleError(err)
}

// FindByID はIDでメンバーシップを検索します
func (r *MembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id)
	return r.scanMembership(row)
}

// Delete はメンバーシップを削除します
func (r *MembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Querier(ctx).Exec(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	return r.HandleError(err)
}

// FindByGroupID はグループIDでメンバーシップを検索します
func (r *MembershipRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Membership, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE group_id = $1 ORDER BY joined_at`, groupID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanMemberships(rows)
}

// FindByUserID はユーザーIDでメンバーシップを検索します
func (r *MembershipRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = $1 ORDER BY joined_at`, userID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanMemberships(rows)
}

// FindByUserIDWithGroups はユーザーIDでメンバーシップとグループ情報を取得します
func (r *MembershipRepository) FindByUserIDWithGroups(ctx context.Context, userID uuid.UUID) ([]*entity.MembershipWithGroup, error) {
	rows, err := r.Querier(ctx).Query(ctx, `
		SELECT m.id, m.group_id, m.user_id, m.role, m.joined_at,
		       g.id, g.name, g.permissions, g.owner_id, g.created_at, g.updated_at
		FROM memberships m
		INNER JOIN groups g ON g.id = m.group_id
		WHERE m.user_id = $1
		ORDER BY m.joined_at`, userID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	results := make([]*entity.MembershipWithGroup, 0)
	for rows.Next() {
		var (
			mID       uuid.UUID
			groupID   uuid.UUID
			mUserID   uuid.UUID
			roleStr   string
			joinedAt  time.Time
			gID       uuid.UUID
			gNameStr  string
			gPermsStr string
			gOwnerID  uuid.UUID
			gCreated  time.Time
			gUpdated  time.Time
		)
		if err := rows.Scan(&mID, &groupID, &mUserID, &roleStr, &joinedAt,
			&gID, &gNameStr, &gPermsStr, &gOwnerID, &gCreated, &gUpdated); err != nil {
			return nil, r.HandleError(err)
		}

		role, err := valueobject.NewGroupRole(roleStr)
		if err != nil {
			return nil, err
		}
		gName, err := valueobject.NewGroupName(gNameStr)
		if err != nil {
			return nil, err
		}
		gPerms, err := valueobject.NewPermissionLevel(gPermsStr)
		if err != nil {
			return nil, err
		}

		results = append(results, &entity.MembershipWithGroup{
			Membership: entity.ReconstructMembership(mID, groupID, mUserID, role, joinedAt),
			Group:      entity.ReconstructGroup(gID, gName, gPerms, gOwnerID, gCreated, gUpdated),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}
	return results, nil
}

// FindByGroupAndUser はグループとユーザーでメンバーシップを検索します
func (r *MembershipRepository) FindByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*entity.Membership, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE group_id = $1 AND user_id = $2`,
		groupID, userID)
	return r.scanMembership(row)
}

// Exists はメンバーシップが存在するかを確認します
func (r *MembershipRepository) Exists(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM memberships WHERE group_id = $1 AND user_id = $2)`,
		groupID, userID).Scan(&exists)
	if err != nil {
		return false, r.HandleError(err)
	}
	return exists, nil
}

// CountByGroupID はグループのメンバー数を返します
func (r *MembershipRepository) CountByGroupID(ctx context.Context, groupID uuid.UUID) (int, error) {
	var count int
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM memberships WHERE group_id = $1`, groupID).Scan(&count)
	if err != nil {
		return 0, r.HandleError(err)
	}
	return count, nil
}

// DeleteByGroupID はグループの全メンバーシップを削除します
func (r *MembershipRepository) DeleteByGroupID(ctx context.Context, groupID uuid.UUID) error {
	_, err := r.Querier(ctx).Exec(ctx, `DELETE FROM memberships WHERE group_id = $1`, groupID)
	return r.HandleError(err)
}

// scanMembership は行からメンバーシップエンティティを復元します
func (r *MembershipRepository) scanMembership(row pgx.Row) (*entity.Membership, error) {
	var (
		id       uuid.UUID
		groupID  uuid.UUID
		userID   uuid.UUID
		roleStr  string
		joinedAt time.Time
	)
	err := row.Scan(&id, &groupID, &userID, &roleStr, &joinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("membership")
		}
		return nil, r.HandleError(err)
	}

	role, err := valueobject.NewGroupRole(roleStr)
	if err != nil {
		return nil, err
	}

	return entity.ReconstructMembership(id, groupID, userID, role, joinedAt), nil
}

// scanMemberships は行セットからメンバーシップの一覧を復元します
func (r *MembershipRepository) scanMemberships(rows pgx.Rows) ([]*entity.Membership, error) {
	memberships := make([]*entity.Membership, 0)
	for rows.Next() {
		membership, err := r.scanMembership(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}
	return memberships, nil
}
