package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/valueobject"
)

// Group は権限グループエンティティ（集約ルート）
// グループは権限レベルを持ち、所属メンバーのデータ可視性を決定します
type Group struct {
	ID          uuid.UUID
	Name        valueobject.GroupName
	Permissions valueobject.PermissionLevel
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGroup は新しいグループを作成します
func NewGroup(
	name valueobject.GroupName,
	permissions valueobject.PermissionLevel,
	ownerID uuid.UUID,
) *Group {
	now := time.Now()
	return &Group{
		ID:          uuid.New(),
		Name:        name,
		Permissions: permissions,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ReconstructGroup はDBからグループを復元します
func ReconstructGroup(
	id uuid.UUID,
	name valueobject.GroupName,
	permissions valueobject.PermissionLevel,
	ownerID uuid.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) *Group {
	return &Group{
		ID:          id,
		Name:        name,
		Permissions: permissions,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// IsOwnedBy は指定ユーザーがオーナーかを判定します
func (g *Group) IsOwnedBy(userID uuid.UUID) bool {
	return g.OwnerID == userID
}

// Rename はグループ名を変更します
func (g *Group) Rename(newName valueobject.GroupName) {
	g.Name = newName
	g.UpdatedAt = time.Now()
}

// ChangePermissions は権限レベルを変更します
func (g *Group) ChangePermissions(perms valueobject.PermissionLevel) {
	g.Permissions = perms
	g.UpdatedAt = time.Now()
}
