package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/valueobject"
)

// Membership はグループメンバーシップエンティティ
type Membership struct {
	ID       uuid.UUID
	GroupID  uuid.UUID
	UserID   uuid.UUID
	Role     valueobject.GroupRole
	JoinedAt time.Time
}

// NewMembership は新しいメンバーシップを作成します
func NewMembership(
	groupID uuid.UUID,
	userID uuid.UUID,
	role valueobject.GroupRole,
) *Membership {
	return &Membership{
		ID:       uuid.New(),
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
	}
}

// NewOwnerMembership はオーナー用のメンバーシップを作成します
func NewOwnerMembership(groupID uuid.UUID, userID uuid.UUID) *Membership {
	return NewMembership(groupID, userID, valueobject.GroupRoleOwner)
}

// ReconstructMembership はDBからメンバーシップを復元します
func ReconstructMembership(
	id uuid.UUID,
	groupID uuid.UUID,
	userID uuid.UUID,
	role valueobject.GroupRole,
	joinedAt time.Time,
) *Membership {
	return &Membership{
		ID:       id,
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		JoinedAt: joinedAt,
	}
}

// IsOwner はオーナーかを判定します
func (m *Membership) IsOwner() bool {
	return m.Role.IsOwner()
}

// IsMember は指定ユーザーのメンバーシップかを判定します
func (m *Membership) IsMember(userID uuid.UUID) bool {
	return m.UserID == userID
}

// BelongsToGroup は指定グループのメンバーシップかを判定します
func (m *Membership) BelongsToGroup(groupID uuid.UUID) bool {
	return m.GroupID == groupID
}

// MembershipWithGroup はメンバーシップとグループ情報を結合した構造体
type MembershipWithGroup struct {
	Membership *Membership
	Group      *Group
}
