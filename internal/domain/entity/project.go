package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project はデータセットをまとめる上位コンテナエンティティ
// Projectは必ず1つのグループに属します
type Project struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	GroupID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProject は新しいプロジェクトを作成します
func NewProject(name string, ownerID, groupID uuid.UUID) *Project {
	now := time.Now()
	return &Project{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   ownerID,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReconstructProject はDBからプロジェクトを復元します
func ReconstructProject(
	id uuid.UUID,
	name string,
	ownerID uuid.UUID,
	groupID uuid.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) *Project {
	return &Project{
		ID:        id,
		Name:      name,
		OwnerID:   ownerID,
		GroupID:   groupID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// IsOwnedBy は指定ユーザーがオーナーかを判定します
func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// IsInGroup は指定グループに属しているかを判定します
func (p *Project) IsInGroup(groupID uuid.UUID) bool {
	return p.GroupID == groupID
}
