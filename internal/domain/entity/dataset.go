package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dataset はデータセットエンティティ
// Datasetは必ず1つのグループに属し、任意で親Projectを持ちます
type Dataset struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	GroupID   uuid.UUID
	ProjectID *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDataset は新しいデータセットを作成します
func NewDataset(name string, ownerID, groupID uuid.UUID) *Dataset {
	now := time.Now()
	return &Dataset{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   ownerID,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReconstructDataset はDBからデータセットを復元します
func ReconstructDataset(
	id uuid.UUID,
	name string,
	ownerID uuid.UUID,
	groupID uuid.UUID,
	projectID *uuid.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) *Dataset {
	return &Dataset{
		ID:        id,
		Name:      name,
		OwnerID:   ownerID,
		GroupID:   groupID,
		ProjectID: projectID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// IsOwnedBy は指定ユーザーがオーナーかを判定します
func (d *Dataset) IsOwnedBy(userID uuid.UUID) bool {
	return d.OwnerID == userID
}

// IsInGroup は指定グループに属しているかを判定します
func (d *Dataset) IsInGroup(groupID uuid.UUID) bool {
	return d.GroupID == groupID
}

// HasParent は親プロジェクトを持つかを判定します
func (d *Dataset) HasParent() bool {
	return d.ProjectID != nil
}

// MoveToGroup はデータセットを別グループへ移動します
// 親プロジェクトは移動元グループのものなのでリンクを外します
func (d *Dataset) MoveToGroup(groupID uuid.UUID) {
	d.GroupID = groupID
	d.ProjectID = nil
	d.UpdatedAt = time.Now()
}

// AttachToProject は親プロジェクトを設定します
func (d *Dataset) AttachToProject(projectID uuid.UUID) {
	d.ProjectID = &projectID
	d.UpdatedAt = time.Now()
}

// DetachFromProject は親プロジェクトのリンクを外します
func (d *Dataset) DetachFromProject() {
	d.ProjectID = nil
	d.UpdatedAt = time.Now()
}
