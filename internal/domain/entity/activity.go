package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/valueobject"
)

// JobNameChgrp はグループ移動ジョブの表示名です
const JobNameChgrp = "Change group"

// Activity は非同期ジョブエンティティ
// SubmittedByはジョブを投入したユーザー（管理者の場合あり）、
// OwnerIDは操作結果を帰属させるデータ所有者です
type Activity struct {
	ID               uuid.UUID
	JobName          string
	Status           valueobject.ActivityStatus
	SubmittedBy      uuid.UUID
	OwnerID          uuid.UUID
	DatasetID        uuid.UUID
	TargetGroupID    uuid.UUID
	NewContainerName string
	NewContainerType valueobject.ContainerType
	Error            string
	CreatedAt        time.Time
	StartedAt        *time.Time
	FinishedAt       *time.Time
}

// NewChgrpActivity は新しいグループ移動アクティビティを作成します
func NewChgrpActivity(
	submittedBy uuid.UUID,
	ownerID uuid.UUID,
	datasetID uuid.UUID,
	targetGroupID uuid.UUID,
	newContainerName string,
	newContainerType valueobject.ContainerType,
) *Activity {
	return &Activity{
		ID:               uuid.New(),
		JobName:          JobNameChgrp,
		Status:           valueobject.ActivityStatusQueued,
		SubmittedBy:      submittedBy,
		OwnerID:          ownerID,
		DatasetID:        datasetID,
		TargetGroupID:    targetGroupID,
		NewContainerName: newContainerName,
		NewContainerType: newContainerType,
		CreatedAt:        time.Now(),
	}
}

// ReconstructActivity はDBからアクティビティを復元します
func ReconstructActivity(
	id uuid.UUID,
	jobName string,
	status valueobject.ActivityStatus,
	submittedBy uuid.UUID,
	ownerID uuid.UUID,
	datasetID uuid.UUID,
	targetGroupID uuid.UUID,
	newContainerName string,
	newContainerType valueobject.ContainerType,
	errorText string,
	createdAt time.Time,
	startedAt *time.Time,
	finishedAt *time.Time,
) *Activity {
	return &Activity{
		ID:               id,
		JobName:          jobName,
		Status:           status,
		SubmittedBy:      submittedBy,
		OwnerID:          ownerID,
		DatasetID:        datasetID,
		TargetGroupID:    targetGroupID,
		NewContainerName: newContainerName,
		NewContainerType: newContainerType,
		Error:            errorText,
		CreatedAt:        createdAt,
		StartedAt:        startedAt,
		FinishedAt:       finishedAt,
	}
}

// Start はアクティビティを進行中に遷移させます
func (a *Activity) Start() {
	now := time.Now()
	a.Status = valueobject.ActivityStatusInProgress
	a.StartedAt = &now
}

// Finish はアクティビティを完了に遷移させます
func (a *Activity) Finish() {
	now := time.Now()
	a.Status = valueobject.ActivityStatusFinished
	a.FinishedAt = &now
}

// Fail はアクティビティを失敗に遷移させます
func (a *Activity) Fail(err error) {
	now := time.Now()
	a.Status = valueobject.ActivityStatusFailed
	a.FinishedAt = &now
	if err != nil {
		a.Error = err.Error()
	}
}

// InProgress は未完了（キュー待ち含む）かを判定します
func (a *Activity) InProgress() bool {
	return a.Status.InProgress()
}

// WantsNewContainer は移動先で新規コンテナ作成を要求しているかを判定します
func (a *Activity) WantsNewContainer() bool {
	return a.NewContainerName != ""
}
