package response

import (
	"time"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// ActivitiesResponse はアクティビティ一覧レスポンス
// inprogressは未完了（queued / inprogress）のジョブ数です
type ActivitiesResponse struct {
	InProgress int                `json:"inprogress"`
	Jobs       []ActivityResponse `json:"jobs"`
}

// ActivityResponse はアクティビティレスポンス
type ActivityResponse struct {
	ID               string     `json:"id"`
	JobName          string     `json:"job_name"`
	Status           string     `json:"status"`
	DatasetID        string     `json:"dataset_id"`
	ToGroupID        string     `json:"to_group_id"`
	NewContainerName string     `json:"new_container_name,omitempty"`
	NewContainerType string     `json:"new_container_type,omitempty"`
	Error            string     `json:"error,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
}

// ToActivityResponse はエンティティをレスポンスに変換します
func ToActivityResponse(a *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:               a.ID.String(),
		JobName:          a.JobName,
		Status:           a.Status.String(),
		DatasetID:        a.DatasetID.String(),
		ToGroupID:        a.TargetGroupID.String(),
		NewContainerName: a.NewContainerName,
		NewContainerType: a.NewContainerType.String(),
		Error:            a.Error,
		CreatedAt:        a.CreatedAt,
		StartedAt:        a.StartedAt,
		FinishedAt:       a.FinishedAt,
	}
}

// ToActivitiesResponse はアクティビティ一覧をレスポンスに変換します
func ToActivitiesResponse(inProgress int, activities []*entity.Activity) ActivitiesResponse {
	jobs := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		jobs = append(jobs, ToActivityResponse(a))
	}
	return ActivitiesResponse{
		InProgress: inProgress,
		Jobs:       jobs,
	}
}
