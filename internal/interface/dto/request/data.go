package request

// CreateProjectRequest はプロジェクト作成リクエスト
type CreateProjectRequest struct {
	Name    string `json:"name" form:"name" validate:"required,resourcename"`
	GroupID string `json:"group_id" form:"group_id" validate:"required,uuid"`
}

// CreateDatasetRequest はデータセット作成リクエスト
type CreateDatasetRequest struct {
	Name      string `json:"name" form:"name" validate:"required,resourcename"`
	GroupID   string `json:"group_id" form:"group_id" validate:"required,uuid"`
	ProjectID string `json:"project_id" form:"project_id" validate:"omitempty,uuid"`
}
