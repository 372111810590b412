package request

// ChgrpRequest はグループ移動リクエスト
// Datasetフィールド名はフォーム互換のため大文字始まりです
type ChgrpRequest struct {
	GroupID          string `json:"group_id" form:"group_id" validate:"required,uuid"`
	DatasetID        string `json:"Dataset" form:"Dataset" validate:"required,uuid"`
	NewContainerName string `json:"new_container_name" form:"new_container_name" validate:"omitempty,resourcename"`
	NewContainerType string `json:"new_container_type" form:"new_container_type" validate:"omitempty,oneof=project dataset"`
}

// TargetGroupsRequest は移動先候補取得リクエスト
type TargetGroupsRequest struct {
	DatasetID string `query:"Dataset" validate:"required,uuid"`
}
