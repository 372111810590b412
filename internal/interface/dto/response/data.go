package response

import (
	"time"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// ProjectResponse はプロジェクト情報レスポンス
type ProjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	GroupID   string    `json:"group_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProjectResponse はエンティティをレスポンスに変換します
func ToProjectResponse(p *entity.Project) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		OwnerID:   p.OwnerID.String(),
		GroupID:   p.GroupID.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ProjectDetailResponse はプロジェクト詳細レスポンス
type ProjectDetailResponse struct {
	Project  *ProjectResponse  `json:"project"`
	Group    *GroupResponse    `json:"group"`
	Owner    *UserResponse     `json:"owner"`
	Datasets []DatasetResponse `json:"datasets"`
}

// DatasetResponse はデータセット情報レスポンス
type DatasetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	GroupID   string    `json:"group_id"`
	ProjectID *string   `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDatasetResponse はエンティティをレスポンスに変換します
func ToDatasetResponse(d *entity.Dataset) DatasetResponse {
	var projectID *string
	if d.ProjectID != nil {
		id := d.ProjectID.String()
		projectID = &id
	}
	return DatasetResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		OwnerID:   d.OwnerID.String(),
		GroupID:   d.GroupID.String(),
		ProjectID: projectID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDatasetListResponse はデータセット一覧をレスポンスに変換します
func ToDatasetListResponse(datasets []*entity.Dataset) []DatasetResponse {
	result := make([]DatasetResponse, 0, len(datasets))
	for _, d := range datasets {
		result = append(result, ToDatasetResponse(d))
	}
	return result
}

// DatasetDetailResponse はデータセット詳細レスポンス
type DatasetDetailResponse struct {
	Dataset DatasetResponse       `json:"dataset"`
	Group   *GroupResponse        `json:"group"`
	Project *ProjectResponse      `json:"project"`
	Files   []DatasetFileResponse `json:"files"`
}

// DatasetFileResponse はデータセットファイル情報レスポンス
type DatasetFileResponse struct {
	ID          string    `json:"id"`
	DatasetID   string    `json:"dataset_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToDatasetFileResponse はエンティティをレスポンスに変換します
func ToDatasetFileResponse(f *entity.DatasetFile) DatasetFileResponse {
	return DatasetFileResponse{
		ID:          f.ID.String(),
		DatasetID:   f.DatasetID.String(),
		FileName:    f.FileName,
		ContentType: f.ContentType,
		Size:        f.Size,
		UploadedBy:  f.UploadedBy.String(),
		CreatedAt:   f.CreatedAt,
	}
}

// ToDatasetFileListResponse はファイル一覧をレスポンスに変換します
func ToDatasetFileListResponse(files []*entity.DatasetFile) []DatasetFileResponse {
	result := make([]DatasetFileResponse, 0, len(files))
	for _, f := range files {
		result = append(result, ToDatasetFileResponse(f))
	}
	return result
}

// DownloadURLResponse はダウンロードURLレスポンス
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url"`
	FileName    string `json:"file_name"`
	Size        int64  `json:"size"`
}
