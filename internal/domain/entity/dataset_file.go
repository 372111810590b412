package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/valueobject"
)

// DatasetFile はデータセットに添付されたオリジナルファイルのエンティティ
// 実体はオブジェクトストレージに保存されます
type DatasetFile struct {
	ID          uuid.UUID
	DatasetID   uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	StorageKey  valueobject.StorageKey
	UploadedBy  uuid.UUID
	CreatedAt   time.Time
}

// NewDatasetFile は新しいデータセットファイルを作成します
func NewDatasetFile(datasetID uuid.UUID, fileName, contentType string, size int64, uploadedBy uuid.UUID) *DatasetFile {
	id := uuid.New()
	return &DatasetFile{
		ID:          id,
		DatasetID:   datasetID,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		StorageKey:  valueobject.NewDatasetFileKey(datasetID, id),
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now(),
	}
}

// ReconstructDatasetFile はDBからデータセットファイルを復元します
func ReconstructDatasetFile(
	id uuid.UUID,
	datasetID uuid.UUID,
	fileName string,
	contentType string,
	size int64,
	storageKey valueobject.StorageKey,
	uploadedBy uuid.UUID,
	createdAt time.Time,
) *DatasetFile {
	return &DatasetFile{
		ID:          id,
		DatasetID:   datasetID,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		StorageKey:  storageKey,
		UploadedBy:  uploadedBy,
		CreatedAt:   createdAt,
	}
}
