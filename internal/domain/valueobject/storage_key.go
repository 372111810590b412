package valueobject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidStorageKey = errors.New("invalid storage key")

// StorageKey はオブジェクトストレージのキーを表す値オブジェクトです
// 形式: datasets/{dataset_id}/files/{file_id}
type StorageKey struct {
	value string
}

// NewDatasetFileKey はデータセットファイル用のStorageKeyを生成します
func NewDatasetFileKey(datasetID, fileID uuid.UUID) StorageKey {
	return StorageKey{value: fmt.Sprintf("datasets/%s/files/%s", datasetID, fileID)}
}

// StorageKeyFromString は文字列からStorageKeyを復元します
func StorageKeyFromString(key string) (StorageKey, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return StorageKey{}, ErrInvalidStorageKey
	}
	return StorageKey{value: key}, nil
}

// String は文字列を返します
func (k StorageKey) String() string {
	return k.value
}
