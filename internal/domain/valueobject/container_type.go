package valueobject

import "errors"

var ErrInvalidContainerType = errors.New("invalid container type")

// ContainerType はグループ移動時に新規作成するコンテナの種別を表します
type ContainerType string

const (
	ContainerTypeProject ContainerType = "project"
	ContainerTypeDataset ContainerType = "dataset"
)

// NewContainerType は文字列からContainerTypeを生成します
func NewContainerType(t string) (ContainerType, error) {
	ct := ContainerType(t)
	if !ct.IsValid() {
		return "", ErrInvalidContainerType
	}
	return ct, nil
}

// IsValid はコンテナ種別が有効かを判定します
func (t ContainerType) IsValid() bool {
	switch t {
	case ContainerTypeProject, ContainerTypeDataset:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (t ContainerType) String() string {
	return string(t)
}
