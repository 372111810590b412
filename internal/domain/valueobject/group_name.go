package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrGroupNameEmpty   = errors.New("group name must not be empty")
	ErrGroupNameTooLong = errors.New("group name must be at most 100 characters")
)

const maxGroupNameLength = 100

// GroupName はグループ名を表す値オブジェクトです
// 前後の空白はトリムされます
type GroupName struct {
	value string
}

// NewGroupName は文字列からGroupNameを生成します
func NewGroupName(name string) (GroupName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return GroupName{}, ErrGroupNameEmpty
	}
	if len(trimmed) > maxGroupNameLength {
		return GroupName{}, ErrGroupNameTooLong
	}
	return GroupName{value: trimmed}, nil
}

// String は文字列を返します
func (n GroupName) String() string {
	return n.value
}
