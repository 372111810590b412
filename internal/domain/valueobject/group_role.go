package valueobject

import "errors"

var ErrInvalidGroupRole = errors.New("invalid group role")

// GroupRole はグループ内のメンバーシップロールを表す値オブジェクト
type GroupRole string

const (
	GroupRoleMember GroupRole = "member"
	GroupRoleOwner  GroupRole = "owner"
)

// NewGroupRole は文字列からGroupRoleを生成します
func NewGroupRole(role string) (GroupRole, error) {
	r := GroupRole(role)
	if !r.IsValid() {
		return "", ErrInvalidGroupRole
	}
	return r, nil
}

// IsValid はロールが有効かを判定します
func (r GroupRole) IsValid() bool {
	switch r {
	case GroupRoleMember, GroupRoleOwner:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (r GroupRole) String() string {
	return string(r)
}

// IsOwner はオーナーかを判定します
func (r GroupRole) IsOwner() bool {
	return r == GroupRoleOwner
}
