package valueobject

import "errors"

var ErrInvalidPermissionLevel = errors.New("invalid permission level")

// PermissionLevel はグループの権限レベルを表す値オブジェクト
// 表記は "rwrw--" 形式（オーナー/グループ/全体 の read・write ペア）
type PermissionLevel string

const (
	// PermissionPrivate はオーナーのみ読み書き可能なグループです
	PermissionPrivate PermissionLevel = "rw----"
	// PermissionReadOnly はメンバーが閲覧のみ可能なグループです
	PermissionReadOnly PermissionLevel = "rwr---"
	// PermissionReadAnnotate はメンバーが閲覧と注釈付けが可能なグループです
	PermissionReadAnnotate PermissionLevel = "rwra--"
	// PermissionReadWrite はメンバーが読み書き可能なコラボレーショングループです
	PermissionReadWrite PermissionLevel = "rwrw--"
)

// NewPermissionLevel は文字列からPermissionLevelを生成します
func NewPermissionLevel(perms string) (PermissionLevel, error) {
	p := PermissionLevel(perms)
	if !p.IsValid() {
		return "", ErrInvalidPermissionLevel
	}
	return p, nil
}

// IsValid は権限レベルが有効かを判定します
func (p PermissionLevel) IsValid() bool {
	switch p {
	case PermissionPrivate, PermissionReadOnly, PermissionReadAnnotate, PermissionReadWrite:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (p PermissionLevel) String() string {
	return string(p)
}

// Name は権限レベルの表示名を返します
func (p PermissionLevel) Name() string {
	switch p {
	case PermissionPrivate:
		return "private"
	case PermissionReadOnly:
		return "read-only"
	case PermissionReadAnnotate:
		return "read-annotate"
	case PermissionReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// IsPrivate はプライベートグループかを判定します
func (p PermissionLevel) IsPrivate() bool {
	return p == PermissionPrivate
}

// MembersCanRead はメンバーが他人のデータを閲覧可能かを判定します
func (p PermissionLevel) MembersCanRead() bool {
	return p != PermissionPrivate
}

// MembersCanAnnotate はメンバーが他人のデータに注釈付け可能かを判定します
func (p PermissionLevel) MembersCanAnnotate() bool {
	return p == PermissionReadAnnotate || p == PermissionReadWrite
}

// MembersCanWrite はメンバーが他人のデータを編集可能かを判定します
func (p PermissionLevel) MembersCanWrite() bool {
	return p == PermissionReadWrite
}
