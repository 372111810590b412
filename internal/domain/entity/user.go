package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/valueobject"
)

// UserStatus はユーザーの状態を定義します
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// IsValid は状態が有効かを判定します
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended:
		return true
	default:
		return false
	}
}

// User はユーザーエンティティを定義します
// Adminは他ユーザーのデータを操作できますが、
// 操作結果の所有者は常にデータの所有者に帰属します
type User struct {
	ID           uuid.UUID
	Username     string
	Email        valueobject.Email
	Name         string
	PasswordHash string
	Status       UserStatus
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser は新しいユーザーを作成します
func NewUser(username string, email valueobject.Email, name string, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Status:       UserStatusActive,
		Admin:        false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewAdminUser は新しい管理者ユーザーを作成します
func NewAdminUser(username string, email valueobject.Email, name string, passwordHash string) *User {
	u := NewUser(username, email, name, passwordHash)
	u.Admin = true
	return u
}

// ReconstructUser はDBからユーザーを復元します
func ReconstructUser(
	id uuid.UUID,
	username string,
	email valueobject.Email,
	name string,
	passwordHash string,
	status UserStatus,
	admin bool,
	createdAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Status:       status,
		Admin:        admin,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// IsActive はユーザーがアクティブかを判定します
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// CanLogin はユーザーがログイン可能かを判定します
func (u *User) CanLogin() bool {
	return u.Status == UserStatusActive
}

// IsAdmin は管理者かを判定します
func (u *User) IsAdmin() bool {
	return u.Admin
}

// CanActOnBehalfOf は指定ユーザーのデータを操作可能かを判定します
// 本人または管理者のみが操作できます
func (u *User) CanActOnBehalfOf(ownerID uuid.UUID) bool {
	return u.ID == ownerID || u.Admin
}
