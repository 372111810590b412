package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SessionTTL はセッションのデフォルト有効期限
	SessionTTL = 24 * time.Hour
)

// Session はログインセッションエンティティを定義します
type Session struct {
	ID         string
	UserID     uuid.UUID
	CSRFToken  string
	UserAgent  string
	IPAddress  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	LastUsedAt time.Time
}

// IsExpired はセッションが期限切れかを判定します
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid はセッションが有効かを判定します
func (s *Session) IsValid() bool {
	return !s.IsExpired()
}

// Refresh はセッションの有効期限を延長します（スライディングウィンドウ）
func (s *Session) Refresh() {
	s.LastUsedAt = time.Now()
	s.ExpiresAt = time.Now().Add(SessionTTL)
}
