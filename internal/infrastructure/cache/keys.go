package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// KeyPrefix はRedisキーのプレフィックスを定義します
type KeyPrefix string

const (
	// セッション関連
	PrefixSession      KeyPrefix = "session"       // session:{session_id}
	PrefixUserSessions KeyPrefix = "user:sessions" // user:sessions:{user_id}

	// レート制限
	PrefixRateLimit KeyPrefix = "ratelimit" // ratelimit:{type}:{identifier}
)

// SessionKey はセッションキーを生成します
func SessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", PrefixSession, sessionID)
}

// UserSessionsKey はユーザーのセッション一覧キーを生成します
func UserSessionsKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", PrefixUserSessions, userID.String())
}
