package valueobject

import "errors"

var ErrInvalidActivityStatus = errors.New("invalid activity status")

// ActivityStatus は非同期ジョブの状態を表します
type ActivityStatus string

const (
	ActivityStatusQueued     ActivityStatus = "queued"
	ActivityStatusInProgress ActivityStatus = "inprogress"
	ActivityStatusFinished   ActivityStatus = "finished"
	ActivityStatusFailed     ActivityStatus = "failed"
)

// NewActivityStatus は文字列からActivityStatusを生成します
func NewActivityStatus(s string) (ActivityStatus, error) {
	status := ActivityStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidActivityStatus
	}
	return status, nil
}

// IsValid は状態が有効かを判定します
func (s ActivityStatus) IsValid() bool {
	switch s {
	case ActivityStatusQueued, ActivityStatusInProgress, ActivityStatusFinished, ActivityStatusFailed:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (s ActivityStatus) String() string {
	return string(s)
}

// IsTerminal は終了状態かを判定します
func (s ActivityStatus) IsTerminal() bool {
	return s == ActivityStatusFinished || s == ActivityStatusFailed
}

// InProgress は進行中（未完了）かを判定します
// キュー待ちのジョブも進行中として数えます
func (s ActivityStatus) InProgress() bool {
	return s == ActivityStatusQueued || s == ActivityStatusInProgress
}
