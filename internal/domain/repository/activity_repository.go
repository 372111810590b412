package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// ActivityRepository はアクティビティリポジトリのインターフェース
// キュー待ちのアクティビティはワーカーがClaimQueuedで取得します
type ActivityRepository interface {
	// 基本CRUD
	Create(ctx context.Context, activity *entity.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	Update(ctx context.Context, activity *entity.Activity) error

	// 検索
	FindBySubmittedBy(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Activity, error)
	CountInProgressBySubmittedBy(ctx context.Context, userID uuid.UUID) (int, error)

	// ClaimQueued はキュー待ちアクティビティを進行中に遷移させて取得します
	// 複数ワーカーが同時に呼んでも同じアクティビティを二重取得しません
	ClaimQueued(ctx context.Context, limit int) ([]*entity.Activity, error)
}
