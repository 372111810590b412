package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
)

// デフォルトの取得件数
const defaultActivityLimit = 50

// ListActivitiesInput はアクティビティ一覧取得の入力を定義します
type ListActivitiesInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListActivitiesOutput はアクティビティ一覧取得の出力を定義します
type ListActivitiesOutput struct {
	InProgress int
	Activities []*entity.Activity
}

// ListActivitiesQuery は投入者自身のアクティビティ一覧を取得するクエリです
type ListActivitiesQuery struct {
	activityRepo repository.ActivityRepository
}

// NewListActivitiesQuery は新しいListActivitiesQueryを作成します
func NewListActivitiesQuery(activityRepo repository.ActivityRepository) *ListActivitiesQuery {
	return &ListActivitiesQuery{activityRepo: activityRepo}
}

// Execute はアクティビティ一覧と未完了件数を取得します
func (q *ListActivitiesQuery) Execute(ctx context.Context, input ListActivitiesInput) (*ListActivitiesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	activities, err := q.activityRepo.FindBySubmittedBy(ctx, input.UserID, limit)
	if err != nil {
		return nil, err
	}

	inProgress, err := q.activityRepo.CountInProgressBySubmittedBy(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListActivitiesOutput{
		InProgress: inProgress,
		Activities: activities,
	}, nil
}
