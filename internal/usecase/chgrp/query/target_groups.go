package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/service"
)

// TargetGroupsInput は移動先候補取得の入力を定義します
type TargetGroupsInput struct {
	ActorID   uuid.UUID
	DatasetID uuid.UUID
}

// TargetGroupsOutput は移動先候補取得の出力を定義します
type TargetGroupsOutput struct {
	Groups []*entity.Group
}

// TargetGroupsQuery はデータセットの移動先候補グループを取得するクエリです
// 候補はデータ所有者の所属グループから現在のグループを除いたものです
type TargetGroupsQuery struct {
	userRepo     repository.UserRepository
	datasetRepo  repository.DatasetRepository
	groupRepo    repository.GroupRepository
	chgrpService service.ChgrpService
}

// NewTargetGroupsQuery は新しいTargetGroupsQueryを作成します
func NewTargetGroupsQuery(
	userRepo repository.UserRepository,
	datasetRepo repository.DatasetRepository,
	groupRepo repository.GroupRepository,
	chgrpService service.ChgrpService,
) *TargetGroupsQuery {
	return &TargetGroupsQuery{
		userRepo:     userRepo,
		datasetRepo:  datasetRepo,
		groupRepo:    groupRepo,
		chgrpService: chgrpService,
	}
}

// Execute は移動先候補グループを取得します
func (q *TargetGroupsQuery) Execute(ctx context.Context, input TargetGroupsInput) (*TargetGroupsOutput, error) {
	actor, err := q.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	dataset, err := q.datasetRepo.FindByID(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}

	if err := q.chgrpService.AuthorizeChgrp(actor, dataset); err != nil {
		return nil, err
	}

	// 候補は操作者ではなくデータ所有者の所属グループから決まる
	ownerGroups, err := q.groupRepo.FindByMemberID(ctx, dataset.OwnerID)
	if err != nil {
		return nil, err
	}

	return &TargetGroupsOutput{
		Groups: q.chgrpService.TargetGroupCandidates(dataset, ownerGroups),
	}, nil
}
