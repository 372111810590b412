package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/service"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// SubmitChgrpInput はグループ移動投入の入力を定義します
type SubmitChgrpInput struct {
	ActorID          uuid.UUID
	DatasetID        uuid.UUID
	TargetGroupID    uuid.UUID
	NewContainerName string
	NewContainerType string
}

// SubmitChgrpOutput はグループ移動投入の出力を定義します
type SubmitChgrpOutput struct {
	Activity *entity.Activity
}

// SubmitChgrpCommand はグループ移動をキューに投入するコマンドです
// 移動処理自体はバックグラウンドワーカーが非同期に実行します
type SubmitChgrpCommand struct {
	userRepo     repository.UserRepository
	datasetRepo  repository.DatasetRepository
	groupRepo    repository.GroupRepository
	activityRepo repository.ActivityRepository
	chgrpService service.ChgrpService
}

// NewSubmitChgrpCommand は新しいSubmitChgrpCommandを作成します
func NewSubmitChgrpCommand(
	userRepo repository.UserRepository,
	datasetRepo repository.DatasetRepository,
	groupRepo repository.GroupRepository,
	activityRepo repository.ActivityRepository,
	chgrpService service.ChgrpService,
) *SubmitChgrpCommand {
	return &SubmitChgrpCommand{
		userRepo:     userRepo,
		datasetRepo:  datasetRepo,
		groupRepo:    groupRepo,
		activityRepo: activityRepo,
		chgrpService: chgrpService,
	}
}

// Execute はグループ移動アクティビティを作成します
// 移動結果の所有者は操作者ではなく常にデータ所有者です
func (c *SubmitChgrpCommand) Execute(ctx context.Context, input SubmitChgrpInput) (*SubmitChgrpOutput, error) {
	actor, err := c.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	dataset, err := c.datasetRepo.FindByID(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}

	if err := c.chgrpService.AuthorizeChgrp(actor, dataset); err != nil {
		return nil, err
	}

	if dataset.IsInGroup(input.TargetGroupID) {
		return nil, apperror.NewInvalidRequestError("dataset already belongs to the target group")
	}

	exists, err := c.groupRepo.ExistsByID(ctx, input.TargetGroupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NewNotFoundError("group")
	}

	var containerType valueobject.ContainerType
	if input.NewContainerName != "" {
		containerType, err = valueobject.NewContainerType(input.NewContainerType)
		if err != nil {
			return nil, apperror.NewInvalidRequestError("invalid container type")
		}
	}

	activity := entity.NewChgrpActivity(
		actor.ID,
		dataset.OwnerID,
		dataset.ID,
		input.TargetGroupID,
		input.NewContainerName,
		containerType,
	)

	if err := c.activityRepo.Create(ctx, activity); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &SubmitChgrpOutput{Activity: activity}, nil
}
