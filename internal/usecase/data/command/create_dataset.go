package command

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// CreateDatasetInput はデータセット作成の入力を定義します
type CreateDatasetInput struct {
	ActorID   uuid.UUID
	Name      string
	GroupID   uuid.UUID
	ProjectID *uuid.UUID
}

// CreateDatasetOutput はデータセット作成の出力を定義します
type CreateDatasetOutput struct {
	Dataset *entity.Dataset
}

// CreateDatasetCommand はデータセット作成コマンドです
type CreateDatasetCommand struct {
	datasetRepo    repository.DatasetRepository
	projectRepo    repository.ProjectRepository
	membershipRepo repository.MembershipRepository
}

// NewCreateDatasetCommand は新しいCreateDatasetCommandを作成します
func NewCreateDatasetCommand(
	datasetRepo repository.DatasetRepository,
	projectRepo repository.ProjectRepository,
	membershipRepo repository.MembershipRepository,
) *CreateDatasetCommand {
	return &CreateDatasetCommand{
		datasetRepo:    datasetRepo,
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
	}
}

// Execute はデータセットを作成します
// 親プロジェクトを指定する場合は同一グループでなければなりません
func (c *CreateDatasetCommand) Execute(ctx context.Context, input CreateDatasetInput) (*CreateDatasetOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidRequestError("dataset name is required")
	}

	isMember, err := c.membershipRepo.Exists(ctx, input.GroupID, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperror.NewForbiddenError("not a member of the group")
	}

	dataset := entity.NewDataset(name, input.ActorID, input.GroupID)

	if input.ProjectID != nil {
		project, err := c.projectRepo.FindByID(ctx, *input.ProjectID)
		if err != nil {
			return nil, err
		}
		if !project.IsInGroup(input.GroupID) {
			return nil, apperror.NewInvalidRequestError("project belongs to a different group")
		}
		dataset.AttachToProject(project.ID)
	}

	if err := c.datasetRepo.Create(ctx, dataset); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &CreateDatasetOutput{Dataset: dataset}, nil
}
