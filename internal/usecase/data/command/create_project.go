package command

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// CreateProjectInput はプロジェクト作成の入力を定義します
type CreateProjectInput struct {
	ActorID uuid.UUID
	Name    string
	GroupID uuid.UUID
}

// CreateProjectOutput はプロジェクト作成の出力を定義します
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectCommand はプロジェクト作成コマンドです
type CreateProjectCommand struct {
	projectRepo    repository.ProjectRepository
	membershipRepo repository.MembershipRepository
}

// NewCreateProjectCommand は新しいCreateProjectCommandを作成します
func NewCreateProjectCommand(
	projectRepo repository.ProjectRepository,
	membershipRepo repository.MembershipRepository,
) *CreateProjectCommand {
	return &CreateProjectCommand{
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
	}
}

// Execute はプロジェクトを作成します
// 作成先グループのメンバーのみ作成できます
func (c *CreateProjectCommand) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidRequestError("project name is required")
	}

	isMember, err := c.membershipRepo.Exists(ctx, input.GroupID, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperror.NewForbiddenError("not a member of the group")
	}

	project := entity.NewProject(name, input.ActorID, input.GroupID)
	if err := c.projectRepo.Create(ctx, project); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &CreateProjectOutput{Project: project}, nil
}
