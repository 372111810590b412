package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/service"
)

// GetProjectInput はプロジェクト取得の入力を定義します
type GetProjectInput struct {
	ActorID   uuid.UUID
	ProjectID uuid.UUID
}

// GetProjectOutput はプロジェクト取得の出力を定義します
type GetProjectOutput struct {
	Project  *entity.Project
	Group    *entity.Group
	Owner    *entity.User
	Datasets []*entity.Dataset
}

// GetProjectQuery はプロジェクト詳細を取得するクエリです
type GetProjectQuery struct {
	userRepo       repository.UserRepository
	projectRepo    repository.ProjectRepository
	datasetRepo    repository.DatasetRepository
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	authzService   service.AuthorizationService
}

// NewGetProjectQuery は新しいGetProjectQueryを作成します
func NewGetProjectQuery(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	datasetRepo repository.DatasetRepository,
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	authzService service.AuthorizationService,
) *GetProjectQuery {
	return &GetProjectQuery{
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		datasetRepo:    datasetRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		authzService:   authzService,
	}
}

// Execute はプロジェクトと所属データセットを取得します
func (q *GetProjectQuery) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	actor, err := q.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	project, err := q.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	group, err := q.groupRepo.FindByID(ctx, project.GroupID)
	if err != nil {
		return nil, err
	}

	isMember, err := q.membershipRepo.Exists(ctx, project.GroupID, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := q.authzService.AuthorizeProjectRead(project, group, actor, isMember); err != nil {
		return nil, err
	}

	owner, err := q.userRepo.FindByID(ctx, project.OwnerID)
	if err != nil {
		return nil, err
	}

	datasets, err := q.datasetRepo.FindByProjectID(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	return &GetProjectOutput{
		Project:  project,
		Group:    group,
		Owner:    owner,
		Datasets: datasets,
	}, nil
}
