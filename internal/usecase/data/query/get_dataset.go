package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/service"
)

// GetDatasetInput はデータセット取得の入力を定義します
type GetDatasetInput struct {
	ActorID   uuid.UUID
	DatasetID uuid.UUID
}

// GetDatasetOutput はデータセット取得の出力を定義します
type GetDatasetOutput struct {
	Dataset *entity.Dataset
	Group   *entity.Group
	Project *entity.Project
	Files   []*entity.DatasetFile
}

// GetDatasetQuery はデータセット詳細を取得するクエリです
type GetDatasetQuery struct {
	userRepo       repository.UserRepository
	datasetRepo    repository.DatasetRepository
	projectRepo    repository.ProjectRepository
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	fileRepo       repository.DatasetFileRepository
	authzService   service.AuthorizationService
}

// NewGetDatasetQuery は新しいGetDatasetQueryを作成します
func NewGetDatasetQuery(
	userRepo repository.UserRepository,
	datasetRepo repository.DatasetRepository,
	projectRepo repository.ProjectRepository,
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	fileRepo repository.DatasetFileRepository,
	authzService service.AuthorizationService,
) *GetDatasetQuery {
	return &GetDatasetQuery{
		userRepo:       userRepo,
		datasetRepo:    datasetRepo,
		projectRepo:    projectRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		fileRepo:       fileRepo,
		authzService:   authzService,
	}
}

// Execute はデータセットと親プロジェクト、添付ファイルを取得します
func (q *GetDatasetQuery) Execute(ctx context.Context, input GetDatasetInput) (*GetDatasetOutput, error) {
	actor, err := q.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	dataset, err := q.datasetRepo.FindByID(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}

	group, err := q.groupRepo.FindByID(ctx, dataset.GroupID)
	if err != nil {
		return nil, err
	}

	isMember, err := q.membershipRepo.Exists(ctx, dataset.GroupID, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := q.authzService.AuthorizeDatasetRead(dataset, group, actor, isMember); err != nil {
		return nil, err
	}

	var project *entity.Project
	if dataset.HasParent() {
		project, err = q.projectRepo.FindByID(ctx, *dataset.ProjectID)
		if err != nil {
			return nil, err
		}
	}

	files, err := q.fileRepo.FindByDatasetID(ctx, dataset.ID)
	if err != nil {
		return nil, err
	}

	return &GetDatasetOutput{
		Dataset: dataset,
		Group:   group,
		Project: project,
		Files:   files,
	}, nil
}
