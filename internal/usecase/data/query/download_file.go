package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/service"
	"github.com/shotahirama/labshare/internal/infrastructure/storage"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// DownloadFileInput はファイルダウンロードの入力を定義します
type DownloadFileInput struct {
	ActorID uuid.UUID
	FileID  uuid.UUID
}

// DownloadFileOutput はファイルダウンロードの出力を定義します
type DownloadFileOutput struct {
	DownloadURL string
	FileName    string
	Size        int64
}

// DownloadFileQuery はファイルのダウンロードURLを発行するクエリです
// 実体へのアクセスはPresigned URL経由で行います
type DownloadFileQuery struct {
	userRepo       repository.UserRepository
	fileRepo       repository.DatasetFileRepository
	datasetRepo    repository.DatasetRepository
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	authzService   service.AuthorizationService
	storageService *storage.StorageService
}

// NewDownloadFileQuery は新しいDownloadFileQueryを作成します
func NewDownloadFileQuery(
	userRepo repository.UserRepository,
	fileRepo repository.DatasetFileRepository,
	datasetRepo repository.DatasetRepository,
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	authzService service.AuthorizationService,
	storageService *storage.StorageService,
) *DownloadFileQuery {
	return &DownloadFileQuery{
		userRepo:       userRepo,
		fileRepo:       fileRepo,
		datasetRepo:    datasetRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		authzService:   authzService,
		storageService: storageService,
	}
}

// Execute はダウンロードURLを発行します
func (q *DownloadFileQuery) Execute(ctx context.Context, input DownloadFileInput) (*DownloadFileOutput, error) {
	actor, err := q.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	file, err := q.fileRepo.FindByID(ctx, input.FileID)
	if err != nil {
		return nil, err
	}

	dataset, err := q.datasetRepo.FindByID(ctx, file.DatasetID)
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

	url, err := q.storageService.GenerateDownloadURL(ctx, file.StorageKey.String(), file.FileName)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &DownloadFileOutput{
		DownloadURL: url,
		FileName:    file.FileName,
		Size:        file.Size,
	}, nil
}
