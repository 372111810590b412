package command

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/service"
	"github.com/shotahirama/labshare/internal/infrastructure/storage"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// AttachFileInput はファイル添付の入力を定義します
type AttachFileInput struct {
	ActorID     uuid.UUID
	DatasetID   uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// AttachFileOutput はファイル添付の出力を定義します
type AttachFileOutput struct {
	File *entity.DatasetFile
}

// AttachFileCommand はデータセットへファイルを添付するコマンドです
// メタデータはDB、実体はオブジェクトストレージに保存されます
type AttachFileCommand struct {
	datasetRepo    repository.DatasetRepository
	fileRepo       repository.DatasetFileRepository
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	authzService   service.AuthorizationService
	storageService *storage.StorageService
	txManager      repository.TransactionManager
}

// NewAttachFileCommand は新しいAttachFileCommandを作成します
func NewAttachFileCommand(
	datasetRepo repository.DatasetRepository,
	fileRepo repository.DatasetFileRepository,
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	authzService service.AuthorizationService,
	storageService *storage.StorageService,
	txManager repository.TransactionManager,
) *AttachFileCommand {
	return &AttachFileCommand{
		datasetRepo:    datasetRepo,
		fileRepo:       fileRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		authzService:   authzService,
		storageService: storageService,
		txManager:      txManager,
	}
}

// Execute はファイルを添付します
func (c *AttachFileCommand) Execute(ctx context.Context, input AttachFileInput) (*AttachFileOutput, error) {
	if input.FileName == "" {
		return nil, apperror.NewInvalidRequestError("file name is required")
	}
	if input.Size <= 0 || input.Size > storage.MaxFileSize {
		return nil, apperror.NewInvalidRequestError("invalid file size")
	}

	actor, err := c.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	dataset, err := c.datasetRepo.FindByID(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}

	group, err := c.groupRepo.FindByID(ctx, dataset.GroupID)
	if err != nil {
		return nil, err
	}

	isMember, err := c.membershipRepo.Exists(ctx, dataset.GroupID, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := c.authzService.AuthorizeDatasetWrite(dataset, group, actor, isMember); err != nil {
		return nil, err
	}

	file := entity.NewDatasetFile(dataset.ID, input.FileName, input.ContentType, input.Size, actor.ID)

	// 先にストレージへアップロードし、その後メタデータを保存する
	// メタデータの保存に失敗した場合はオブジェクトを削除する
	key := file.StorageKey.String()
	if err := c.storageService.PutObject(ctx, key, input.Reader, input.Size, input.ContentType); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	err = c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		return c.fileRepo.Create(ctx, file)
	})
	if err != nil {
		_ = c.storageService.DeleteObject(ctx, key)
		return nil, apperror.NewInternalError(err)
	}

	return &AttachFileOutput{File: file}, nil
}
