package service

import (
	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// AuthorizationService は認可に関するドメインサービス
// グループの権限レベルとメンバーシップからデータの可視性を判定します
type AuthorizationService interface {
	// AuthorizeDatasetRead はデータセットの参照権限を確認します
	AuthorizeDatasetRead(dataset *entity.Dataset, group *entity.Group, user *entity.User, isMember bool) error

	// AuthorizeDatasetWrite はデータセットの変更権限を確認します
	AuthorizeDatasetWrite(dataset *entity.Dataset, group *entity.Group, user *entity.User, isMember bool) error

	// AuthorizeProjectRead はプロジェクトの参照権限を確認します
	AuthorizeProjectRead(project *entity.Project, group *entity.Group, user *entity.User, isMember bool) error
}

// authorizationServiceImpl はAuthorizationServiceの実装
type authorizationServiceImpl struct{}

// NewAuthorizationService は新しいAuthorizationServiceを作成します
func NewAuthorizationService() AuthorizationService {
	return &authorizationServiceImpl{}
}

// AuthorizeDatasetRead はデータセットの参照権限を確認します
func (s *authorizationServiceImpl) AuthorizeDatasetRead(dataset *entity.Dataset, group *entity.Group, user *entity.User, isMember bool) error {
	if authorizeRead(dataset.OwnerID, group.Permissions, user, isMember) {
		return nil
	}
	return apperror.NewForbiddenError("not authorized to read this dataset")
}

// AuthorizeDatasetWrite はデータセットの変更権限を確認します
func (s *authorizationServiceImpl) AuthorizeDatasetWrite(dataset *entity.Dataset, group *entity.Group, user *entity.User, isMember bool) error {
	if user.CanActOnBehalfOf(dataset.OwnerID) {
		return nil
	}
	if isMember && group.Permissions.MembersCanWrite() {
		return nil
	}
	return apperror.NewForbiddenError("not authorized to modify this dataset")
}

// AuthorizeProjectRead はプロジェクトの参照権限を確認します
func (s *authorizationServiceImpl) AuthorizeProjectRead(project *entity.Project, group *entity.Group, user *entity.User, isMember bool) error {
	if authorizeRead(project.OwnerID, group.Permissions, user, isMember) {
		return nil
	}
	return apperror.NewForbiddenError("not authorized to read this project")
}

func authorizeRead(ownerID uuid.UUID, perms valueobject.PermissionLevel, user *entity.User, isMember bool) bool {
	if user.CanActOnBehalfOf(ownerID) {
		return true
	}
	return isMember && perms.MembersCanRead()
}
