package service

import (
	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// ChgrpService はデータセットのグループ移動に関するドメインサービス
type ChgrpService interface {
	// AuthorizeChgrp はグループ移動の操作権限を確認します
	AuthorizeChgrp(actor *entity.User, dataset *entity.Dataset) error

	// TargetGroupCandidates は移動先候補グループを返します
	// 候補はデータ所有者の所属グループから現在のグループを除いたものです
	TargetGroupCandidates(dataset *entity.Dataset, ownerGroups []*entity.Group) []*entity.Group

	// ValidateTarget は移動先グループの妥当性を検証します
	ValidateTarget(dataset *entity.Dataset, targetGroupID uuid.UUID, ownerIsMember bool) error
}

// chgrpServiceImpl はChgrpServiceの実装
type chgrpServiceImpl struct{}

// NewChgrpService は新しいChgrpServiceを作成します
func NewChgrpService() ChgrpService {
	return &chgrpServiceImpl{}
}

// AuthorizeChgrp はグループ移動の操作権限を確認します
// データ所有者本人と管理者のみ移動できます
func (s *chgrpServiceImpl) AuthorizeChgrp(actor *entity.User, dataset *entity.Dataset) error {
	if !actor.CanActOnBehalfOf(dataset.OwnerID) {
		return apperror.NewForbiddenError("not authorized to move this dataset")
	}
	return nil
}

// TargetGroupCandidates は移動先候補グループを返します
func (s *chgrpServiceImpl) TargetGroupCandidates(dataset *entity.Dataset, ownerGroups []*entity.Group) []*entity.Group {
	candidates := make([]*entity.Group, 0, len(ownerGroups))
	for _, g := range ownerGroups {
		if dataset.IsInGroup(g.ID) {
			continue
		}
		candidates = append(candidates, g)
	}
	return candidates
}

// ValidateTarget は移動先グループの妥当性を検証します
func (s *chgrpServiceImpl) ValidateTarget(dataset *entity.Dataset, targetGroupID uuid.UUID, ownerIsMember bool) error {
	if dataset.IsInGroup(targetGroupID) {
		return apperror.NewInvalidRequestError("dataset already belongs to the target group")
	}
	if !ownerIsMember {
		return apperror.NewForbiddenError("dataset owner is not a member of the target group")
	}
	return nil
}
