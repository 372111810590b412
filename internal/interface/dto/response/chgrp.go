package response

import (
	"github.com/shotahirama/labshare/internal/domain/entity"
)

// TargetGroupsResponse は移動先候補グループ一覧レスポンス
type TargetGroupsResponse struct {
	Groups []TargetGroupResponse `json:"groups"`
}

// TargetGroupResponse は移動先候補グループ
type TargetGroupResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Perms string `json:"perms"`
}

// ToTargetGroupsResponse はエンティティをレスポンスに変換します
func ToTargetGroupsResponse(groups []*entity.Group) TargetGroupsResponse {
	result := make([]TargetGroupResponse, 0, len(groups))
	for _, g := range groups {
		result = append(result, TargetGroupResponse{
			ID:    g.ID.String(),
			Name:  g.Name.String(),
			Perms: g.Permissions.String(),
		})
	}
	return TargetGroupsResponse{Groups: result}
}
