package response

import (
	"time"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// GroupResponse はグループ情報レスポンス
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Permissions string    `json:"permissions"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToGroupResponse はエンティティをレスポンスに変換します
func ToGroupResponse(g *entity.Group) *GroupResponse {
	if g == nil {
		return nil
	}
	return &GroupResponse{
		ID:          g.ID.String(),
		Name:        g.Name.String(),
		Permissions: g.Permissions.String(),
		OwnerID:     g.OwnerID.String(),
		CreatedAt:   g.CreatedAt,
	}
}
