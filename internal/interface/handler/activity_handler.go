package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/interface/dto/response"
	"github.com/shotahirama/labshare/internal/interface/middleware"
	activityqry "github.com/shotahirama/labshare/internal/usecase/activity/query"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// ActivityHandler はアクティビティ関連のHTTPハンドラーです
type ActivityHandler struct {
	listActivitiesQuery *activityqry.ListActivitiesQuery
}

// NewActivityHandler は新しいActivityHandlerを作成します
func NewActivityHandler(listActivitiesQuery *activityqry.ListActivitiesQuery) *ActivityHandler {
	return &ActivityHandler{
		listActivitiesQuery: listActivitiesQuery,
	}
}

// List は投入者自身のアクティビティ一覧を返します
// GET /api/v1/activities
// クライアントはinprogressが0になるまでこのエンドポイントをポーリングします
func (h *ActivityHandler) List(c echo.Context) error {
	actorID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			return apperror.NewInvalidRequestError("invalid limit")
		}
	}

	output, err := h.listActivitiesQuery.Execute(c.Request().Context(), activityqry.ListActivitiesInput{
		UserID: actorID,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.ToActivitiesResponse(output.InProgress, output.Activities))
}
