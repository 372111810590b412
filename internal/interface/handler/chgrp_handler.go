package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/interface/dto/request"
	"github.com/shotahirama/labshare/internal/interface/dto/response"
	"github.com/shotahirama/labshare/internal/interface/middleware"
	chgrpcmd "github.com/shotahirama/labshare/internal/usecase/chgrp/command"
	chgrpqry "github.com/shotahirama/labshare/internal/usecase/chgrp/query"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// ChgrpHandler はグループ移動関連のHTTPハンドラーです
type ChgrpHandler struct {
	submitCommand     *chgrpcmd.SubmitChgrpCommand
	targetGroupsQuery *chgrpqry.TargetGroupsQuery
}

// NewChgrpHandler は新しいChgrpHandlerを作成します
func NewChgrpHandler(
	submitCommand *chgrpcmd.SubmitChgrpCommand,
	targetGroupsQuery *chgrpqry.TargetGroupsQuery,
) *ChgrpHandler {
	return &ChgrpHandler{
		submitCommand:     submitCommand,
		targetGroupsQuery: targetGroupsQuery,
	}
}

// TargetGroups は移動先候補グループ一覧を返します
// GET /api/v1/chgrp/groups?Dataset=<uuid>
func (h *ChgrpHandler) TargetGroups(c echo.Context) error {
	var req request.TargetGroupsRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actorID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	datasetID, err := uuid.Parse(req.DatasetID)
	if err != nil {
		return apperror.NewInvalidRequestError("invalid dataset id")
	}

	output, err := h.targetGroupsQuery.Execute(c.Request().Context(), chgrpqry.TargetGroupsInput{
		ActorID:   actorID,
		DatasetID: datasetID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.ToTargetGroupsResponse(output.Groups))
}

// Submit はグループ移動をキューに投入します
// POST /api/v1/chgrp
// 成功時はプレーンテキスト "OK" を返します。移動は非同期に実行されます
func (h *ChgrpHandler) Submit(c echo.Context) error {
	var req request.ChgrpRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actorID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	datasetID, err := uuid.Parse(req.DatasetID)
	if err != nil {
		return apperror.NewInvalidRequestError("invalid dataset id")
	}

	targetGroupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		return apperror.NewInvalidRequestError("invalid group id")
	}

	_, err = h.submitCommand.Execute(c.Request().Context(), chgrpcmd.SubmitChgrpInput{
		ActorID:          actorID,
		DatasetID:        datasetID,
		TargetGroupID:    targetGroupID,
		NewContainerName: req.NewContainerName,
		NewContainerType: req.NewContainerType,
	})
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, "OK")
}
