package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/interface/dto/request"
	"github.com/shotahirama/labshare/internal/interface/dto/response"
	"github.com/shotahirama/labshare/internal/interface/middleware"
	"github.com/shotahirama/labshare/internal/interface/presenter"
	datacmd "github.com/shotahirama/labshare/internal/usecase/data/command"
	dataqry "github.com/shotahirama/labshare/internal/usecase/data/query"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// DatasetHandler はデータセット関連のHTTPハンドラーです
type DatasetHandler struct {
	createDatasetCommand *datacmd.CreateDatasetCommand
	getDatasetQuery      *dataqry.GetDatasetQuery
}

// NewDatasetHandler は新しいDatasetHandlerを作成します
func NewDatasetHandler(
	createDatasetCommand *datacmd.CreateDatasetCommand,
	getDatasetQuery *dataqry.GetDatasetQuery,
) *DatasetHandler {
	return &DatasetHandler{
		createDatasetCommand: createDatasetCommand,
		getDatasetQuery:      getDatasetQuery,
	}
}

// Create はデータセットを作成します
// POST /api/v1/datasets
func (h *DatasetHandler) Create(c echo.Context) error {
	var req request.CreateDatasetRequest
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

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		return apperror.NewInvalidRequestError("invalid group id")
	}

	var projectID *uuid.UUID
	if req.ProjectID != "" {
		id, err := uuid.Parse(req.ProjectID)
		if err != nil {
			return apperror.NewInvalidRequestError("invalid project id")
		}
		projectID = &id
	}

	output, err := h.createDatasetCommand.Execute(c.Request().Context(), datacmd.CreateDatasetInput{
		ActorID:   actorID,
		Name:      req.Name,
		GroupID:   groupID,
		ProjectID: projectID,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.ToDatasetResponse(output.Dataset))
}

// Get はデータセット詳細を返します
// GET /api/v1/datasets/:id
func (h *DatasetHandler) Get(c echo.Context) error {
	datasetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid dataset id")
	}

	actorID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	output, err := h.getDatasetQuery.Execute(c.Request().Context(), dataqry.GetDatasetInput{
		ActorID:   actorID,
		DatasetID: datasetID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.DatasetDetailResponse{
		Dataset: response.ToDatasetResponse(output.Dataset),
		Group:   response.ToGroupResponse(output.Group),
		Project: response.ToProjectResponse(output.Project),
		Files:   response.ToDatasetFileListResponse(output.Files),
	})
}
