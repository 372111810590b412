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

// ProjectHandler はプロジェクト関連のHTTPハンドラーです
type ProjectHandler struct {
	createProjectCommand *datacmd.CreateProjectCommand
	getProjectQuery      *dataqry.GetProjectQuery
}

// NewProjectHandler は新しいProjectHandlerを作成します
func NewProjectHandler(
	createProjectCommand *datacmd.CreateProjectCommand,
	getProjectQuery *dataqry.GetProjectQuery,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectCommand: createProjectCommand,
		getProjectQuery:      getProjectQuery,
	}
}

// Create はプロジェクトを作成します
// POST /api/v1/projects
func (h *ProjectHandler) Create(c echo.Context) error {
	var req request.CreateProjectRequest
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

	output, err := h.createProjectCommand.Execute(c.Request().Context(), datacmd.CreateProjectInput{
		ActorID: actorID,
		Name:    req.Name,
		GroupID: groupID,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.ToProjectResponse(output.Project))
}

// Get はプロジェクト詳細を返します
// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid project id")
	}

	actorID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	output, err := h.getProjectQuery.Execute(c.Request().Context(), dataqry.GetProjectInput{
		ActorID:   actorID,
		ProjectID: projectID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ProjectDetailResponse{
		Project:  response.ToProjectResponse(output.Project),
		Group:    response.ToGroupResponse(output.Group),
		Owner:    response.ToUserResponse(output.Owner),
		Datasets: response.ToDatasetListResponse(output.Datasets),
	})
}
