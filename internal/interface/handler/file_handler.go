package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shotahirama/labshare/internal/interface/dto/response"
	"github.com/shotahirama/labshare/internal/interface/middleware"
	"github.com/shotahirama/labshare/internal/interface/presenter"
	datacmd "github.com/shotahirama/labshare/internal/usecase/data/command"
	dataqry "github.com/shotahirama/labshare/internal/usecase/data/query"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// FileHandler はデータセットファイル関連のHTTPハンドラーです
type FileHandler struct {
	attachFileCommand *datacmd.AttachFileCommand
	downloadFileQuery *dataqry.DownloadFileQuery
}

// NewFileHandler は新しいFileHandlerを作成します
func NewFileHandler(
	attachFileCommand *datacmd.AttachFileCommand,
	downloadFileQuery *dataqry.DownloadFileQuery,
) *FileHandler {
	return &FileHandler{
		attachFileCommand: attachFileCommand,
		downloadFileQuery: downloadFileQuery,
	}
}

// Upload はデータセットへファイルを添付します
// POST /api/v1/datasets/:id/files
// multipart/form-data の "file" フィールドを受け付けます
func (h *FileHandler) Upload(c echo.Context) error {
	datasetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid dataset id")
	}

	actorID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperror.NewInvalidRequestError("file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return apperror.NewInternalError(err)
	}
	defer src.Close()

	output, err := h.attachFileCommand.Execute(c.Request().Context(), datacmd.AttachFileInput{
		ActorID:     actorID,
		DatasetID:   datasetID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      src,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.ToDatasetFileResponse(output.File))
}

// Download はファイルのダウンロードURLを返します
// GET /api/v1/files/:id/download
func (h *FileHandler) Download(c echo.Context) error {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid file id")
	}

	actorID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid user context")
	}

	output, err := h.downloadFileQuery.Execute(c.Request().Context(), dataqry.DownloadFileInput{
		ActorID: actorID,
		FileID:  fileID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.DownloadURLResponse{
		DownloadURL: output.DownloadURL,
		FileName:    output.FileName,
		Size:        output.Size,
	})
}
