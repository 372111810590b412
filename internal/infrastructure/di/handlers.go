package di

import (
	"github.com/shotahirama/labshare/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	Chgrp    *handler.ChgrpHandler
	Activity *handler.ActivityHandler
	Project  *handler.ProjectHandler
	Dataset  *handler.DatasetHandler
	File     *handler.FileHandler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	healthHandler := handler.NewHealthHandler()
	if c.PgClient != nil {
		healthHandler.RegisterChecker("postgres", c.PgClient)
	}
	if c.RedisClient != nil {
		healthHandler.RegisterChecker("redis", c.RedisClient)
	}
	if c.MinIOClient != nil {
		healthHandler.RegisterChecker("storage", c.MinIOClient)
	}

	h := newHandlers(c)
	h.Health = healthHandler
	return h
}

// NewHandlersForTest はテスト用にハンドラーを初期化します（HealthHandlerなし）
func NewHandlersForTest(c *Container) *Handlers {
	return newHandlers(c)
}

func newHandlers(c *Container) *Handlers {
	return &Handlers{
		Auth: handler.NewAuthHandler(
			c.Auth.Login,
			c.Auth.Logout,
			c.Auth.IssueToken,
			c.Auth.GetUser,
			c.config.App.LoginRedirect,
		),
		Chgrp: handler.NewChgrpHandler(
			c.Chgrp.Submit,
			c.Chgrp.TargetGroups,
		),
		Activity: handler.NewActivityHandler(
			c.Activity.List,
		),
		Project: handler.NewProjectHandler(
			c.Data.CreateProject,
			c.Data.GetProject,
		),
		Dataset: handler.NewDatasetHandler(
			c.Data.CreateDataset,
			c.Data.GetDataset,
		),
		File: handler.NewFileHandler(
			c.Data.AttachFile,
			c.Data.DownloadFile,
		),
	}
}
