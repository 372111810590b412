package di

import (
	activityqry "github.com/shotahirama/labshare/internal/usecase/activity/query"
	authcmd "github.com/shotahirama/labshare/internal/usecase/auth/command"
	authqry "github.com/shotahirama/labshare/internal/usecase/auth/query"
	chgrpcmd "github.com/shotahirama/labshare/internal/usecase/chgrp/command"
	chgrpqry "github.com/shotahirama/labshare/internal/usecase/chgrp/query"
	datacmd "github.com/shotahirama/labshare/internal/usecase/data/command"
	dataqry "github.com/shotahirama/labshare/internal/usecase/data/query"
)

// AuthUseCases はAuth関連のUseCaseを保持します
type AuthUseCases struct {
	// Commands
	Login      *authcmd.LoginCommand
	Logout     *authcmd.LogoutCommand
	IssueToken *authcmd.IssueTokenCommand

	// Queries
	GetUser *authqry.GetUserQuery
}

// NewAuthUseCases は新しいAuthUseCasesを作成します
func NewAuthUseCases(c *Container) *AuthUseCases {
	return &AuthUseCases{
		Login:      authcmd.NewLoginCommand(c.UserRepo, c.SessionRepo),
		Logout:     authcmd.NewLogoutCommand(c.SessionRepo),
		IssueToken: authcmd.NewIssueTokenCommand(c.UserRepo, c.TokenService),
		GetUser:    authqry.NewGetUserQuery(c.UserRepo),
	}
}

// ChgrpUseCases はグループ移動関連のUseCaseを保持します
type ChgrpUseCases struct {
	// Commands
	Submit *chgrpcmd.SubmitChgrpCommand

	// Queries
	TargetGroups *chgrpqry.TargetGroupsQuery
}

// NewChgrpUseCases は新しいChgrpUseCasesを作成します
func NewChgrpUseCases(c *Container) *ChgrpUseCases {
	return &ChgrpUseCases{
		Submit: chgrpcmd.NewSubmitChgrpCommand(
			c.UserRepo,
			c.DatasetRepo,
			c.GroupRepo,
			c.ActivityRepo,
			c.ChgrpService,
		),
		TargetGroups: chgrpqry.NewTargetGroupsQuery(
			c.UserRepo,
			c.DatasetRepo,
			c.GroupRepo,
			c.ChgrpService,
		),
	}
}

// ActivityUseCases はアクティビティ関連のUseCaseを保持します
type ActivityUseCases struct {
	List *activityqry.ListActivitiesQuery
}

// NewActivityUseCases は新しいActivityUseCasesを作成します
func NewActivityUseCases(c *Container) *ActivityUseCases {
	return &ActivityUseCases{
		List: activityqry.NewListActivitiesQuery(c.ActivityRepo),
	}
}

// DataUseCases はプロジェクト・データセット関連のUseCaseを保持します
type DataUseCases struct {
	// Commands
	CreateProject *datacmd.CreateProjectCommand
	CreateDataset *datacmd.CreateDatasetCommand
	AttachFile    *datacmd.AttachFileCommand

	// Queries
	GetProject   *dataqry.GetProjectQuery
	GetDataset   *dataqry.GetDatasetQuery
	DownloadFile *dataqry.DownloadFileQuery
}

// NewDataUseCases は新しいDataUseCasesを作成します
func NewDataUseCases(c *Container) *DataUseCases {
	return &DataUseCases{
		CreateProject: datacmd.NewCreateProjectCommand(c.ProjectRepo, c.MembershipRepo),
		CreateDataset: datacmd.NewCreateDatasetCommand(c.DatasetRepo, c.ProjectRepo, c.MembershipRepo),
		AttachFile: datacmd.NewAttachFileCommand(
			c.DatasetRepo,
			c.FileRepo,
			c.GroupRepo,
			c.MembershipRepo,
			c.UserRepo,
			c.AuthzService,
			c.Storage,
			c.TxManager,
		),
		GetProject: dataqry.NewGetProjectQuery(
			c.UserRepo,
			c.ProjectRepo,
			c.DatasetRepo,
			c.GroupRepo,
			c.MembershipRepo,
			c.AuthzService,
		),
		GetDataset: dataqry.NewGetDatasetQuery(
			c.UserRepo,
			c.DatasetRepo,
			c.ProjectRepo,
			c.GroupRepo,
			c.MembershipRepo,
			c.FileRepo,
			c.AuthzService,
		),
		DownloadFile: dataqry.NewDownloadFileQuery(
			c.UserRepo,
			c.FileRepo,
			c.DatasetRepo,
			c.GroupRepo,
			c.MembershipRepo,
			c.AuthzService,
			c.Storage,
		),
	}
}
