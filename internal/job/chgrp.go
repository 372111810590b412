package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/service"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/internal/infrastructure/worker"
	"github.com/shotahirama/labshare/pkg/apperror"
)

const chgrpClaimBatchSize = 10

// ChgrpJob is a background job that executes queued group-move activities.
// Each activity moves a dataset into its target group and, when requested,
// links it under a container in that group.
type ChgrpJob struct {
	activityRepo   repository.ActivityRepository
	datasetRepo    repository.DatasetRepository
	projectRepo    repository.ProjectRepository
	membershipRepo repository.MembershipRepository
	chgrpService   service.ChgrpService
	txManager      repository.TransactionManager
}

// NewChgrpJob creates a new ChgrpJob.
func NewChgrpJob(
	activityRepo repository.ActivityRepository,
	datasetRepo repository.DatasetRepository,
	projectRepo repository.ProjectRepository,
	membershipRepo repository.MembershipRepository,
	chgrpService service.ChgrpService,
	txManager repository.TransactionManager,
) *ChgrpJob {
	return &ChgrpJob{
		activityRepo:   activityRepo,
		datasetRepo:    datasetRepo,
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		chgrpService:   chgrpService,
		txManager:      txManager,
	}
}

// AsWorkerJob wraps the job for registration with the worker manager.
func (j *ChgrpJob) AsWorkerJob(interval time.Duration) worker.Job {
	return worker.Job{
		Name:     "chgrp_queue",
		Interval: interval,
		Fn:       j.Run,
	}
}

// Run claims queued activities and processes them one by one.
// A failed activity is marked failed without affecting the others.
func (j *ChgrpJob) Run(ctx context.Context) error {
	activities, err := j.activityRepo.ClaimQueued(ctx, chgrpClaimBatchSize)
	if err != nil {
		return err
	}

	for _, activity := range activities {
		if err := j.process(ctx, activity); err != nil {
			activity.Fail(err)
			slog.Error("chgrp activity failed",
				"activity_id", activity.ID,
				"dataset_id", activity.DatasetID,
				"error", err)
		} else {
			activity.Finish()
		}

		if err := j.activityRepo.Update(ctx, activity); err != nil {
			slog.Error("chgrp activity update failed", "activity_id", activity.ID, "error", err)
		}
	}

	return nil
}

// process executes a single group move inside one transaction.
// The moved dataset and any container created for it always belong to the
// data owner, even when the activity was submitted by an administrator.
func (j *ChgrpJob) process(ctx context.Context, activity *entity.Activity) error {
	return j.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		dataset, err := j.datasetRepo.FindByID(ctx, activity.DatasetID)
		if err != nil {
			return err
		}

		ownerIsMember, err := j.membershipRepo.Exists(ctx, activity.TargetGroupID, dataset.OwnerID)
		if err != nil {
			return err
		}
		if err := j.chgrpService.ValidateTarget(dataset, activity.TargetGroupID, ownerIsMember); err != nil {
			return err
		}

		dataset.MoveToGroup(activity.TargetGroupID)

		if activity.WantsNewContainer() && activity.NewContainerType == valueobject.ContainerTypeProject {
			project, err := j.findOrCreateProject(ctx, activity, dataset)
			if err != nil {
				return err
			}
			dataset.AttachToProject(project.ID)
		}

		return j.datasetRepo.Update(ctx, dataset)
	})
}

// findOrCreateProject reuses an existing project with the requested name in
// the target group when the dataset owner also owns it, otherwise creates one.
func (j *ChgrpJob) findOrCreateProject(ctx context.Context, activity *entity.Activity, dataset *entity.Dataset) (*entity.Project, error) {
	existing, err := j.projectRepo.FindByNameInGroup(ctx, activity.TargetGroupID, activity.NewContainerName)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	if err == nil && existing.IsOwnedBy(dataset.OwnerID) {
		return existing, nil
	}

	project := entity.NewProject(activity.NewContainerName, dataset.OwnerID, activity.TargetGroupID)
	if err := j.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}
