package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/service"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/internal/usecase/chgrp/command"
	"github.com/shotahirama/labshare/pkg/apperror"
	"github.com/shotahirama/labshare/tests/testutil/mocks"
)

func newUser(t *testing.T, admin bool) *entity.User {
	t.Helper()
	email, err := valueobject.NewEmail("user@example.com")
	require.NoError(t, err)
	if admin {
		return entity.NewAdminUser("admin", email, "Admin", "hash")
	}
	return entity.NewUser("user", email, "User", "hash")
}

func newSubmitCommand(
	t *testing.T,
	userRepo *mocks.MockUserRepository,
	datasetRepo *mocks.MockDatasetRepository,
	groupRepo *mocks.MockGroupRepository,
	activityRepo *mocks.MockActivityRepository,
) *command.SubmitChgrpCommand {
	t.Helper()
	return command.NewSubmitChgrpCommand(userRepo, datasetRepo, groupRepo, activityRepo, service.NewChgrpService())
}

func TestSubmitChgrpCommand_Execute_Owner_QueuesActivity(t *testing.T) {
	ctx := context.Background()
	owner := newUser(t, false)
	dataset := entity.NewDataset("d1", owner.ID, uuid.New())
	targetGroupID := uuid.New()

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)
	activityRepo := mocks.NewMockActivityRepository(t)

	userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)
	groupRepo.On("ExistsByID", ctx, targetGroupID).Return(true, nil)
	activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)

	cmd := newSubmitCommand(t, userRepo, datasetRepo, groupRepo, activityRepo)
	output, err := cmd.Execute(ctx, command.SubmitChgrpInput{
		ActorID:          owner.ID,
		DatasetID:        dataset.ID,
		TargetGroupID:    targetGroupID,
		NewContainerName: "chgrp-project",
		NewContainerType: "project",
	})

	require.NoError(t, err)
	activity := output.Activity
	assert.Equal(t, entity.JobNameChgrp, activity.JobName)
	assert.Equal(t, valueobject.ActivityStatusQueued, activity.Status)
	assert.Equal(t, owner.ID, activity.SubmittedBy)
	assert.Equal(t, owner.ID, activity.OwnerID)
	assert.Equal(t, targetGroupID, activity.TargetGroupID)
}

func TestSubmitChgrpCommand_Execute_AdminOnBehalfOfOwner_KeepsOwner(t *testing.T) {
	ctx := context.Background()
	admin := newUser(t, true)
	ownerID := uuid.New()
	dataset := entity.NewDataset("d1", ownerID, uuid.New())
	targetGroupID := uuid.New()

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)
	activityRepo := mocks.NewMockActivityRepository(t)

	userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)
	groupRepo.On("ExistsByID", ctx, targetGroupID).Return(true, nil)
	activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)

	cmd := newSubmitCommand(t, userRepo, datasetRepo, groupRepo, activityRepo)
	output, err := cmd.Execute(ctx, command.SubmitChgrpInput{
		ActorID:       admin.ID,
		DatasetID:     dataset.ID,
		TargetGroupID: targetGroupID,
	})

	require.NoError(t, err)
	// 管理者が投入してもデータ所有者は変わらない
	assert.Equal(t, admin.ID, output.Activity.SubmittedBy)
	assert.Equal(t, ownerID, output.Activity.OwnerID)
}

func TestSubmitChgrpCommand_Execute_OtherUser_ReturnsForbidden(t *testing.T) {
	ctx := context.Background()
	actor := newUser(t, false)
	dataset := entity.NewDataset("d1", uuid.New(), uuid.New())

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)
	activityRepo := mocks.NewMockActivityRepository(t)

	userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)

	cmd := newSubmitCommand(t, userRepo, datasetRepo, groupRepo, activityRepo)
	output, err := cmd.Execute(ctx, command.SubmitChgrpInput{
		ActorID:       actor.ID,
		DatasetID:     dataset.ID,
		TargetGroupID: uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, apperror.IsForbidden(err))
}

func TestSubmitChgrpCommand_Execute_SameGroup_ReturnsInvalidRequest(t *testing.T) {
	ctx := context.Background()
	owner := newUser(t, false)
	groupID := uuid.New()
	dataset := entity.NewDataset("d1", owner.ID, groupID)

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)
	activityRepo := mocks.NewMockActivityRepository(t)

	userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)

	cmd := newSubmitCommand(t, userRepo, datasetRepo, groupRepo, activityRepo)
	output, err := cmd.Execute(ctx, command.SubmitChgrpInput{
		ActorID:       owner.ID,
		DatasetID:     dataset.ID,
		TargetGroupID: groupID,
	})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestSubmitChgrpCommand_Execute_UnknownGroup_ReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	owner := newUser(t, false)
	dataset := entity.NewDataset("d1", owner.ID, uuid.New())
	targetGroupID := uuid.New()

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)
	activityRepo := mocks.NewMockActivityRepository(t)

	userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)
	groupRepo.On("ExistsByID", ctx, targetGroupID).Return(false, nil)

	cmd := newSubmitCommand(t, userRepo, datasetRepo, groupRepo, activityRepo)
	output, err := cmd.Execute(ctx, command.SubmitChgrpInput{
		ActorID:       owner.ID,
		DatasetID:     dataset.ID,
		TargetGroupID: targetGroupID,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, apperror.IsNotFound(err))
}
