package query_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/service"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/internal/usecase/chgrp/query"
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

func newGroup(t *testing.T, name string, ownerID uuid.UUID) *entity.Group {
	t.Helper()
	gn, err := valueobject.NewGroupName(name)
	require.NoError(t, err)
	return entity.NewGroup(gn, valueobject.PermissionReadWrite, ownerID)
}

func TestTargetGroupsQuery_Execute_Owner_ExcludesCurrentGroup(t *testing.T) {
	ctx := context.Background()
	owner := newUser(t, false)
	current := newGroup(t, "current", owner.ID)
	other := newGroup(t, "other", owner.ID)
	dataset := entity.NewDataset("d1", owner.ID, current.ID)

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)

	userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)
	groupRepo.On("FindByMemberID", ctx, owner.ID).Return([]*entity.Group{current, other}, nil)

	q := query.NewTargetGroupsQuery(userRepo, datasetRepo, groupRepo, service.NewChgrpService())
	output, err := q.Execute(ctx, query.TargetGroupsInput{ActorID: owner.ID, DatasetID: dataset.ID})

	require.NoError(t, err)
	require.Len(t, output.Groups, 1)
	assert.Equal(t, other.ID, output.Groups[0].ID)
}

func TestTargetGroupsQuery_Execute_Admin_UsesOwnerGroups(t *testing.T) {
	ctx := context.Background()
	admin := newUser(t, true)
	ownerID := uuid.New()
	current := newGroup(t, "current", ownerID)
	other := newGroup(t, "other", ownerID)
	dataset := entity.NewDataset("d1", ownerID, current.ID)

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)

	userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)
	// 候補は管理者自身ではなくデータ所有者の所属グループから決まる
	groupRepo.On("FindByMemberID", ctx, ownerID).Return([]*entity.Group{current, other}, nil)

	q := query.NewTargetGroupsQuery(userRepo, datasetRepo, groupRepo, service.NewChgrpService())
	output, err := q.Execute(ctx, query.TargetGroupsInput{ActorID: admin.ID, DatasetID: dataset.ID})

	require.NoError(t, err)
	require.Len(t, output.Groups, 1)
	assert.Equal(t, other.ID, output.Groups[0].ID)
}

func TestTargetGroupsQuery_Execute_OtherUser_ReturnsForbidden(t *testing.T) {
	ctx := context.Background()
	actor := newUser(t, false)
	dataset := entity.NewDataset("d1", uuid.New(), uuid.New())

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)

	userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)

	q := query.NewTargetGroupsQuery(userRepo, datasetRepo, groupRepo, service.NewChgrpService())
	output, err := q.Execute(ctx, query.TargetGroupsInput{ActorID: actor.ID, DatasetID: dataset.ID})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, apperror.IsForbidden(err))
}

func TestTargetGroupsQuery_Execute_SingleGroupOwner_ReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	owner := newUser(t, false)
	current := newGroup(t, "current", owner.ID)
	dataset := entity.NewDataset("d1", owner.ID, current.ID)

	userRepo := mocks.NewMockUserRepository(t)
	datasetRepo := mocks.NewMockDatasetRepository(t)
	groupRepo := mocks.NewMockGroupRepository(t)

	userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)
	datasetRepo.On("FindByID", ctx, dataset.ID).Return(dataset, nil)
	groupRepo.On("FindByMemberID", ctx, owner.ID).Return([]*entity.Group{current}, nil)

	q := query.NewTargetGroupsQuery(userRepo, datasetRepo, groupRepo, service.NewChgrpService())
	output, err := q.Execute(ctx, query.TargetGroupsInput{ActorID: owner.ID, DatasetID: dataset.ID})

	require.NoError(t, err)
	assert.Empty(t, output.Groups)
}
