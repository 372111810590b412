package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/pkg/apperror"
)

func newTestGroup(name string, ownerID uuid.UUID) *entity.Group {
	gn, err := valueobject.NewGroupName(name)
	if err != nil {
		panic(err)
	}
	return entity.NewGroup(gn, valueobject.PermissionReadWrite, ownerID)
}

func newTestUser(admin bool) *entity.User {
	email, err := valueobject.NewEmail("user@example.com")
	if err != nil {
		panic(err)
	}
	if admin {
		return entity.NewAdminUser("admin", email, "Admin", "hash")
	}
	return entity.NewUser("user", email, "User", "hash")
}

func TestChgrpService_AuthorizeChgrp_Owner_ReturnsNil(t *testing.T) {
	svc := NewChgrpService()
	user := newTestUser(false)
	dataset := entity.NewDataset("d1", user.ID, uuid.New())

	err := svc.AuthorizeChgrp(user, dataset)

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestChgrpService_AuthorizeChgrp_Admin_ReturnsNil(t *testing.T) {
	svc := NewChgrpService()
	admin := newTestUser(true)
	dataset := entity.NewDataset("d1", uuid.New(), uuid.New())

	err := svc.AuthorizeChgrp(admin, dataset)

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestChgrpService_AuthorizeChgrp_OtherUser_ReturnsForbidden(t *testing.T) {
	svc := NewChgrpService()
	user := newTestUser(false)
	dataset := entity.NewDataset("d1", uuid.New(), uuid.New())

	err := svc.AuthorizeChgrp(user, dataset)

	if !apperror.IsForbidden(err) {
		t.Errorf("expected forbidden error, got: %v", err)
	}
}

func TestChgrpService_TargetGroupCandidates_ExcludesCurrentGroup(t *testing.T) {
	svc := NewChgrpService()
	owner := uuid.New()
	current := newTestGroup("current", owner)
	other := newTestGroup("other", owner)
	dataset := entity.NewDataset("d1", owner, current.ID)

	candidates := svc.TargetGroupCandidates(dataset, []*entity.Group{current, other})

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].ID != other.ID {
		t.Errorf("expected group %s, got %s", other.ID, candidates[0].ID)
	}
}

func TestChgrpService_TargetGroupCandidates_SingleGroup_ReturnsEmpty(t *testing.T) {
	svc := NewChgrpService()
	owner := uuid.New()
	current := newTestGroup("current", owner)
	dataset := entity.NewDataset("d1", owner, current.ID)

	candidates := svc.TargetGroupCandidates(dataset, []*entity.Group{current})

	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}

func TestChgrpService_ValidateTarget_SameGroup_ReturnsInvalidRequest(t *testing.T) {
	svc := NewChgrpService()
	groupID := uuid.New()
	dataset := entity.NewDataset("d1", uuid.New(), groupID)

	err := svc.ValidateTarget(dataset, groupID, true)

	if err == nil {
		t.Error("expected error for move to the same group")
	}
}

func TestChgrpService_ValidateTarget_OwnerNotMember_ReturnsForbidden(t *testing.T) {
	svc := NewChgrpService()
	dataset := entity.NewDataset("d1", uuid.New(), uuid.New())

	err := svc.ValidateTarget(dataset, uuid.New(), false)

	if !apperror.IsForbidden(err) {
		t.Errorf("expected forbidden error, got: %v", err)
	}
}

func TestChgrpService_ValidateTarget_Valid_ReturnsNil(t *testing.T) {
	svc := NewChgrpService()
	dataset := entity.NewDataset("d1", uuid.New(), uuid.New())

	err := svc.ValidateTarget(dataset, uuid.New(), true)

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
