package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewDataset_HasNoParent(t *testing.T) {
	d := NewDataset("d1", uuid.New(), uuid.New())

	if d.HasParent() {
		t.Error("new dataset should not have a parent project")
	}
}

func TestDataset_MoveToGroup_ChangesGroupAndDetachesParent(t *testing.T) {
	owner := uuid.New()
	group1 := uuid.New()
	group2 := uuid.New()

	d := NewDataset("d1", owner, group1)
	d.AttachToProject(uuid.New())

	d.MoveToGroup(group2)

	if !d.IsInGroup(group2) {
		t.Errorf("dataset should be in group %s, got %s", group2, d.GroupID)
	}
	if d.HasParent() {
		t.Error("moving to another group should detach the parent project")
	}
	if !d.IsOwnedBy(owner) {
		t.Error("moving groups should not change ownership")
	}
}

func TestDataset_AttachToProject(t *testing.T) {
	d := NewDataset("d1", uuid.New(), uuid.New())
	projectID := uuid.New()

	d.AttachToProject(projectID)

	if !d.HasParent() {
		t.Fatal("dataset should have a parent project")
	}
	if *d.ProjectID != projectID {
		t.Errorf("got project %s, want %s", *d.ProjectID, projectID)
	}
}
