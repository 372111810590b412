package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/shotahirama/labshare/internal/domain/valueobject"
)

func newTestActivity() *Activity {
	return NewChgrpActivity(
		uuid.New(),
		uuid.New(),
		uuid.New(),
		uuid.New(),
		"chgrp-project",
		valueobject.ContainerTypeProject,
	)
}

func TestNewChgrpActivity_StartsQueued(t *testing.T) {
	a := newTestActivity()

	if a.Status != valueobject.ActivityStatusQueued {
		t.Errorf("got status %q, want %q", a.Status, valueobject.ActivityStatusQueued)
	}
	if a.JobName != JobNameChgrp {
		t.Errorf("got job name %q, want %q", a.JobName, JobNameChgrp)
	}
	if !a.InProgress() {
		t.Error("queued activity should count as in progress")
	}
}

func TestActivity_Start_SetsInProgressAndTimestamp(t *testing.T) {
	a := newTestActivity()

	a.Start()

	if a.Status != valueobject.ActivityStatusInProgress {
		t.Errorf("got status %q, want %q", a.Status, valueobject.ActivityStatusInProgress)
	}
	if a.StartedAt == nil {
		t.Error("StartedAt should be set")
	}
	if !a.InProgress() {
		t.Error("started activity should count as in progress")
	}
}

func TestActivity_Finish_SetsTerminalState(t *testing.T) {
	a := newTestActivity()
	a.Start()

	a.Finish()

	if a.Status != valueobject.ActivityStatusFinished {
		t.Errorf("got status %q, want %q", a.Status, valueobject.ActivityStatusFinished)
	}
	if a.FinishedAt == nil {
		t.Error("FinishedAt should be set")
	}
	if a.InProgress() {
		t.Error("finished activity should not count as in progress")
	}
}

func TestActivity_Fail_RecordsError(t *testing.T) {
	a := newTestActivity()
	a.Start()

	a.Fail(errors.New("owner is not a member of the target group"))

	if a.Status != valueobject.ActivityStatusFailed {
		t.Errorf("got status %q, want %q", a.Status, valueobject.ActivityStatusFailed)
	}
	if a.Error != "owner is not a member of the target group" {
		t.Errorf("unexpected error text: %q", a.Error)
	}
	if a.InProgress() {
		t.Error("failed activity should not count as in progress")
	}
}

func TestActivity_WantsNewContainer(t *testing.T) {
	a := newTestActivity()
	if !a.WantsNewContainer() {
		t.Error("activity with container name should want a new container")
	}

	a.NewContainerName = ""
	if a.WantsNewContainer() {
		t.Error("activity without container name should not want a new container")
	}
}
