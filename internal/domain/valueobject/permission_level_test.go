package valueobject

import "testing"

func TestNewPermissionLevel_ValidLevels_Succeed(t *testing.T) {
	for _, perms := range []string{"rw----", "rwr---", "rwra--", "rwrw--"} {
		p, err := NewPermissionLevel(perms)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", perms, err)
		}
		if p.String() != perms {
			t.Errorf("got %q, want %q", p.String(), perms)
		}
	}
}

func TestNewPermissionLevel_UnknownString_ReturnsError(t *testing.T) {
	_, err := NewPermissionLevel("rwxrwx")

	if err != ErrInvalidPermissionLevel {
		t.Errorf("expected ErrInvalidPermissionLevel, got: %v", err)
	}
}

func TestNewPermissionLevel_EmptyString_ReturnsError(t *testing.T) {
	_, err := NewPermissionLevel("")

	if err != ErrInvalidPermissionLevel {
		t.Errorf("expected ErrInvalidPermissionLevel, got: %v", err)
	}
}

func TestPermissionLevel_Name(t *testing.T) {
	cases := map[PermissionLevel]string{
		PermissionPrivate:      "private",
		PermissionReadOnly:     "read-only",
		PermissionReadAnnotate: "read-annotate",
		PermissionReadWrite:    "read-write",
	}

	for level, want := range cases {
		if got := level.Name(); got != want {
			t.Errorf("%s: got %q, want %q", level, got, want)
		}
	}
}

func TestPermissionLevel_MembersCanRead_PrivateDenied(t *testing.T) {
	if PermissionPrivate.MembersCanRead() {
		t.Error("private group members should not read each other's data")
	}
	if !PermissionReadOnly.MembersCanRead() {
		t.Error("read-only group members should read each other's data")
	}
}

func TestPermissionLevel_MembersCanAnnotate(t *testing.T) {
	if PermissionReadOnly.MembersCanAnnotate() {
		t.Error("read-only group members should not annotate")
	}
	if !PermissionReadAnnotate.MembersCanAnnotate() {
		t.Error("read-annotate group members should annotate")
	}
	if !PermissionReadWrite.MembersCanAnnotate() {
		t.Error("read-write group members should annotate")
	}
}

func TestPermissionLevel_MembersCanWrite_OnlyReadWrite(t *testing.T) {
	for _, p := range []PermissionLevel{PermissionPrivate, PermissionReadOnly, PermissionReadAnnotate} {
		if p.MembersCanWrite() {
			t.Errorf("%s group members should not write", p)
		}
	}
	if !PermissionReadWrite.MembersCanWrite() {
		t.Error("read-write group members should write")
	}
}
