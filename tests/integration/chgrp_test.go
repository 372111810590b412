package integration

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/tests/testutil"
)

// ChgrpTestSuite covers moving a dataset between permission groups:
// candidate listing, asynchronous queue processing, and ownership of
// the moved data when an administrator acts on another user's behalf.
type ChgrpTestSuite struct {
	suite.Suite
	server *testutil.TestServer
}

func (s *ChgrpTestSuite) SetupSuite() {
	s.server = testutil.NewTestServer(s.T())
}

func (s *ChgrpTestSuite) SetupTest() {
	s.server.Cleanup(s.T())
}

func TestChgrpSuite(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
	}
	suite.Run(t, new(ChgrpTestSuite))
}

// chgrpFixture seeds a user who belongs to two groups with a dataset in
// the first one, the minimum setup for a group move.
type chgrpFixture struct {
	Owner   *entity.User
	GroupA  *entity.Group
	GroupB  *entity.Group
	Dataset *entity.Dataset
}

func (s *ChgrpTestSuite) seedChgrpFixture() *chgrpFixture {
	t := s.T()

	owner := s.server.CreateUser(t, "owner", "Password123")
	groupA := s.server.CreateGroup(t, "private-lab", "rw----", owner.ID)
	groupB := s.server.CreateGroup(t, "read-only-lab", "rwr---", owner.ID)
	s.server.AddMember(t, groupA.ID, owner.ID)
	s.server.AddMember(t, groupB.ID, owner.ID)
	dataset := s.server.CreateDataset(t, "plate-scans", owner.ID, groupA.ID)

	return &chgrpFixture{Owner: owner, GroupA: groupA, GroupB: groupB, Dataset: dataset}
}

// =============================================================================
// Target Group Candidates
// =============================================================================

func (s *ChgrpTestSuite) TestTargetGroups_ExcludesCurrentGroup() {
	fx := s.seedChgrpFixture()
	session := s.server.Login(s.T(), "owner", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/chgrp/groups?Dataset=" + fx.Dataset.ID.String(),
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusOK)

	groups := resp.GetJSONList("groups")
	s.Require().Len(groups, 1, "only the other group should be a candidate")

	candidate := groups[0].(map[string]interface{})
	s.Equal(fx.GroupB.ID.String(), candidate["id"])
	s.Equal("read-only-lab", candidate["name"])
	s.Equal("rwr---", candidate["perms"])
}

func (s *ChgrpTestSuite) TestTargetGroups_AdminSeesDataOwnersGroups() {
	fx := s.seedChgrpFixture()

	// The admin is not a member of either group; candidates still come
	// from the data owner's memberships
	s.server.CreateAdminUser(s.T(), "root", "Password123")
	session := s.server.Login(s.T(), "root", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/chgrp/groups?Dataset=" + fx.Dataset.ID.String(),
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusOK)

	groups := resp.GetJSONList("groups")
	s.Require().Len(groups, 1)
	s.Equal(fx.GroupB.ID.String(), groups[0].(map[string]interface{})["id"])
}

func (s *ChgrpTestSuite) TestTargetGroups_OtherUserForbidden() {
	fx := s.seedChgrpFixture()

	s.server.CreateUser(s.T(), "stranger", "Password123")
	session := s.server.Login(s.T(), "stranger", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/chgrp/groups?Dataset=" + fx.Dataset.ID.String(),
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusForbidden).
		AssertJSONError("FORBIDDEN", "")
}

// =============================================================================
// Submit and Process
// =============================================================================

func (s *ChgrpTestSuite) TestChgrp_MovesDatasetAndCreatesProject() {
	fx := s.seedChgrpFixture()
	session := s.server.Login(s.T(), "owner", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		FormBody: session.WithCSRF(url.Values{
			"Dataset":            {fx.Dataset.ID.String()},
			"group_id":           {fx.GroupB.ID.String()},
			"new_container_name": {"Farewell"},
			"new_container_type": {"project"},
		}),
	})

	resp.AssertStatus(http.StatusOK).AssertBody("OK")

	// Poll until the background worker has drained the queue
	payload := s.server.WaitForActivities(s.T(), session)

	jobs := payload["jobs"].([]interface{})
	s.Require().Len(jobs, 1)

	job := jobs[0].(map[string]interface{})
	s.Equal("Change group", job["job_name"])
	s.Equal("finished", job["status"])
	s.Equal(fx.Dataset.ID.String(), job["dataset_id"])
	s.Equal(fx.GroupB.ID.String(), job["to_group_id"])
	s.Empty(job["error"])

	// The dataset now lives in the target group under the new project
	ctx := context.Background()
	moved, err := s.server.Container.DatasetRepo.FindByID(ctx, fx.Dataset.ID)
	s.Require().NoError(err)
	s.Equal(fx.GroupB.ID, moved.GroupID)
	s.Require().NotNil(moved.ProjectID)

	project, err := s.server.Container.ProjectRepo.FindByID(ctx, *moved.ProjectID)
	s.Require().NoError(err)
	s.Equal("Farewell", project.Name)
	s.Equal(fx.GroupB.ID, project.GroupID)
	s.Equal(fx.Owner.ID, project.OwnerID)
}

func (s *ChgrpTestSuite) TestChgrp_WithoutNewContainer() {
	fx := s.seedChgrpFixture()
	session := s.server.Login(s.T(), "owner", "Password123")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		FormBody: session.WithCSRF(url.Values{
			"Dataset":  {fx.Dataset.ID.String()},
			"group_id": {fx.GroupB.ID.String()},
		}),
	}).AssertStatus(http.StatusOK).AssertBody("OK")

	s.server.WaitForActivities(s.T(), session)

	moved, err := s.server.Container.DatasetRepo.FindByID(context.Background(), fx.Dataset.ID)
	s.Require().NoError(err)
	s.Equal(fx.GroupB.ID, moved.GroupID)
	s.Nil(moved.ProjectID, "no container requested, dataset stays orphaned")
}

func (s *ChgrpTestSuite) TestChgrp_ByAdmin_OwnershipStaysWithDataOwner() {
	fx := s.seedChgrpFixture()

	s.server.CreateAdminUser(s.T(), "root", "Password123")
	session := s.server.Login(s.T(), "root", "Password123")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		FormBody: session.WithCSRF(url.Values{
			"Dataset":            {fx.Dataset.ID.String()},
			"group_id":           {fx.GroupB.ID.String()},
			"new_container_name": {"Transferred"},
			"new_container_type": {"project"},
		}),
	}).AssertStatus(http.StatusOK).AssertBody("OK")

	// The admin submitted the job, so the admin polls its progress
	payload := s.server.WaitForActivities(s.T(), session)
	jobs := payload["jobs"].([]interface{})
	s.Require().Len(jobs, 1)
	s.Equal("finished", jobs[0].(map[string]interface{})["status"])

	// Moved data and the created project belong to the data owner,
	// not to the administrator who performed the move
	ctx := context.Background()
	moved, err := s.server.Container.DatasetRepo.FindByID(ctx, fx.Dataset.ID)
	s.Require().NoError(err)
	s.Equal(fx.GroupB.ID, moved.GroupID)
	s.Equal(fx.Owner.ID, moved.OwnerID)
	s.Require().NotNil(moved.ProjectID)

	project, err := s.server.Container.ProjectRepo.FindByID(ctx, *moved.ProjectID)
	s.Require().NoError(err)
	s.Equal(fx.Owner.ID, project.OwnerID, "project must be owned by the data owner")
}

func (s *ChgrpTestSuite) TestChgrp_DetachesFromSourceProject() {
	fx := s.seedChgrpFixture()
	session := s.server.Login(s.T(), "owner", "Password123")

	// Link the dataset under a project in the source group first
	sourceProject := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/projects",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":     "source-project",
			"group_id": fx.GroupA.ID.String(),
		},
	})
	sourceProject.AssertStatus(http.StatusCreated)

	dataset := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/datasets",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":       "linked-scans",
			"group_id":   fx.GroupA.ID.String(),
			"project_id": sourceProject.GetJSONData()["id"].(string),
		},
	})
	dataset.AssertStatus(http.StatusCreated)
	datasetID := dataset.GetJSONData()["id"].(string)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		FormBody: session.WithCSRF(url.Values{
			"Dataset":  {datasetID},
			"group_id": {fx.GroupB.ID.String()},
		}),
	}).AssertStatus(http.StatusOK).AssertBody("OK")

	s.server.WaitForActivities(s.T(), session)

	// The parent project stays behind in the source group
	moved, err := s.server.Container.DatasetRepo.FindByID(context.Background(), fx.Dataset.ID)
	s.Require().NoError(err)
	s.Equal(fx.GroupA.ID, moved.GroupID, "unrelated dataset must not move")

	linked, err := s.server.Container.DatasetRepo.FindByID(context.Background(), uuidFromString(s.T(), datasetID))
	s.Require().NoError(err)
	s.Equal(fx.GroupB.ID, linked.GroupID)
	s.Nil(linked.ProjectID, "link to the source group's project must be removed")
}

// =============================================================================
// Submit Validation
// =============================================================================

func (s *ChgrpTestSuite) TestChgrp_SameGroupRejected() {
	fx := s.seedChgrpFixture()
	session := s.server.Login(s.T(), "owner", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		FormBody: session.WithCSRF(url.Values{
			"Dataset":  {fx.Dataset.ID.String()},
			"group_id": {fx.GroupA.ID.String()},
		}),
	})

	resp.AssertStatus(http.StatusBadRequest).
		AssertJSONError("INVALID_REQUEST", "dataset already belongs to the target group")
}

func (s *ChgrpTestSuite) TestChgrp_UnknownTargetGroup() {
	fx := s.seedChgrpFixture()
	session := s.server.Login(s.T(), "owner", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		FormBody: session.WithCSRF(url.Values{
			"Dataset":  {fx.Dataset.ID.String()},
			"group_id": {"11111111-1111-1111-1111-111111111111"},
		}),
	})

	resp.AssertStatus(http.StatusNotFound).
		AssertJSONError("NOT_FOUND", "")
}

func (s *ChgrpTestSuite) TestChgrp_NonOwnerForbidden() {
	fx := s.seedChgrpFixture()

	stranger := s.server.CreateUser(s.T(), "stranger", "Password123")
	s.server.AddMember(s.T(), fx.GroupB.ID, stranger.ID)
	session := s.server.Login(s.T(), "stranger", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		FormBody: session.WithCSRF(url.Values{
			"Dataset":  {fx.Dataset.ID.String()},
			"group_id": {fx.GroupB.ID.String()},
		}),
	})

	resp.AssertStatus(http.StatusForbidden)
}

func (s *ChgrpTestSuite) TestChgrp_OwnerNotMemberOfTarget_FailsAsync() {
	owner := s.server.CreateUser(s.T(), "owner", "Password123")
	groupA := s.server.CreateGroup(s.T(), "private-lab", "rw----", owner.ID)
	s.server.AddMember(s.T(), groupA.ID, owner.ID)
	dataset := s.server.CreateDataset(s.T(), "plate-scans", owner.ID, groupA.ID)

	// Target group exists but the owner is not a member of it
	other := s.server.CreateUser(s.T(), "other", "Password123")
	groupC := s.server.CreateGroup(s.T(), "foreign-lab", "rwrw--", other.ID)
	s.server.AddMember(s.T(), groupC.ID, other.ID)

	session := s.server.Login(s.T(), "owner", "Password123")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		FormBody: session.WithCSRF(url.Values{
			"Dataset":  {dataset.ID.String()},
			"group_id": {groupC.ID.String()},
		}),
	}).AssertStatus(http.StatusOK).AssertBody("OK")

	payload := s.server.WaitForActivities(s.T(), session)
	jobs := payload["jobs"].([]interface{})
	s.Require().Len(jobs, 1)

	job := jobs[0].(map[string]interface{})
	s.Equal("failed", job["status"])
	s.NotEmpty(job["error"])

	// Dataset did not move
	unmoved, err := s.server.Container.DatasetRepo.FindByID(context.Background(), dataset.ID)
	s.Require().NoError(err)
	s.Equal(groupA.ID, unmoved.GroupID)
}
