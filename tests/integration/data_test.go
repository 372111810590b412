package integration

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/shotahirama/labshare/tests/testutil"
)

// DataTestSuite is the test suite for project and dataset endpoints
type DataTestSuite struct {
	suite.Suite
	server *testutil.TestServer
}

func (s *DataTestSuite) SetupSuite() {
	s.server = testutil.NewTestServer(s.T())
}

func (s *DataTestSuite) SetupTest() {
	s.server.Cleanup(s.T())
}

func TestDataSuite(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
	}
	suite.Run(t, new(DataTestSuite))
}

// =============================================================================
// Project Tests
// =============================================================================

func (s *DataTestSuite) TestCreateProject_Success() {
	user := s.server.CreateUser(s.T(), "alice", "Password123")
	group := s.server.CreateGroup(s.T(), "lab-a", "rw----", user.ID)
	s.server.AddMember(s.T(), group.ID, user.ID)
	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/projects",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":     "imaging-2026",
			"group_id": group.ID.String(),
		},
	})

	resp.AssertStatus(http.StatusCreated).
		AssertJSONPathExists("data.id").
		AssertJSONPath("data.name", "imaging-2026").
		AssertJSONPath("data.owner_id", user.ID.String()).
		AssertJSONPath("data.group_id", group.ID.String())
}

func (s *DataTestSuite) TestCreateProject_NotAMember() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	other := s.server.CreateUser(s.T(), "bob", "Password123")
	group := s.server.CreateGroup(s.T(), "lab-b", "rw----", other.ID)
	s.server.AddMember(s.T(), group.ID, other.ID)

	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/projects",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":     "imaging-2026",
			"group_id": group.ID.String(),
		},
	})

	resp.AssertStatus(http.StatusForbidden).
		AssertJSONError("FORBIDDEN", "not a member of the group")
}

func (s *DataTestSuite) TestCreateProject_InvalidName() {
	user := s.server.CreateUser(s.T(), "alice", "Password123")
	group := s.server.CreateGroup(s.T(), "lab-a", "rw----", user.ID)
	s.server.AddMember(s.T(), group.ID, user.ID)
	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/projects",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":     "bad/name",
			"group_id": group.ID.String(),
		},
	})

	resp.AssertStatus(http.StatusBadRequest).
		AssertJSONError("VALIDATION_ERROR", "")
}

func (s *DataTestSuite) TestGetProject_WithDatasets() {
	user := s.server.CreateUser(s.T(), "alice", "Password123")
	group := s.server.CreateGroup(s.T(), "lab-a", "rw----", user.ID)
	s.server.AddMember(s.T(), group.ID, user.ID)
	session := s.server.Login(s.T(), "alice", "Password123")

	created := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/projects",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":     "imaging-2026",
			"group_id": group.ID.String(),
		},
	})
	created.AssertStatus(http.StatusCreated)
	projectID := created.GetJSONData()["id"].(string)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/datasets",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":       "scans",
			"group_id":   group.ID.String(),
			"project_id": projectID,
		},
	}).AssertStatus(http.StatusCreated)

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/projects/" + projectID,
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusOK).
		AssertJSONPath("data.project.name", "imaging-2026").
		AssertJSONPath("data.group.name", "lab-a").
		AssertJSONPath("data.owner.username", "alice")

	datasets := resp.GetJSONData()["datasets"].([]interface{})
	s.Require().Len(datasets, 1)
	s.Equal("scans", datasets[0].(map[string]interface{})["name"])
}

// =============================================================================
// Dataset Tests
// =============================================================================

func (s *DataTestSuite) TestCreateDataset_ProjectInDifferentGroup() {
	user := s.server.CreateUser(s.T(), "alice", "Password123")
	groupA := s.server.CreateGroup(s.T(), "lab-a", "rw----", user.ID)
	groupB := s.server.CreateGroup(s.T(), "lab-b", "rwr---", user.ID)
	s.server.AddMember(s.T(), groupA.ID, user.ID)
	s.server.AddMember(s.T(), groupB.ID, user.ID)
	session := s.server.Login(s.T(), "alice", "Password123")

	created := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/projects",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":     "imaging-2026",
			"group_id": groupA.ID.String(),
		},
	})
	created.AssertStatus(http.StatusCreated)

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/datasets",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
		Body: map[string]string{
			"name":       "scans",
			"group_id":   groupB.ID.String(),
			"project_id": created.GetJSONData()["id"].(string),
		},
	})

	resp.AssertStatus(http.StatusBadRequest).
		AssertJSONError("INVALID_REQUEST", "project belongs to a different group")
}

func (s *DataTestSuite) TestGetDataset_Detail() {
	user := s.server.CreateUser(s.T(), "alice", "Password123")
	group := s.server.CreateGroup(s.T(), "lab-a", "rwra--", user.ID)
	s.server.AddMember(s.T(), group.ID, user.ID)
	dataset := s.server.CreateDataset(s.T(), "scans", user.ID, group.ID)

	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/datasets/" + dataset.ID.String(),
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusOK).
		AssertJSONPath("data.dataset.name", "scans").
		AssertJSONPath("data.dataset.owner_id", user.ID.String()).
		AssertJSONPath("data.group.permissions", "rwra--")
}

func (s *DataTestSuite) TestGetDataset_NotFound() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/datasets/11111111-1111-1111-1111-111111111111",
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusNotFound).
		AssertJSONError("NOT_FOUND", "")
}
