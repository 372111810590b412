package integration

import (
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/shotahirama/labshare/tests/testutil"
)

// ActivitiesTestSuite is the test suite for the activities polling endpoint
type ActivitiesTestSuite struct {
	suite.Suite
	server *testutil.TestServer
}

func (s *ActivitiesTestSuite) SetupSuite() {
	s.server = testutil.NewTestServer(s.T())
}

func (s *ActivitiesTestSuite) SetupTest() {
	s.server.Cleanup(s.T())
}

func TestActivitiesSuite(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
	}
	suite.Run(t, new(ActivitiesTestSuite))
}

func (s *ActivitiesTestSuite) TestList_Empty() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/activities",
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusOK).
		AssertJSONPath("inprogress", float64(0))
	s.Empty(resp.GetJSONList("jobs"))
}

func (s *ActivitiesTestSuite) TestList_Unauthenticated() {
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/v1/activities",
	})

	resp.AssertStatus(http.StatusUnauthorized)
}

func (s *ActivitiesTestSuite) TestList_InvalidLimit() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/activities?limit=-1",
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusBadRequest).
		AssertJSONError("INVALID_REQUEST", "invalid limit")
}

func (s *ActivitiesTestSuite) TestList_OnlyOwnSubmissions() {
	owner := s.server.CreateUser(s.T(), "owner", "Password123")
	groupA := s.server.CreateGroup(s.T(), "lab-a", "rw----", owner.ID)
	groupB := s.server.CreateGroup(s.T(), "lab-b", "rwr---", owner.ID)
	s.server.AddMember(s.T(), groupA.ID, owner.ID)
	s.server.AddMember(s.T(), groupB.ID, owner.ID)
	dataset := s.server.CreateDataset(s.T(), "scans", owner.ID, groupA.ID)

	s.server.CreateUser(s.T(), "bystander", "Password123")

	ownerSession := s.server.Login(s.T(), "owner", "Password123")
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: ownerSession.Cookies(),
		FormBody: ownerSession.WithCSRF(url.Values{
			"Dataset":  {dataset.ID.String()},
			"group_id": {groupB.ID.String()},
		}),
	}).AssertStatus(http.StatusOK)

	payload := s.server.WaitForActivities(s.T(), ownerSession)
	s.Len(payload["jobs"].([]interface{}), 1)

	// Another user polling sees nothing of the owner's job
	bystanderSession := s.server.Login(s.T(), "bystander", "Password123")
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/activities",
		Cookies: bystanderSession.Cookies(),
	})

	resp.AssertStatus(http.StatusOK).
		AssertJSONPath("inprogress", float64(0))
	s.Empty(resp.GetJSONList("jobs"))
}

func (s *ActivitiesTestSuite) TestList_LimitCapsResults() {
	owner := s.server.CreateUser(s.T(), "owner", "Password123")
	groupA := s.server.CreateGroup(s.T(), "lab-a", "rw----", owner.ID)
	groupB := s.server.CreateGroup(s.T(), "lab-b", "rwr---", owner.ID)
	s.server.AddMember(s.T(), groupA.ID, owner.ID)
	s.server.AddMember(s.T(), groupB.ID, owner.ID)

	session := s.server.Login(s.T(), "owner", "Password123")

	for _, name := range []string{"scans-1", "scans-2", "scans-3"} {
		dataset := s.server.CreateDataset(s.T(), name, owner.ID, groupA.ID)
		testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
			Method:  http.MethodPost,
			Path:    "/api/v1/chgrp",
			Cookies: session.Cookies(),
			FormBody: session.WithCSRF(url.Values{
				"Dataset":  {dataset.ID.String()},
				"group_id": {groupB.ID.String()},
			}),
		}).AssertStatus(http.StatusOK)
	}

	s.server.WaitForActivities(s.T(), session)

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/activities?limit=2",
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusOK)
	s.Len(resp.GetJSONList("jobs"), 2)
}
