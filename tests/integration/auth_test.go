package integration

import (
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/shotahirama/labshare/tests/testutil"
)

// AuthTestSuite is the test suite for auth-related endpoints
type AuthTestSuite struct {
	suite.Suite
	server *testutil.TestServer
}

// SetupSuite runs once before all tests
func (s *AuthTestSuite) SetupSuite() {
	s.server = testutil.NewTestServer(s.T())
}

// SetupTest runs before each test
func (s *AuthTestSuite) SetupTest() {
	s.server.Cleanup(s.T())
}

func TestAuthSuite(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
	}
	suite.Run(t, new(AuthTestSuite))
}

// =============================================================================
// Login Tests
// =============================================================================

func (s *AuthTestSuite) TestLoginPage_IssuesCSRFCookie() {
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/v1/auth/login",
	})

	resp.AssertStatus(http.StatusOK).
		AssertJSONPathExists("data.csrf_token")

	csrf := resp.GetCookie("csrf_token")
	s.Require().NotNil(csrf, "login page must issue the CSRF cookie")
	s.NotEmpty(csrf.Value)
}

func (s *AuthTestSuite) TestLogin_Success() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	csrf := s.server.FetchLoginCSRF(s.T())

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/auth/login",
		Cookies: []*http.Cookie{csrf},
		FormBody: url.Values{
			"username":   {"alice"},
			"password":   {"Password123"},
			"csrf_token": {csrf.Value},
		},
	})

	resp.AssertRedirect("/webclient/")

	session := resp.GetCookie("session_id")
	s.Require().NotNil(session, "session cookie not set")
	s.NotEmpty(session.Value)
	s.True(session.HttpOnly, "session cookie must be HttpOnly")

	csrf = resp.GetCookie("csrf_token")
	s.Require().NotNil(csrf, "CSRF cookie not set")
	s.NotEmpty(csrf.Value)
	s.False(csrf.HttpOnly, "CSRF cookie must be readable by the client")
}

func (s *AuthTestSuite) TestLogin_WrongPassword() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	csrf := s.server.FetchLoginCSRF(s.T())

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/auth/login",
		Cookies: []*http.Cookie{csrf},
		FormBody: url.Values{
			"username":   {"alice"},
			"password":   {"WrongPassword1"},
			"csrf_token": {csrf.Value},
		},
	})

	resp.AssertStatus(http.StatusUnauthorized).
		AssertJSONError("UNAUTHORIZED", "invalid credentials")
}

func (s *AuthTestSuite) TestLogin_UnknownUser() {
	csrf := s.server.FetchLoginCSRF(s.T())

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/auth/login",
		Cookies: []*http.Cookie{csrf},
		FormBody: url.Values{
			"username":   {"nobody"},
			"password":   {"Password123"},
			"csrf_token": {csrf.Value},
		},
	})

	resp.AssertStatus(http.StatusUnauthorized).
		AssertJSONError("UNAUTHORIZED", "invalid credentials")
}

func (s *AuthTestSuite) TestLogin_MissingPassword() {
	csrf := s.server.FetchLoginCSRF(s.T())

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/auth/login",
		Cookies: []*http.Cookie{csrf},
		FormBody: url.Values{
			"username":   {"alice"},
			"csrf_token": {csrf.Value},
		},
	})

	resp.AssertStatus(http.StatusBadRequest).
		AssertJSONError("VALIDATION_ERROR", "")
}

func (s *AuthTestSuite) TestLogin_WithoutCSRFToken() {
	// Credentials alone must not get past the CSRF check, even though the
	// request carries no session yet
	s.server.CreateUser(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/login",
		FormBody: url.Values{
			"username": {"alice"},
			"password": {"Password123"},
		},
	})

	resp.AssertStatus(http.StatusForbidden).
		AssertJSONError("FORBIDDEN", "")
	s.Nil(resp.GetCookie("session_id"), "rejected login must not create a session")
}

func (s *AuthTestSuite) TestLogin_MismatchedCSRFToken() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	csrf := s.server.FetchLoginCSRF(s.T())

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/auth/login",
		Cookies: []*http.Cookie{csrf},
		FormBody: url.Values{
			"username":   {"alice"},
			"password":   {"Password123"},
			"csrf_token": {"forged-token"},
		},
	})

	resp.AssertStatus(http.StatusForbidden)
	s.Nil(resp.GetCookie("session_id"), "rejected login must not create a session")
}

// =============================================================================
// Session Tests
// =============================================================================

func (s *AuthTestSuite) TestMe_WithSession() {
	user := s.server.CreateUser(s.T(), "alice", "Password123")
	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/me",
		Cookies: session.Cookies(),
	})

	resp.AssertStatus(http.StatusOK).
		AssertJSONPath("data.id", user.ID.String()).
		AssertJSONPath("data.username", "alice")
}

func (s *AuthTestSuite) TestMe_WithoutSession() {
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/v1/me",
	})

	resp.AssertStatus(http.StatusUnauthorized).
		AssertJSONError("UNAUTHORIZED", "")
}

func (s *AuthTestSuite) TestMe_InvalidSession() {
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/v1/me",
		Cookies: []*http.Cookie{
			{Name: "session_id", Value: "not-a-real-session"},
		},
	})

	resp.AssertStatus(http.StatusUnauthorized)
}

// =============================================================================
// CSRF Tests
// =============================================================================

func (s *AuthTestSuite) TestCSRF_PostWithoutToken() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	session := s.server.Login(s.T(), "alice", "Password123")

	// Session cookie present but no CSRF token submitted
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: []*http.Cookie{session.SessionCookie},
	})

	resp.AssertStatus(http.StatusForbidden).
		AssertJSONError("FORBIDDEN", "")
}

func (s *AuthTestSuite) TestCSRF_PostWithMismatchedToken() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/chgrp",
		Cookies: session.Cookies(),
		Headers: map[string]string{"X-CSRF-Token": "forged-token"},
	})

	resp.AssertStatus(http.StatusForbidden)
}

// =============================================================================
// Logout Tests
// =============================================================================

func (s *AuthTestSuite) TestLogout() {
	s.server.CreateUser(s.T(), "alice", "Password123")
	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:   http.MethodPost,
		Path:     "/api/v1/auth/logout",
		Cookies:  session.Cookies(),
		FormBody: session.WithCSRF(url.Values{}),
	})

	resp.AssertRedirect("/")

	cleared := resp.GetCookie("session_id")
	s.Require().NotNil(cleared)
	s.True(cleared.MaxAge < 0, "session cookie should be expired")

	// Session is gone; authenticated endpoints reject the old cookie
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodGet,
		Path:    "/api/v1/me",
		Cookies: session.Cookies(),
	}).AssertStatus(http.StatusUnauthorized)
}

// =============================================================================
// Token Issuance Tests
// =============================================================================

func (s *AuthTestSuite) TestIssueToken_AndAccessDataAPI() {
	user := s.server.CreateUser(s.T(), "alice", "Password123")
	group := s.server.CreateGroup(s.T(), "lab-a", "rw----", user.ID)
	s.server.AddMember(s.T(), group.ID, user.ID)
	dataset := s.server.CreateDataset(s.T(), "scans", user.ID, group.ID)

	session := s.server.Login(s.T(), "alice", "Password123")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/auth/token",
		Cookies: session.Cookies(),
		Headers: session.CSRFHeader(),
	})

	resp.AssertStatus(http.StatusOK).
		AssertJSONPathExists("data.access_token").
		AssertJSONPath("data.token_type", "Bearer")

	accessToken := resp.GetJSONData()["access_token"].(string)

	// Bearer token grants access to the data API without a session
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/data/v1/datasets/" + dataset.ID.String(),
		AccessToken: accessToken,
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("data.dataset.name", "scans")
}

func (s *AuthTestSuite) TestDataAPI_WithoutToken() {
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/data/v1/datasets/00000000-0000-0000-0000-000000000000",
	})

	resp.AssertStatus(http.StatusUnauthorized)
}
