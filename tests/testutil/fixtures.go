package testutil

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/internal/interface/middleware"
)

// CreateUser creates an active user directly through the repository
func (ts *TestServer) CreateUser(t *testing.T, username, password string) *entity.User {
	t.Helper()
	return ts.createUser(t, username, password, false)
}

// CreateAdminUser creates an admin user directly through the repository
func (ts *TestServer) CreateAdminUser(t *testing.T, username, password string) *entity.User {
	t.Helper()
	return ts.createUser(t, username, password, true)
}

func (ts *TestServer) createUser(t *testing.T, username, password string, admin bool) *entity.User {
	t.Helper()
	ctx := context.Background()

	email, err := valueobject.NewEmail(username + "@example.com")
	require.NoError(t, err)

	pw, err := valueobject.NewPassword(password)
	require.NoError(t, err)

	user := entity.NewUser(username, email, username, pw.Hash())
	user.Admin = admin

	require.NoError(t, ts.Container.UserRepo.Create(ctx, user))
	return user
}

// CreateGroup creates a permission group owned by the given user
func (ts *TestServer) CreateGroup(t *testing.T, name, perms string, ownerID uuid.UUID) *entity.Group {
	t.Helper()
	ctx := context.Background()

	groupName, err := valueobject.NewGroupName(name)
	require.NoError(t, err)

	permLevel, err := valueobject.NewPermissionLevel(perms)
	require.NoError(t, err)

	group := entity.NewGroup(groupName, permLevel, ownerID)
	require.NoError(t, ts.Container.GroupRepo.Create(ctx, group))
	return group
}

// AddMember adds a user to a group as a regular member
func (ts *TestServer) AddMember(t *testing.T, groupID, userID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	membership := entity.NewMembership(groupID, userID, valueobject.GroupRoleMember)
	require.NoError(t, ts.Container.MembershipRepo.Create(ctx, membership))
}

// CreateDataset creates a dataset owned by the given user in the given group
func (ts *TestServer) CreateDataset(t *testing.T, name string, ownerID, groupID uuid.UUID) *entity.Dataset {
	t.Helper()
	ctx := context.Background()

	dataset := entity.NewDataset(name, ownerID, groupID)
	require.NoError(t, ts.Container.DatasetRepo.Create(ctx, dataset))
	return dataset
}

// LoginSession holds the cookies issued by a successful login
type LoginSession struct {
	SessionCookie *http.Cookie
	CSRFCookie    *http.Cookie
}

// Cookies returns the cookies to attach to authenticated requests
func (s *LoginSession) Cookies() []*http.Cookie {
	return []*http.Cookie{s.SessionCookie, s.CSRFCookie}
}

// CSRFToken returns the token to echo back in a header or form field
func (s *LoginSession) CSRFToken() string {
	return s.CSRFCookie.Value
}

// CSRFHeader returns the CSRF double-submit header for JSON requests
func (s *LoginSession) CSRFHeader() map[string]string {
	return map[string]string{middleware.CSRFHeaderName: s.CSRFToken()}
}

// WithCSRF adds the CSRF token form field, as the browser form does
func (s *LoginSession) WithCSRF(form url.Values) url.Values {
	form.Set(middleware.CSRFFormField, s.CSRFToken())
	return form
}

// WaitForActivities polls the activities endpoint every 500ms until no
// job is in progress, the way the web client polls after submitting a
// group move. Fails the test if jobs are still running after 30 seconds.
func (ts *TestServer) WaitForActivities(t *testing.T, session *LoginSession) map[string]interface{} {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)
	for {
		resp := DoRequest(t, ts.Echo, HTTPRequest{
			Method:  http.MethodGet,
			Path:    "/api/v1/activities",
			Cookies: session.Cookies(),
		})
		require.Equal(t, http.StatusOK, resp.Code, "activities poll failed, body: %s", resp.Body.String())

		payload := resp.GetJSON()
		if inProgress, ok := payload["inprogress"].(float64); ok && inProgress == 0 {
			return payload
		}

		if time.Now().After(deadline) {
			t.Fatalf("activities still in progress after 30s: %v", payload)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

// FetchLoginCSRF requests the login page and returns the CSRF cookie it
// issues. The login POST must echo this token back (cookie + form field).
func (ts *TestServer) FetchLoginCSRF(t *testing.T) *http.Cookie {
	t.Helper()

	resp := DoRequest(t, ts.Echo, HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/v1/auth/login",
	})
	require.Equal(t, http.StatusOK, resp.Code, "login page failed, body: %s", resp.Body.String())

	csrf := resp.GetCookie(middleware.CSRFCookieName)
	require.NotNil(t, csrf, "login page did not set CSRF cookie")
	return csrf
}

// Login performs a form login and returns the issued session.
// It first fetches the login page for a CSRF cookie, then posts the
// credentials together with the token, the way the browser form does.
func (ts *TestServer) Login(t *testing.T, username, password string) *LoginSession {
	t.Helper()

	csrf := ts.FetchLoginCSRF(t)

	resp := DoRequest(t, ts.Echo, HTTPRequest{
		Method:  http.MethodPost,
		Path:    "/api/v1/auth/login",
		Cookies: []*http.Cookie{csrf},
		FormBody: url.Values{
			"username":                {username},
			"password":                {password},
			middleware.CSRFFormField: {csrf.Value},
		},
	})
	require.Equal(t, http.StatusFound, resp.Code, "login failed, body: %s", resp.Body.String())

	session := resp.GetCookie(middleware.SessionCookieName)
	require.NotNil(t, session, "login did not set session cookie")
	csrf = resp.GetCookie(middleware.CSRFCookieName)
	require.NotNil(t, csrf, "login did not set CSRF cookie")

	return &LoginSession{SessionCookie: session, CSRFCookie: csrf}
}
