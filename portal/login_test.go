package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorDefaultsToFaculty(t *testing.T) {
	s := NewSelector()
	assert.Equal(t, ModeFaculty, s.Mode())
	assert.Equal(t, "Faculty Portal", s.Portal().Title)
	assert.Equal(t, "/faculty/dashboard", s.Portal().RedirectPath)
}

func TestSelectTab(t *testing.T) {
	s := NewSelector()

	s.SelectTab(1)
	assert.Equal(t, ModeAdmin, s.Mode())
	assert.Equal(t, "Admin Portal", s.Portal().Title)
	assert.Equal(t, "Finance", s.Portal().Role)
	assert.Equal(t, "/admin/dashboard", s.Portal().RedirectPath)

	s.SelectTab(0)
	assert.Equal(t, ModeFaculty, s.Mode())
	assert.Equal(t, "Faculty", s.Portal().Role)
}

func TestBuildLoginRequest(t *testing.T) {
	s := NewSelector()

	form, err := s.BuildLoginRequest("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", form.Get("username"))
	assert.Equal(t, "secret", form.Get("password"))
	assert.Equal(t, "Faculty", form.Get("roles"))

	s.SelectTab(1)
	form, err = s.BuildLoginRequest("bob", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Finance", form.Get("roles"))
}

func TestBuildLoginRequestValidation(t *testing.T) {
	s := NewSelector()

	_, err := s.BuildLoginRequest("", "secret")
	assert.ErrorIs(t, err, ErrCredentialsRequired)

	_, err = s.BuildLoginRequest("alice", "")
	assert.ErrorIs(t, err, ErrCredentialsRequired)
}

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "Faculty", r.PostForm.Get("roles"))

		_ = json.NewEncoder(w).Encode(map[string]string{"redirect_url": "/faculty/dashboard"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	redirect, err := c.Login(context.Background(), NewSelector(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "/faculty/dashboard", redirect)
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid username or password!"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), NewSelector(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password!", err.Error())
}

func TestLoginFallsBackToPortalRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	s := NewSelector()
	s.SelectTab(1)

	c := NewClient(srv.URL)
	redirect, err := c.Login(context.Background(), s, "finance", "secret")
	require.NoError(t, err)
	assert.Equal(t, "/admin/dashboard", redirect)
}
