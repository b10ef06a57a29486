package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"campustime.com/campustime/timesheet"
)

// Mode selects which portal the login form targets. The two modes are
// mutually exclusive tabs; switching swaps the displayed copy, the role sent
// to the backend, and the dashboard reached after login.
type Mode string

const (
	ModeFaculty Mode = "faculty"
	ModeAdmin   Mode = "admin"
)

// RolePlaceholder is the unset role value; it must never reach the backend.
const RolePlaceholder = "Select"

type Portal struct {
	Title        string
	Tagline      string
	WelcomeText  string
	RedirectPath string
	Role         string
}

var portals = map[Mode]Portal{
	ModeFaculty: {
		Title:        "Faculty Portal",
		Tagline:      "Effortlessly create, manage, and optimize your class Timesheet",
		WelcomeText:  "Welcome back! Please log in to manage your class timesheet.",
		RedirectPath: "/faculty/dashboard",
		Role:         "Faculty",
	},
	ModeAdmin: {
		Title:        "Admin Portal",
		Tagline:      "Comprehensive control over institutional scheduling and management",
		WelcomeText:  "Welcome back! Access your administrative dashboard.",
		RedirectPath: "/admin/dashboard",
		Role:         "Finance",
	},
}

// Selector is the tabbed login form state.
type Selector struct {
	mode Mode
}

func NewSelector() *Selector {
	return &Selector{mode: ModeFaculty}
}

// SelectTab switches modes by tab index: 0 is faculty, anything else admin.
func (s *Selector) SelectTab(index int) {
	if index == 0 {
		s.mode = ModeFaculty
	} else {
		s.mode = ModeAdmin
	}
}

func (s *Selector) Mode() Mode     { return s.mode }
func (s *Selector) Portal() Portal { return portals[s.mode] }

var (
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrRoleRequired        = errors.New("please select a role before logging in")
)

// BuildLoginRequest validates the credentials and produces the form-encoded
// login body for the current mode.
func (s *Selector) BuildLoginRequest(username, password string) (url.Values, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	role := s.Portal().Role
	if role == "" || role == RolePlaceholder {
		return nil, ErrRoleRequired
	}
	return url.Values{
		"username": {username},
		"password": {password},
		"roles":    {role},
	}, nil
}

type loginResponse struct {
	RedirectURL string `json:"redirect_url"`
	Error       string `json:"error"`
}

// Client performs logins against the portal backend.
type Client struct {
	transport *timesheet.Transport
}

func NewClient(baseURL string) *Client {
	return &Client{transport: timesheet.NewTransport(baseURL, "")}
}

// Login authenticates and returns the redirect target for the selected
// portal. A backend rejection comes back as an error with the server's
// message; the caller shows it inline and stays on the page.
func (c *Client) Login(ctx context.Context, sel *Selector, username, password string) (string, error) {
	form, err := sel.BuildLoginRequest(username, password)
	if err != nil {
		return "", err
	}

	resp, err := c.transport.PostForm(ctx, "/login", form)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}

	var body loginResponse
	if err := json.Unmarshal(resp.Data, &body); err != nil {
		return "", fmt.Errorf("unexpected login response: %w", err)
	}
	if body.Error != "" {
		return "", errors.New(body.Error)
	}
	if body.RedirectURL != "" {
		return body.RedirectURL, nil
	}
	return sel.Portal().RedirectPath, nil
}
