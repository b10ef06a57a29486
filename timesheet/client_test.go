package timesheet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testForm(t *testing.T) *Form {
	t.Helper()
	f := NewForm()
	require.NoError(t, f.SetStartDate("2024-03-01"))
	id := f.Rows()[0].ID
	require.NoError(t, f.SetRowDate(id, "2024-03-04"))
	require.NoError(t, f.SetRowCourseCode(id, "ESL"))
	require.NoError(t, f.SetRowHours(id, "3"))
	return f
}

type recordedRequest struct {
	Body map[string]json.RawMessage
}

// submissionServer scripts a sequence of responses and records each request
// body it receives.
func submissionServer(t *testing.T, responses []func(w http.ResponseWriter)) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var mu sync.Mutex
	var requests []recordedRequest
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		assert.Equal(t, "/submit_timesheet", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		requests = append(requests, recordedRequest{Body: body})

		require.Less(t, calls, len(responses), "unexpected extra request")
		responses[calls](w)
		calls++
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func respond(status int, result SubmitResult) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(result)
	}
}

func TestSubmitSuccess(t *testing.T) {
	srv, requests := submissionServer(t, []func(w http.ResponseWriter){
		respond(http.StatusOK, SubmitResult{Status: "success", Message: "Timesheet submitted successfully"}),
	})

	c := NewClient(srv.URL, "test-token")
	outcome, err := c.Submit(context.Background(), testForm(t), nil)
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.False(t, outcome.Overridden)
	require.Len(t, *requests, 1)

	body := (*requests)[0].Body
	assert.JSONEq(t, `"2024-03-01"`, string(body["start_date"]))
	assert.JSONEq(t, `"2024-03-14"`, string(body["end_date"]))
	assert.NotContains(t, body, "confirm_override")
}

func TestSubmitWarningConfirmed(t *testing.T) {
	warning := "Timesheet for ESL on 2024-03-04 already exists with 2 hours. Do you want to override?"
	srv, requests := submissionServer(t, []func(w http.ResponseWriter){
		respond(http.StatusConflict, SubmitResult{Status: "warning", Message: warning}),
		respond(http.StatusOK, SubmitResult{Status: "success", Message: "Timesheet submitted successfully"}),
	})

	c := NewClient(srv.URL, "test-token")

	var asked string
	outcome, err := c.Submit(context.Background(), testForm(t), func(message string) bool {
		asked = message
		return true
	})
	require.NoError(t, err)

	assert.Equal(t, warning, asked)
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.True(t, outcome.Overridden)
	require.Len(t, *requests, 2)

	first := (*requests)[0].Body
	second := (*requests)[1].Body

	// The resend carries the same entries plus the override flag, and drops
	// the window dates.
	assert.JSONEq(t, string(first["timesheet_data"]), string(second["timesheet_data"]))
	assert.JSONEq(t, `true`, string(second["confirm_override"]))
	assert.NotContains(t, second, "start_date")
	assert.NotContains(t, second, "end_date")
}

func TestSubmitWarningDeclined(t *testing.T) {
	srv, requests := submissionServer(t, []func(w http.ResponseWriter){
		respond(http.StatusConflict, SubmitResult{Status: "warning", Message: "already exists"}),
	})

	c := NewClient(srv.URL, "test-token")
	outcome, err := c.Submit(context.Background(), testForm(t), func(string) bool { return false })
	require.NoError(t, err)

	assert.Equal(t, StatusWarning, outcome.Status)
	assert.False(t, outcome.Overridden)
	assert.Len(t, *requests, 1, "declining must not issue a second request")
}

func TestSubmitNilConfirmDeclines(t *testing.T) {
	srv, requests := submissionServer(t, []func(w http.ResponseWriter){
		respond(http.StatusConflict, SubmitResult{Status: "warning", Message: "already exists"}),
	})

	c := NewClient(srv.URL, "test-token")
	outcome, err := c.Submit(context.Background(), testForm(t), nil)
	require.NoError(t, err)

	assert.Equal(t, StatusWarning, outcome.Status)
	assert.Len(t, *requests, 1)
}

func TestSubmitErrorStatus(t *testing.T) {
	srv, _ := submissionServer(t, []func(w http.ResponseWriter){
		respond(http.StatusBadRequest, SubmitResult{Status: "error", Message: "Invalid hours worked for ESL on 2024-03-04"}),
	})

	c := NewClient(srv.URL, "test-token")
	outcome, err := c.Submit(context.Background(), testForm(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "error", outcome.Status)
	assert.Equal(t, "Invalid hours worked for ESL on 2024-03-04", outcome.Message)
}

func TestSubmitInFlightGuard(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", "test-token")
	require.NoError(t, c.begin())
	defer c.end()

	_, err := c.Submit(context.Background(), testForm(t), nil)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestSubmitContextCancelled(t *testing.T) {
	srv, _ := submissionServer(t, []func(w http.ResponseWriter){
		respond(http.StatusOK, SubmitResult{Status: "success"}),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "test-token")
	_, err := c.Submit(ctx, testForm(t), nil)
	assert.Error(t, err)
}
