package timesheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

const (
	StatusSuccess = "success"
	StatusWarning = "warning"
)

// ErrSubmissionInFlight means a previous Submit has not completed yet. The
// caller keeps the form as-is and may retry once the first call returns.
var ErrSubmissionInFlight = errors.New("a timesheet submission is already in flight")

// SubmissionPayload is the initial submit body.
type SubmissionPayload struct {
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TimesheetData []Entry `json:"timesheet_data"`
}

// OverridePayload is the confirm-override resend body. The backend keys the
// override purely on the entries, so the date range is not repeated here.
type OverridePayload struct {
	TimesheetData   []Entry `json:"timesheet_data"`
	ConfirmOverride bool    `json:"confirm_override"`
}

type SubmitResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Outcome is what a submission round-trip resolved to. Overridden is set
// when the warning path ran and the user confirmed the resend.
type Outcome struct {
	Status     string
	Message    string
	Overridden bool
}

// Client drives the submission workflow against the portal backend. Submit
// is guarded so a double click cannot race two identical requests.
type Client struct {
	transport *Transport

	mu       sync.Mutex
	inFlight bool
}

func NewClient(baseURL, token string) *Client {
	return &Client{transport: NewTransport(baseURL, token)}
}

// Submit collects the form's complete rows and posts them. The three-way
// response contract:
//
//   - "success": done.
//   - "warning": confirm is asked to approve an override. Approval resends
//     the same entries with confirm_override set; declining leaves the form
//     untouched and issues no second request.
//   - anything else: a hard rejection; the message is surfaced and the
//     entries stay in the form for correction.
//
// A nil confirm declines every warning.
func (c *Client) Submit(ctx context.Context, form *Form, confirm func(message string) bool) (*Outcome, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	payload := SubmissionPayload{
		StartDate:     form.StartDate,
		EndDate:       form.EndDate,
		TimesheetData: form.Collect(),
	}

	result, err := c.post(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to submit timesheet: %w", err)
	}

	switch result.Status {
	case StatusSuccess:
		return &Outcome{Status: StatusSuccess, Message: result.Message}, nil
	case StatusWarning:
		if confirm == nil || !confirm(result.Message) {
			return &Outcome{Status: StatusWarning, Message: result.Message}, nil
		}
		return c.resendWithOverride(ctx, payload.TimesheetData)
	default:
		return &Outcome{Status: result.Status, Message: result.Message}, nil
	}
}

// resendWithOverride runs strictly after the user confirmed the warning.
func (c *Client) resendWithOverride(ctx context.Context, entries []Entry) (*Outcome, error) {
	result, err := c.post(ctx, OverridePayload{TimesheetData: entries, ConfirmOverride: true})
	if err != nil {
		return nil, fmt.Errorf("failed to resend with override: %w", err)
	}
	return &Outcome{
		Status:     result.Status,
		Message:    result.Message,
		Overridden: result.Status == StatusSuccess,
	}, nil
}

func (c *Client) post(ctx context.Context, payload any) (*SubmitResult, error) {
	resp, err := c.transport.Post(ctx, "/submit_timesheet", payload, nil)
	if err != nil {
		return nil, err
	}

	var result SubmitResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	return &result, nil
}

func (c *Client) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return ErrSubmissionInFlight
	}
	c.inFlight = true
	return nil
}

func (c *Client) end() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}
