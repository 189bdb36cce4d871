// Package quoteform is the client side of the quote flow: a draft that is edited
// field by field and submitted once to POST /api/quote.
//
// Status transitions:
//
//	idle    -[Submit]-> loading
//	loading -[2xx]-> sent            (draft cleared)
//	loading -[non-2xx or error]-> error (draft kept)
//	sent|error -[UpdateField]-> idle
package quoteform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

const quotePath = "/api/quote"

// Status is the submission state of a Form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSent    Status = "sent"
	StatusError   Status = "error"
)

// Field names a draft field; values match the JSON keys.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldDate    Field = "date"
	FieldDetails Field = "details"
)

// User-facing messages.
const (
	SentMessage     = "Thanks! We'll reply within one business day."
	FailedMessage   = "Failed to send message. Please try again."
	FallbackMessage = "Something went wrong."
)

var (
	// ErrSubmitInFlight is returned when Submit is called while a submission is loading.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrIncomplete is returned when a required field is empty; nothing is sent.
	ErrIncomplete = errors.New("required fields are empty")

	// ErrUnknownField is returned by UpdateField for a key outside the draft.
	ErrUnknownField = errors.New("unknown field")
)

// Draft is the in-progress form content.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Details string `json:"details"`
}

func (d Draft) complete() bool {
	return d.Name != "" && d.Email != "" && d.Phone != "" && d.Details != ""
}

// Form holds one draft and its submission state. It is safe for concurrent use;
// at most one submission is in flight at a time.
type Form struct {
	client *resty.Client

	mu     sync.Mutex
	draft  Draft
	status Status
	errMsg string
}

// New creates an idle form posting to baseURL + "/api/quote".
// A nil httpClient gets resty's default client.
func New(baseURL string, httpClient *http.Client) *Form {
	client := resty.New()
	if httpClient != nil {
		client = resty.NewWithClient(httpClient)
	}
	client.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Form{
		client: client,
		status: StatusIdle,
	}
}

// UpdateField writes value into the draft. Editing after a finished attempt
// re-arms the form: status returns to idle and the error is cleared. Edits made
// while loading only touch the draft; the in-flight submission keeps the guard.
func (f *Form) UpdateField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldEmail:
		f.draft.Email = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldDate:
		f.draft.Date = value
	case FieldDetails:
		f.draft.Details = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if f.status == StatusSent || f.status == StatusError {
		f.status = StatusIdle
		f.errMsg = ""
	}
	return nil
}

// Submit sends the current draft. It returns ErrSubmitInFlight while loading and
// ErrIncomplete when a required field is empty; in both cases state is unchanged.
// Otherwise the outcome is reflected in Status and Err, and returned as an error.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusLoading {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if !f.draft.complete() {
		f.mu.Unlock()
		return ErrIncomplete
	}
	draft := f.draft
	f.status = StatusLoading
	f.errMsg = ""
	f.mu.Unlock()

	err := f.post(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusError
		f.errMsg = err.Error()
		if f.errMsg == "" {
			f.errMsg = FallbackMessage
		}
		return err
	}
	f.status = StatusSent
	f.draft = Draft{}
	return nil
}

func (f *Form) post(ctx context.Context, draft Draft) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(draft).
		Post(quotePath)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return errors.New(FailedMessage)
	}
	return nil
}

// Status returns the current submission state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Err returns the message recorded by the last failed submission, or "".
func (f *Form) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}
