// ABOUTME: Error hierarchy for the deckhand API client.
// ABOUTME: Defines structured error types for transport failures, configuration problems, and name-resolution outcomes.

package weeek

import (
	"fmt"
	"strings"
)

// ClientError is the base error type for all errors in the client.
// All other error types embed ClientError either directly or transitively.
type ClientError struct {
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ConfigurationError represents a client configuration problem (missing API
// token, unparsable base URL). The operation never reaches the network.
type ConfigurationError struct {
	ClientError
}

func (e *ConfigurationError) Error() string { return e.ClientError.Error() }
func (e *ConfigurationError) Unwrap() error { return e.ClientError.Unwrap() }

func (e *ConfigurationError) As(target any) bool {
	switch t := target.(type) {
	case **ClientError:
		*t = &e.ClientError
		return true
	default:
		return false
	}
}

// TransportError represents a non-success response from the remote API.
// It carries the status code and raw response body unchanged; the client
// never retries automatically.
type TransportError struct {
	ClientError
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *TransportError) Error() string { return e.ClientError.Error() }
func (e *TransportError) Unwrap() error { return e.ClientError.Unwrap() }

func (e *TransportError) As(target any) bool {
	switch t := target.(type) {
	case **ClientError:
		*t = &e.ClientError
		return true
	default:
		return false
	}
}

// newTransportError builds a TransportError for a non-success response.
func newTransportError(method, path string, status int, body []byte) *TransportError {
	msg := fmt.Sprintf("%s %s: remote returned %d", method, path, status)
	if len(body) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, truncateBody(body))
	}
	return &TransportError{
		ClientError: ClientError{Message: msg},
		Method:      method,
		Path:        path,
		StatusCode:  status,
		Body:        body,
	}
}

// truncateBody keeps error messages readable when the remote returns a large
// HTML error page. The full body stays on TransportError.Body.
func truncateBody(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// NotFoundError represents a name-resolution step that produced zero matches.
// Query is the text the caller supplied; Scope names the collection searched
// (e.g. `columns of board "Release"`).
type NotFoundError struct {
	ClientError
	Query string
	Scope string
}

func (e *NotFoundError) Error() string { return e.ClientError.Error() }
func (e *NotFoundError) Unwrap() error { return e.ClientError.Unwrap() }

func (e *NotFoundError) As(target any) bool {
	switch t := target.(type) {
	case **ClientError:
		*t = &e.ClientError
		return true
	default:
		return false
	}
}

func newNotFoundError(query, scope string) *NotFoundError {
	return &NotFoundError{
		ClientError: ClientError{Message: fmt.Sprintf("no %s matching %q", scope, query)},
		Query:       query,
		Scope:       scope,
	}
}

// AmbiguousError represents a name-resolution step that produced more than one
// match. Matches enumerates every candidate's name and id so the caller can
// refine the query.
type AmbiguousError struct {
	ClientError
	Query   string
	Scope   string
	Matches []Candidate
}

func (e *AmbiguousError) Error() string { return e.ClientError.Error() }
func (e *AmbiguousError) Unwrap() error { return e.ClientError.Unwrap() }

func (e *AmbiguousError) As(target any) bool {
	switch t := target.(type) {
	case **ClientError:
		*t = &e.ClientError
		return true
	default:
		return false
	}
}

func newAmbiguousError(query, scope string, matches []Candidate) *AmbiguousError {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = fmt.Sprintf("%s (id %s)", m.Name, m.ID)
	}
	return &AmbiguousError{
		ClientError: ClientError{
			Message: fmt.Sprintf("multiple %s match %q, be more specific: %s",
				scope, query, strings.Join(names, ", ")),
		},
		Query:   query,
		Scope:   scope,
		Matches: matches,
	}
}

// SubtaskOutcome records the result of one subtask creation attempt within an
// orchestrated CreateTaskDetailed call.
type SubtaskOutcome struct {
	Title string
	Task  *Task
	Err   error
}

// PartialFailureError reports a CreateTaskDetailed call whose primary task was
// created successfully but where one or more subtask creations failed. The
// already-created primary task and prior subtasks are never rolled back.
type PartialFailureError struct {
	ClientError
	RunID    string
	Primary  *Task
	Outcomes []SubtaskOutcome
}

func (e *PartialFailureError) Error() string { return e.ClientError.Error() }
func (e *PartialFailureError) Unwrap() error { return e.ClientError.Unwrap() }

func (e *PartialFailureError) As(target any) bool {
	switch t := target.(type) {
	case **ClientError:
		*t = &e.ClientError
		return true
	default:
		return false
	}
}

// Failed returns the outcomes for subtasks whose creation failed.
func (e *PartialFailureError) Failed() []SubtaskOutcome {
	var failed []SubtaskOutcome
	for _, o := range e.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

func newPartialFailureError(runID string, primary *Task, outcomes []SubtaskOutcome) *PartialFailureError {
	var failed []string
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, fmt.Sprintf("%q (%v)", o.Title, o.Err))
		}
	}
	return &PartialFailureError{
		ClientError: ClientError{
			Message: fmt.Sprintf("task %d created, but %d of %d subtask(s) failed: %s",
				primary.ID, len(failed), len(outcomes), strings.Join(failed, "; ")),
		},
		RunID:    runID,
		Primary:  primary,
		Outcomes: outcomes,
	}
}
