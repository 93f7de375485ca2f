package model

import "strings"

// Issue codes, mirroring the payload shape of the legacy orders service
const (
	IssueInvalidType    = "invalid_type"
	IssueInvalidLiteral = "invalid_literal"
	IssueInvalidDate    = "invalid_date"
	IssueCustom         = "custom"
)

// Issue is one violated constraint: where it happened and why
type Issue struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Path     []string          `json:"path"`
	Expected string            `json:"expected,omitempty"`
	Received string            `json:"received,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
}

// ValidationError is a user-facing validation failure carrying one issue per
// violated constraint. It is returned as a value, never panicked, and is
// fatal only to the request it belongs to.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

func NewValidationError(issues ...Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if len(issue.Path) > 0 {
			msgs = append(msgs, strings.Join(issue.Path, ".")+": "+issue.Message)
		} else {
			msgs = append(msgs, issue.Message)
		}
	}
	return strings.Join(msgs, "; ")
}
