package req

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/replykit/reply"
	"github.com/replykit/reply/http/resp"
)

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msg := fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got))
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	for _, err := range v {
		errs.E = append(errs.E, err)
	}

	return json.Marshal(errs)
}

// Response renders the set as a 422 JSON payload,
// ready to be returned from a [resp.HandlerFunc].
func (v ValidationErrors) Response() resp.Response {
	return resp.WithStatus(http.StatusUnprocessableEntity, resp.JSON(v))
}

func (ValidationErrors) Unwrap() error { return reply.ErrNotValid }
