package ai

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	go_openai "github.com/sashabaranov/go-openai"
)

// GenerationError reports a failed generation call with a human-readable
// cause. The calling operation aborts without mutating any node.
type GenerationError struct {
	Cause string
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Cause, e.Err)
	}
	return fmt.Sprintf("generation failed: %s", e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// classifyError maps the OpenAI client error surface onto the generation
// error taxonomy: auth failure, rate limit, API error, transport error.
func classifyError(err error) *GenerationError {
	var apiErr *go_openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &GenerationError{Cause: "invalid API key", Err: err}
		case http.StatusTooManyRequests:
			return &GenerationError{Cause: "rate limit exceeded", Err: err}
		default:
			return &GenerationError{Cause: "API error", Err: err}
		}
	}

	var reqErr *go_openai.RequestError
	if errors.As(err, &reqErr) {
		return &GenerationError{Cause: "request failed", Err: err}
	}

	return &GenerationError{Cause: "transport error", Err: err}
}
