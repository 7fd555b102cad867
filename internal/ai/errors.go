package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means no credential is configured. AI stages are disabled, nothing else.
	ErrConfiguration = errors.New("ai features unavailable")
	// ErrExternalService matches every ExternalServiceError.
	ErrExternalService = errors.New("external service error")
	// ErrResponseParse matches every ResponseParseError.
	ErrResponseParse = errors.New("response parse error")
	// ErrInsufficientInput is returned by a judge given an empty input set.
	ErrInsufficientInput = errors.New("judge needs non-empty manual and ai results")
)

// ExternalServiceError wraps transport, auth, quota and timeout failures.
type ExternalServiceError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ExternalServiceError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("%s request failed after %d attempts: %v", e.Provider, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func (e *ExternalServiceError) Is(target error) bool { return target == ErrExternalService }

// ResponseParseError reports a response that does not satisfy the result contract.
type ResponseParseError struct {
	Stage  string
	Reason string
	// Raw is the offending payload, already truncated for logging.
	Raw string
	Err error
}

func (e *ResponseParseError) Error() string {
	msg := fmt.Sprintf("%s response: %s", e.Stage, e.Reason)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

func (e *ResponseParseError) Is(target error) bool { return target == ErrResponseParse }
