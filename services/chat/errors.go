package chat

import (
	"errors"
	"fmt"
)

// StatusError means the research service answered with a non-success status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("research service returned status %d", e.StatusCode)
}

// TransportError means the request was sent but no response came back.
type TransportError struct {
	Target string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("no response from %s: %v", e.Target, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Classify maps a request error to its outcome.
func Classify(err error) Outcome {
	var statusErr *StatusError
	var transportErr *TransportError
	switch {
	case err == nil:
		return OutcomeSucceeded
	case errors.As(err, &statusErr):
		return OutcomeStatus
	case errors.As(err, &transportErr):
		return OutcomeTransport
	default:
		return OutcomeFailed
	}
}

// Diagnose turns a failed request into the assistant's reply. target is the
// configured service address and is quoted when nothing answered.
func Diagnose(err error, target string) string {
	var statusErr *StatusError
	var transportErr *TransportError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Sorry, the AI research service returned an error (status %d). Please try again in a moment.", statusErr.StatusCode)
	case errors.As(err, &transportErr):
		if target == "" {
			target = transportErr.Target
		}
		return fmt.Sprintf("Sorry, I couldn't get a response from the AI research service. Please check your internet connection and make sure the service is running at %s.", target)
	default:
		return "Sorry, something went wrong while processing your question. Please try again."
	}
}
