package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/sebasr/cloud-compute-demo/internal/greeting"
)

// OutcomeKind classifies the result of one submission
type OutcomeKind int

const (
	// OutcomeIdle means nothing has been submitted yet
	OutcomeIdle OutcomeKind = iota
	// OutcomeSuccess carries the greeting returned by the service
	OutcomeSuccess
	// OutcomeValidationError means the name was blank; the service was not called
	OutcomeValidationError
	// OutcomeBackendError means the service answered with an error
	OutcomeBackendError
	// OutcomeTransportError means the service could not be reached
	OutcomeTransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIdle:
		return "idle"
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationError:
		return "validation_error"
	case OutcomeBackendError:
		return "backend_error"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// LocalValidationMessage is shown when the user submits a blank name
const LocalValidationMessage = "Please enter a non-empty name."

// Outcome is what the user is shown after a submission
type Outcome struct {
	Kind    OutcomeKind
	Name    string // trimmed name that was submitted
	Message string
}

// IsError reports whether the outcome should be rendered as an error
func (o Outcome) IsError() bool {
	return o.Kind != OutcomeSuccess && o.Kind != OutcomeIdle
}

// Submit trims name and, unless it is blank, asks c for a greeting. Every
// failure is folded into the returned Outcome.
func Submit(ctx context.Context, c Client, name string) Outcome {
	trimmed, err := greeting.NormalizeName(name)
	if err != nil {
		return Outcome{Kind: OutcomeValidationError, Message: LocalValidationMessage}
	}

	msg, err := c.Hello(ctx, trimmed)
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Name: trimmed, Message: msg}
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return Outcome{
			Kind:    OutcomeTransportError,
			Name:    trimmed,
			Message: fmt.Sprintf("Unable to reach backend at %s: %v", transportErr.BackendURL, transportErr.Err),
		}
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return Outcome{
			Kind:    OutcomeBackendError,
			Name:    trimmed,
			Message: "Backend responded with an error: " + respErr.Detail,
		}
	}

	return Outcome{
		Kind:    OutcomeBackendError,
		Name:    trimmed,
		Message: "Backend responded with an error: " + err.Error(),
	}
}
