// Package greeting implements the greeting contract: trim the name, reject it
// when blank, otherwise format "Hello, {name}!".
package greeting

import (
	"errors"
	"strings"

	"github.com/alecthomas/types/result"

	"github.com/sebasr/cloud-compute-demo/internal/models"
)

// EmptyNameDetail is the detail reported when the trimmed name is empty
const EmptyNameDetail = "Name must not be empty"

// ErrEmptyName is the validation error for a blank name
var ErrEmptyName = &ValidationError{Detail: EmptyNameDetail}

// ValidationError is a client-caused failure carrying a user-facing detail
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// IsValidationError reports whether err is, or wraps, a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NormalizeName trims surrounding whitespace and rejects blank names.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return trimmed, nil
}

// Message formats the greeting for an already normalized name
func Message(name string) string {
	return "Hello, " + name + "!"
}

// Greet answers a greeting request. The result is either a response whose
// message is "Hello, " + trim(name) + "!" or a *ValidationError.
func Greet(req models.GreetingRequest) result.Result[models.GreetingResponse] {
	name, err := NormalizeName(req.Name)
	if err != nil {
		return result.Err[models.GreetingResponse](err)
	}
	return result.Ok(models.GreetingResponse{Message: Message(name)})
}
