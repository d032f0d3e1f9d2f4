package greeting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasr/cloud-compute-demo/internal/models"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedMsg string
	}{
		{name: "simple name", input: "John", expectedMsg: "Hello, John!"},
		{name: "name with space", input: "Azure Developer", expectedMsg: "Hello, Azure Developer!"},
		{name: "hyphenated name", input: "Mary-Jane", expectedMsg: "Hello, Mary-Jane!"},
		{name: "single letter", input: "A", expectedMsg: "Hello, A!"},
		{name: "leading and trailing spaces", input: "  Ada  ", expectedMsg: "Hello, Ada!"},
		{name: "tabs and newlines", input: "\tGrace\n", expectedMsg: "Hello, Grace!"},
		{name: "inner whitespace kept", input: " Jean  Luc ", expectedMsg: "Hello, Jean  Luc!"},
		{name: "unicode name", input: "Zoë", expectedMsg: "Hello, Zoë!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Greet(models.GreetingRequest{Name: tt.input}).Result()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}
}

func TestGreet_BlankNames(t *testing.T) {
	for _, input := range []string{"", " ", "  ", "\t", "\n\r\t ", " "} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := Greet(models.GreetingRequest{Name: input}).Result()
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "Name must not be empty", ve.Detail)
			assert.Equal(t, "Name must not be empty", err.Error())
		})
	}
}

func TestGreet_Idempotent(t *testing.T) {
	req := models.GreetingRequest{Name: " Azure Developer "}

	first, err := Greet(req).Result()
	require.NoError(t, err)
	second, err := Greet(req).Result()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalizeName(t *testing.T) {
	name, err := NormalizeName("  Azure Developer ")
	require.NoError(t, err)
	assert.Equal(t, "Azure Developer", name)

	_, err = NormalizeName("   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrEmptyName))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", ErrEmptyName)))
	assert.False(t, IsValidationError(errors.New("boom")))
	assert.False(t, IsValidationError(nil))
}
