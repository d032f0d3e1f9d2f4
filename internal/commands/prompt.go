package commands

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/sebasr/cloud-compute-demo/internal/client"
	"github.com/sebasr/cloud-compute-demo/internal/greeting"
)

// Prompter asks the user for a name
type Prompter interface {
	PromptName(defaultName string) (string, error)
}

// FormPrompter prompts with an interactive terminal form
type FormPrompter struct{}

// PromptName runs the name form pre-filled with defaultName
func (FormPrompter) PromptName(defaultName string) (string, error) {
	name := defaultName
	if err := newNameForm(&name).Run(); err != nil {
		return "", err
	}
	return name, nil
}

func newNameForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What is your name?").
				Description("The greeting service will say hello").
				Value(name).
				Validate(ValidateName),
		),
	)
}

// ValidateName rejects blank names before anything is sent
func ValidateName(s string) error {
	if _, err := greeting.NormalizeName(s); err != nil {
		return errors.New(client.LocalValidationMessage)
	}
	return nil
}
