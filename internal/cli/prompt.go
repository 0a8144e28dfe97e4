package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Sim").
			Negative("Não").
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// NewPasswordFunc creates a PromptFunc that hides what the user types.
func NewPasswordFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			EchoMode(huh.EchoModePassword).
			Value(&result).
			Run()
		return result, err
	}
}

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
type SelectFunc func(title string, options []string) (int, error)

// NewSelectFunc creates a SelectFunc using huh's interactive select component.
func NewSelectFunc() SelectFunc {
	return func(title string, options []string) (int, error) {
		var result int
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}
		err := huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt   PromptFunc
	Password PromptFunc
	Confirm  ConfirmFunc
	Select   SelectFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
// Outside a terminal every prompt fails instead of blocking on input.
func NewPromptKit() PromptKit {
	if !isTerminal() {
		return nonInteractiveKit()
	}
	return PromptKit{
		Prompt:   NewPromptFunc(),
		Password: NewPasswordFunc(),
		Confirm:  NewConfirmFunc(),
		Select:   NewSelectFunc(),
	}
}

func nonInteractiveKit() PromptKit {
	fail := func(prompt string) error {
		return fmt.Errorf("%q needs an interactive terminal; pass the value as a flag", prompt)
	}
	return PromptKit{
		Prompt:   func(p string) (string, error) { return "", fail(p) },
		Password: func(p string) (string, error) { return "", fail(p) },
		Confirm:  func(p string) (bool, error) { return false, fail(p) },
		Select:   func(p string, _ []string) (int, error) { return 0, fail(p) },
	}
}
