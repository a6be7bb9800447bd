package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// PromptConfirmer asks the user a yes/no question on the terminal.
type PromptConfirmer struct{}

func (PromptConfirmer) Confirm(prompt string) (bool, error) {
	var answer bool
	err := runField(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	)
	if err != nil {
		// Ctrl+C means no, not a broken run.
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return answer, nil
}

// AssumeYesConfirmer answers yes without prompting. Used for -y and the
// assume_yes config option.
type AssumeYesConfirmer struct{}

func (AssumeYesConfirmer) Confirm(string) (bool, error) {
	return true, nil
}

func runField(field huh.Field) error {
	t := huh.ThemeBase()
	t.Focused.Base = t.Focused.Base.MarginBottom(1)
	t.Blurred.Base = t.Blurred.Base.MarginBottom(1)

	return huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithTheme(t).
		Run()
}
