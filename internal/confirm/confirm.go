// Package confirm asks before files are rewritten in place.
package confirm

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Answer is the user's choice for one file.
type Answer string

const (
	Yes  Answer = "yes"
	No   Answer = "no"
	All  Answer = "all"
	Quit Answer = "quit"
)

// ErrQuit is returned once the user chose to stop.
var ErrQuit = errors.New("stopped by user")

// Question describes one pending rewrite.
type Question struct {
	Path  string
	Edits int
}

// Prompter asks a single question.
type Prompter interface {
	Ask(q Question) (Answer, error)
}

// FormPrompter asks with a huh select form on the terminal.
type FormPrompter struct{}

// Ask shows the choices for q
func (FormPrompter) Ask(q Question) (Answer, error) {
	answer := Yes
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Answer]().
				Title(fmt.Sprintf("Rewrite %s?", q.Path)).
				Description(fmt.Sprintf("%d edits", q.Edits)).
				Options(
					huh.NewOption("Yes", Yes),
					huh.NewOption("No", No),
					huh.NewOption("Yes to all remaining files", All),
					huh.NewOption("Quit", Quit),
				).
				Value(&answer),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Quit, nil
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return answer, nil
}

// Session remembers "all" and "quit" across files.
type Session struct {
	prompter Prompter
	all      bool
	quit     bool
}

// NewSession creates a session that asks with p.
func NewSession(p Prompter) *Session {
	return &Session{prompter: p}
}

// Approve reports whether path should be rewritten. After the user quits
// it returns ErrQuit without asking again.
func (s *Session) Approve(q Question) (bool, error) {
	switch {
	case s.quit:
		return false, ErrQuit
	case s.all:
		return true, nil
	}

	answer, err := s.prompter.Ask(q)
	if err != nil {
		return false, err
	}
	switch answer {
	case Yes:
		return true, nil
	case All:
		s.all = true
		return true, nil
	case Quit:
		s.quit = true
		return false, ErrQuit
	default:
		return false, nil
	}
}
