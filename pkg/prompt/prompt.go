// Package prompt provides interactive terminal prompts.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/grovekit/grove/pkg/git"
)

//go:generate mockgen -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// Confirm prompts the user for confirmation with a default value.
	Confirm(message string, defaultYes bool) (bool, error)

	// SelectWorktree prompts the user to pick one worktree from candidates.
	// A nil worktree with nil error means the user cancelled.
	SelectWorktree(candidates []git.Worktree) (*git.Worktree, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// Confirm prompts the user for confirmation with a default value.
func (p *realPrompt) Confirm(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}

	fmt.Fprintf(os.Stderr, "%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// SelectWorktree prompts the user to pick one worktree from candidates.
func (p *realPrompt) SelectWorktree(candidates []git.Worktree) (*git.Worktree, error) {
	if len(candidates) == 0 {
		return nil, ErrNoChoicesAvailable
	}

	return selectWorktreeBubbleTea(candidates)
}
