package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user typed "y" or "yes" (any case).
	Accepted bool
	// Cancelled is true if reading input failed.
	Cancelled bool
}

// Prompter asks yes/no questions on one input stream. Use a single Prompter
// for consecutive questions so buffered input is not lost between them.
type Prompter struct {
	w io.Writer
	r *bufio.Reader
}

// NewPrompter creates a prompter writing questions to w and reading answers from r.
func NewPrompter(w io.Writer, r io.Reader) *Prompter {
	return &Prompter{w: w, r: bufio.NewReader(r)}
}

// Confirm asks question and waits for one line of input.
// The prompt defaults to "No" on empty input and on EOF.
func (p *Prompter) Confirm(question string) PromptResult {
	fmt.Fprintf(p.w, "? %s [y/N] ", question)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return PromptResult{Cancelled: true}
		}
		if line == "" {
			// EOF without input, e.g. Ctrl+D or a closed pipe.
			fmt.Fprintln(p.w)
			return PromptResult{Accepted: false}
		}
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}

// ConfirmTwice asks first and then, only if accepted, second. Both must be
// accepted for the result to be accepted.
func (p *Prompter) ConfirmTwice(first, second string) PromptResult {
	res := p.Confirm(first)
	if !res.Accepted {
		return res
	}
	return p.Confirm(second)
}
