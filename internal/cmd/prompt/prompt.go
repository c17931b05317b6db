// Package prompt implements the interactive terminal prompts used by the
// sync and deletion workflows.
//
// All prompts go through the Prompter interface so workflows can be tested
// against a scripted implementation. The terminal implementation reads
// whole lines from stdin; a read failure or EOF means the operator is gone
// and surfaces as ErrCanceled, as does a canceled context.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Marian1309/vercel-env/pkg/errors"
)

// Prompter asks the operator questions. Every method honors context
// cancellation between reads and returns errors.ErrCanceled when input
// ends or the context is done.
type Prompter interface {
	// Confirm asks a yes/no question. Empty input means no.
	Confirm(ctx context.Context, question string) (bool, error)

	// Select presents options for single selection and returns the index
	// of the chosen option. Invalid input re-prompts.
	Select(ctx context.Context, title string, options []string) (int, error)

	// MultiSelect presents options for multiple selection and returns the
	// chosen indexes in the order entered. Empty input selects nothing.
	MultiSelect(ctx context.Context, title string, options []string) ([]int, error)
}

// Terminal is the stdin/stdout Prompter.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Prompter on os.Stdin and os.Stdout.
func NewTerminal() *Terminal {
	return New(os.Stdin, os.Stdout)
}

// New creates a Prompter on arbitrary streams.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(t.out, "%s [y/N] ", question)

	response, err := t.readLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(response) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select implements Prompter.
func (t *Terminal) Select(ctx context.Context, title string, options []string) (int, error) {
	fmt.Fprintf(t.out, "%s\n", title)
	for i, option := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(t.out, "Choose [1-%d]: ", len(options))
		response, err := t.readLine(ctx)
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(response)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintf(t.out, "Invalid choice %q\n", response)
			continue
		}
		return choice - 1, nil
	}
}

// MultiSelect implements Prompter.
func (t *Terminal) MultiSelect(ctx context.Context, title string, options []string) ([]int, error) {
	fmt.Fprintf(t.out, "%s\n", title)
	for i, option := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(t.out, "Choose (comma separated, e.g. 1,3): ")
		response, err := t.readLine(ctx)
		if err != nil {
			return nil, err
		}
		if response == "" {
			return nil, nil
		}

		indexes, ok := parseSelection(response, len(options))
		if !ok {
			fmt.Fprintf(t.out, "Invalid selection %q\n", response)
			continue
		}
		return indexes, nil
	}
}

// readLine reads one trimmed line, translating EOF and cancellation into
// ErrCanceled so workflows stop promptly with no side effects.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.ErrCanceled
	}

	response, err := t.in.ReadString('\n')
	if err != nil && response == "" {
		return "", errors.ErrCanceled
	}
	if err := ctx.Err(); err != nil {
		return "", errors.ErrCanceled
	}
	return strings.TrimSpace(response), nil
}

// parseSelection parses "1,3,4" into zero-based unique indexes.
func parseSelection(response string, max int) ([]int, bool) {
	parts := strings.Split(response, ",")
	indexes := make([]int, 0, len(parts))
	seen := make(map[int]bool, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		choice, err := strconv.Atoi(part)
		if err != nil || choice < 1 || choice > max {
			return nil, false
		}
		if seen[choice] {
			continue
		}
		seen[choice] = true
		indexes = append(indexes, choice-1)
	}
	return indexes, true
}
