package vercel

import (
	"fmt"
	"strings"
)

// parseListing extracts variable names from `vercel env ls` table output.
//
// The CLI prints a banner, a summary line, then a table whose header row
// starts with "name". Only the first column matters here; values in the
// listing are always redacted. An explicit "no variables" message yields
// an empty result rather than a parse error.
func parseListing(output string) ([]string, error) {
	lines := strings.Split(output, "\n")

	if containsFold(output, "no environment variables found") {
		return []string{}, nil
	}

	names := []string{}
	inTable := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(stripDecorations(line))
		if trimmed == "" {
			continue
		}

		fields := strings.Fields(trimmed)
		if !inTable {
			if strings.EqualFold(fields[0], "name") {
				inTable = true
			}
			continue
		}

		names = append(names, fields[0])
	}

	if !inTable {
		return nil, fmt.Errorf("unrecognized listing output: no header row found")
	}
	return names, nil
}

// stripDecorations removes ANSI escape sequences the CLI emits when it
// thinks it is talking to a terminal.
func stripDecorations(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == 0x1b:
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// matchesAlreadyExists reports whether CLI output describes an add that
// collided with an existing variable.
func matchesAlreadyExists(output string) bool {
	return containsFold(output, "already exist")
}

// matchesNotFound reports whether CLI output describes a removal of a
// variable that is not there.
func matchesNotFound(output string) bool {
	return containsFold(output, "not found") || containsFold(output, "was not found")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
