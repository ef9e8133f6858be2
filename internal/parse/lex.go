package parse

import (
	"strings"

	"github.com/google/shlex"
)

// Fields splits s around runs of whitespace. This is how chat messages are tokenized by default.
func Fields(s string) []string {
	return strings.Fields(s)
}

// Split splits s using shell-style rules: quotes group words and backslash escapes the next rune
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
