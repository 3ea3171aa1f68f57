package cli

import (
	"fmt"
	"strings"

	"github.com/mizuki-dev/animeprompt/internal/domain"
)

// ParsedArgs holds the values extracted from a raw argument list.
type ParsedArgs struct {
	Key    string
	Prompt string
}

// ParseArgs scans the token list with a small state machine: a recognized
// flag consumes the next token as its value, and the first free token
// becomes the prompt. A value set via --prompt/-p always wins over a bare
// positional token, regardless of order.
func ParseArgs(args []string) (ParsedArgs, error) {
	var parsed ParsedArgs
	var positional string
	promptFlagged := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--key", "-k":
			if i+1 >= len(args) {
				return ParsedArgs{}, fmt.Errorf("%w: %s", domain.ErrMissingFlagValue, args[i])
			}
			parsed.Key = args[i+1]
			i++
		case "--prompt", "-p":
			if i+1 >= len(args) {
				return ParsedArgs{}, fmt.Errorf("%w: %s", domain.ErrMissingFlagValue, args[i])
			}
			parsed.Prompt = args[i+1]
			promptFlagged = true
			i++
		default:
			if positional == "" {
				positional = args[i]
			}
		}
	}

	if !promptFlagged {
		parsed.Prompt = positional
	}
	if strings.TrimSpace(parsed.Prompt) == "" {
		return ParsedArgs{}, domain.ErrNoPrompt
	}
	return parsed, nil
}
