package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizuki-dev/animeprompt/internal/app"
	"github.com/mizuki-dev/animeprompt/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Flag parsing on the root is
// disabled so the original surface survives verbatim:
//
//	animeprompt [--key|-k KEY] [--prompt|-p PROMPT] ["keyword"]
//
// and the token scan in ParseArgs decides precedence. Subcommands are
// regular cobra commands.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "animeprompt [--key|-k KEY] [--prompt|-p PROMPT] [keyword]",
		Short: "Expand a keyword into an anime-style image prompt via Gemini",
		Long: "animeprompt sends a short keyword to Gemini with a fixed anime prompt-engineering\n" +
			"instruction and prints the expanded prompt plus a standard negative prompt.\n" +
			"Recent exchanges are replayed as context; the API key is cached in a temp file.",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Usage is still shown, but a bare invocation is an error:
				// the run produced no prompt.
				_ = cmd.Help()
				return domain.ErrNoPrompt
			}
			switch args[0] {
			case "-h", "--help", "help":
				return cmd.Help()
			}

			parsed, err := ParseArgs(args)
			if err != nil {
				return err
			}

			fmt.Printf("Generating prompt for: %q\n", parsed.Prompt)

			resp, err := container.GenerateService.Run(domain.PromptRequest{
				Context: cmd.Context(),
				Keyword: parsed.Prompt,
				APIKey:  parsed.Key,
			})
			if err != nil {
				return err
			}
			RenderResult(resp)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newKeyCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
