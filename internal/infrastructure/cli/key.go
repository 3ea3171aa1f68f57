package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizuki-dev/animeprompt/internal/app"
	"github.com/mizuki-dev/animeprompt/internal/infrastructure/credential"
)

func newKeyCommand(container *app.Container) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Inspect or clear the cached API key",
		Long: "The cached key always wins over --key and " + credential.EnvVar + ".\n" +
			"Clear the cache to make a fresh key take effect.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := container.CredentialStore
			if clear {
				if err := store.Clear(); err != nil {
					return fmt.Errorf("clear cached key: %w", err)
				}
				fmt.Println("Cached API key removed.")
				return nil
			}

			fmt.Printf("Cache file: %s\n", store.Path())
			if store.Cached() {
				fmt.Println("A key is cached; it takes precedence over --key and the environment.")
			} else {
				fmt.Printf("No key cached; next run will persist --key or %s.\n", credential.EnvVar)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the cached API key")
	return cmd
}
