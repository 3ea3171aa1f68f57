package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mizuki-dev/animeprompt/internal/infrastructure/cli"
)

func main() {
	// Best-effort: lets GENAI_API_KEY live in a project .env file.
	_ = godotenv.Load()

	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("ANIMEPROMPT_DEBUG"), "1") || strings.EqualFold(os.Getenv("ANIMEPROMPT_DEBUG"), "true")
}
