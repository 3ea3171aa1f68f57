package cli

import (
	"fmt"

	"github.com/mizuki-dev/animeprompt/internal/domain"
)

// RenderResult prints the generated prompt and the fixed negative prompt as
// two labelled blocks.
func RenderResult(resp domain.PromptResponse) {
	fmt.Println()
	fmt.Println("=== GENERATED PROMPT ===")
	fmt.Println(resp.Result.Prompt)
	fmt.Println()
	fmt.Println("=== NEGATIVE PROMPT ===")
	fmt.Println(resp.Result.NegativePrompt)
}
