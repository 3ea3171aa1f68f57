package domain

import "context"

// PromptRequest captures user intent originating from the CLI.
type PromptRequest struct {
	Context context.Context
	Keyword string
	// APIKey is the value of --key, if supplied. The credential cache still
	// takes precedence over it.
	APIKey string
}

// PromptResponse is the canonical response propagated back to the CLI.
type PromptResponse struct {
	Result GenerationResult
	// HistoryUsed is how many prior exchanges were replayed as context.
	HistoryUsed int
}
