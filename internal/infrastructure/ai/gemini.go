package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/mizuki-dev/animeprompt/internal/domain"
	"github.com/mizuki-dev/animeprompt/internal/ports"
)

// GeminiGenerator issues a single Gemini call per run. The system
// instruction is fixed; prior exchanges are replayed as chat turns so the
// model keeps stylistic continuity across invocations.
type GeminiGenerator struct {
	settings domain.GenerationSettings
	log      ports.Logger
}

// NewGeminiGenerator builds a generator from config.
func NewGeminiGenerator(settings domain.GenerationSettings, log ports.Logger) *GeminiGenerator {
	return &GeminiGenerator{settings: settings, log: log}
}

// Name implements ports.Generator.
func (g *GeminiGenerator) Name() string {
	return "gemini"
}

// Generate implements ports.Generator. No retries: every failure surfaces
// to the caller.
func (g *GeminiGenerator) Generate(ctx context.Context, req ports.GenerateRequest) (domain.GenerationResult, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(req.Credential))
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.settings.Model)
	if g.settings.Temperature > 0 {
		model.SetTemperature(g.settings.Temperature)
	}
	if g.settings.TopP > 0 {
		model.SetTopP(g.settings.TopP)
	}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemInstruction)},
	}

	session := model.StartChat()
	for _, ex := range req.History {
		session.History = append(session.History,
			&genai.Content{Role: "user", Parts: []genai.Part{genai.Text(ex.Keyword)}},
			&genai.Content{Role: "model", Parts: []genai.Part{genai.Text(ex.Prompt)}},
		)
	}

	g.log.Debug("calling gemini", map[string]interface{}{
		"model":   g.settings.Model,
		"history": len(req.History),
	})

	resp, err := session.SendMessage(ctx, genai.Text(req.Keyword))
	if err != nil {
		return domain.GenerationResult{}, classifyErr(err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return domain.GenerationResult{}, domain.ErrEmptyResponse
	}

	return domain.GenerationResult{
		Prompt:         text,
		NegativePrompt: g.negativePrompt(),
		Model:          g.settings.Model,
	}, nil
}

func (g *GeminiGenerator) negativePrompt() string {
	if g.settings.NegativePrompt != "" {
		return g.settings.NegativePrompt
	}
	return NegativePrompt
}

// classifyErr maps transport failures onto the domain error taxonomy so the
// CLI can distinguish a bad credential from a flaky network.
func classifyErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrGenerateTimeout, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", domain.ErrAPIRejected, err)
		}
	}

	// The SDK sometimes reports auth problems without a typed error.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "api key not valid") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "quota") {
		return fmt.Errorf("%w: %v", domain.ErrAPIRejected, err)
	}

	return fmt.Errorf("gemini request failed: %w", err)
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}

var _ ports.Generator = (*GeminiGenerator)(nil)
