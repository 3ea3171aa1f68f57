package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"

	"github.com/mizuki-dev/animeprompt/internal/domain"
)

func TestClassifyErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "deadline maps to timeout",
			err:  fmt.Errorf("rpc failed: %w", context.DeadlineExceeded),
			want: domain.ErrGenerateTimeout,
		},
		{
			name: "401 maps to rejected",
			err:  &googleapi.Error{Code: http.StatusUnauthorized, Message: "unauthorized"},
			want: domain.ErrAPIRejected,
		},
		{
			name: "429 maps to rejected",
			err:  &googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota exceeded"},
			want: domain.ErrAPIRejected,
		},
		{
			name: "invalid key message maps to rejected",
			err:  errors.New("googleapi: Error: API key not valid. Please pass a valid API key."),
			want: domain.ErrAPIRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyErr(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyErr(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyErrLeavesNetworkErrorsGeneric(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	got := classifyErr(err)
	if errors.Is(got, domain.ErrAPIRejected) || errors.Is(got, domain.ErrGenerateTimeout) {
		t.Errorf("classifyErr(%v) misclassified as %v", err, got)
	}
	if !errors.Is(got, err) {
		t.Errorf("classifyErr(%v) lost the original error: %v", err, got)
	}
}

func TestNegativePromptOverride(t *testing.T) {
	gen := NewGeminiGenerator(domain.GenerationSettings{}, nil)
	if gen.negativePrompt() != NegativePrompt {
		t.Error("expected built-in negative prompt by default")
	}

	gen = NewGeminiGenerator(domain.GenerationSettings{NegativePrompt: "blurry"}, nil)
	if gen.negativePrompt() != "blurry" {
		t.Errorf("got %q, want config override", gen.negativePrompt())
	}
}
