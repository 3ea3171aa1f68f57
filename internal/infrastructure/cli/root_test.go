package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mizuki-dev/animeprompt/internal/domain"
)

func TestRootCmdNoArgsFailsWithNoPrompt(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ANIMEPROMPT_CONFIG", filepath.Join(home, "config.yaml"))

	root, err := NewRootCmd(context.Background(), Options{})
	if err != nil {
		t.Fatalf("NewRootCmd() error = %v", err)
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{})

	err = root.ExecuteContext(context.Background())
	if !errors.Is(err, domain.ErrNoPrompt) {
		t.Fatalf("Execute() with no args error = %v, want ErrNoPrompt", err)
	}
	if out.Len() == 0 {
		t.Error("usage text was not printed before the error")
	}
}
