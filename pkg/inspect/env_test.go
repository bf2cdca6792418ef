package inspect_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/daveycodez/better-auth-instantdb/pkg/inspect"
)

func TestNewFromEnvModes(t *testing.T) {
	tests := []struct {
		mode string
		want inspect.Path
	}{
		{mode: "", want: inspect.PathGeneric},
		{mode: "auto", want: inspect.PathGeneric},
		{mode: "rich", want: inspect.PathRich},
		{mode: " Generic ", want: inspect.PathGeneric},
	}
	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			t.Setenv("INSPECT_RENDER_MODE", tc.mode)
			t.Setenv("INSPECT_COLOR", "")
			insp, path, err := inspect.NewFromEnv(inspect.WithOutput(nonTerminal(t)))
			if err != nil {
				t.Fatalf("NewFromEnv: %v", err)
			}
			if path != tc.want || insp.Path() != tc.want {
				t.Fatalf("expected %s path, got %s", tc.want, path)
			}
		})
	}
}

func TestNewFromEnvInvalidMode(t *testing.T) {
	t.Setenv("INSPECT_RENDER_MODE", "holographic")

	if _, _, err := inspect.NewFromEnv(); !errors.Is(err, inspect.ErrUnsupportedMode) {
		t.Fatalf("expected ErrUnsupportedMode, got %v", err)
	}
}

func TestNewFromEnvInvalidColor(t *testing.T) {
	t.Setenv("INSPECT_RENDER_MODE", "rich")
	t.Setenv("INSPECT_COLOR", "sometimes")

	if _, _, err := inspect.NewFromEnv(); !errors.Is(err, inspect.ErrUnsupportedMode) {
		t.Fatalf("expected ErrUnsupportedMode, got %v", err)
	}
}

func TestNewFromEnvColorAndStyle(t *testing.T) {
	t.Setenv("INSPECT_RENDER_MODE", "rich")
	t.Setenv("INSPECT_COLOR", "always")
	t.Setenv("INSPECT_STYLE", "github")

	insp, _, err := inspect.NewFromEnv(inspect.WithOutput(nonTerminal(t)))
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if out := insp.Pretty([]string{"x"}); !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected colorized output, got %q", out)
	}

	t.Setenv("INSPECT_COLOR", "never")
	insp, _, err = inspect.NewFromEnv(inspect.WithOutput(nonTerminal(t)))
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if out := insp.Pretty([]string{"x"}); !strings.Contains(out, `"x"`) || strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected uncolored output %q", out)
	}
}

func TestPrettyPrintDefault(t *testing.T) {
	generic, err := inspect.New(inspect.ModeGeneric)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	inspect.SetDefault(generic)

	if got := inspect.PrettyPrint(map[string]any{"a": 1}); got != "{\n  \"a\": 1\n}" {
		t.Fatalf("unexpected output %q", got)
	}
	if got := inspect.PrettyPrint(nil); got != "null" {
		t.Fatalf("unexpected nil output %q", got)
	}
	if inspect.Default() != generic {
		t.Fatalf("SetDefault did not replace the package inspector")
	}
}

func TestNewFromEnvModeOption(t *testing.T) {
	t.Setenv("INSPECT_RENDER_MODE", "holographic")
	t.Setenv("INSPECT_COLOR", "")

	_, path, err := inspect.NewFromEnv(inspect.WithMode(inspect.ModeRich), inspect.WithOutput(nonTerminal(t)))
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if path != inspect.PathRich {
		t.Fatalf("expected rich path, got %s", path)
	}
}
