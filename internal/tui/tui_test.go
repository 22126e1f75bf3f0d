package tui

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestCargobumpTheme(t *testing.T) {
	theme := cargobumpTheme()
	if theme == nil {
		t.Fatal("cargobumpTheme() returned nil")
	}

	if !theme.Focused.Title.GetBold() {
		t.Error("Focused.Title should be bold")
	}
	if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("Focused.Base should have rounded border")
	}

	_, fRight, _, fLeft := theme.Focused.FocusedButton.GetPadding()
	_, bRight, _, bLeft := theme.Focused.BlurredButton.GetPadding()
	if fLeft != 1 || fRight != 1 {
		t.Errorf("FocusedButton padding = %d/%d, want 1/1", fLeft, fRight)
	}
	if fLeft != bLeft || fRight != bRight {
		t.Error("FocusedButton and BlurredButton should have consistent padding")
	}

	if theme.Help.ShortKey.Render("key") == "" {
		t.Error("Help.ShortKey should render non-empty output")
	}
}

func TestPaletteHasBothModes(t *testing.T) {
	for name, c := range map[string]lipgloss.AdaptiveColor{
		"rustPrimary":     rustPrimary,
		"rustAccent":      rustAccent,
		"textStrong":      textStrong,
		"textNormal":      textNormal,
		"textMuted":       textMuted,
		"borderFocused":   borderFocused,
		"buttonText":      buttonText,
		"buttonBgBlurred": buttonBgBlurred,
	} {
		if c.Light == "" || c.Dark == "" {
			t.Errorf("%s missing a light or dark color", name)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ValidThemes {
		if GetTheme(name) == nil {
			t.Errorf("GetTheme(%q) = nil", name)
		}
		if !IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = false", name)
		}
	}
	if GetTheme("neon") != nil {
		t.Error("GetTheme(neon) should be nil")
	}
	if IsValidTheme("") {
		t.Error("IsValidTheme(\"\") should be false")
	}
}

func TestSetTheme(t *testing.T) {
	defer resetTheme()

	SetTheme("dracula")
	if currentTheme == nil {
		t.Error("SetTheme(dracula) left currentTheme nil")
	}

	SetTheme("")
	if currentTheme != nil {
		t.Error("SetTheme(\"\") should reset to default")
	}

	SetTheme("invalid-theme")
	if currentTheme != nil {
		t.Error("unknown theme should fall back to default")
	}
	if currentThemeOrDefault() == nil {
		t.Error("currentThemeOrDefault() returned nil")
	}
}

func TestWithSpinner_NonInteractive(t *testing.T) {
	t.Setenv("CI", "true")

	boom := errors.New("boom")
	called := false
	err := WithSpinner(context.Background(), "working", func(ctx context.Context) error {
		called = true
		return boom
	})
	if !called {
		t.Error("fn was not called")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

// fakeTerminal makes stdin and stdout look like terminals and clears CI
// markers, so IsInteractive depends only on the input under test.
func fakeTerminal(t *testing.T, stdin, stdout bool) {
	t.Helper()
	for _, env := range ciEnvs {
		t.Setenv(env, "")
	}
	t.Setenv(EnvNonInteractive, "")

	origTerm := isTerminal
	t.Cleanup(func() {
		isTerminal = origTerm
		SetNoInput(false)
	})
	isTerminal = func(fd uintptr) bool {
		switch fd {
		case os.Stdin.Fd():
			return stdin
		case os.Stdout.Fd():
			return stdout
		}
		return false
	}
}

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		name          string
		stdin, stdout bool
		env           map[string]string
		noInput       bool
		want          bool
	}{
		{name: "both terminals", stdin: true, stdout: true, want: true},
		{name: "stdin piped", stdin: false, stdout: true, want: false},
		{name: "stdout redirected", stdin: true, stdout: false, want: false},
		{name: "CI", stdin: true, stdout: true, env: map[string]string{"GITHUB_ACTIONS": "true"}, want: false},
		{name: "env opt-out", stdin: true, stdout: true, env: map[string]string{EnvNonInteractive: "1"}, want: false},
		{name: "env false keeps prompts", stdin: true, stdout: true, env: map[string]string{EnvNonInteractive: "false"}, want: true},
		{name: "no-input flag", stdin: true, stdout: true, noInput: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeTerminal(t, tt.stdin, tt.stdout)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			SetNoInput(tt.noInput)

			if got := IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithSpinner_WaitsForFnAfterCancel(t *testing.T) {
	fakeTerminal(t, true, true)

	origSpin := runSpinner
	t.Cleanup(func() { runSpinner = origSpin })
	// The spinner stops as soon as ctx is cancelled, before fn is done.
	runSpinner = func(ctx context.Context, title string, wait func(context.Context) error) error {
		<-ctx.Done()
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	var result string
	err := WithSpinner(ctx, "working", func(ctx context.Context) error {
		cancel()
		time.Sleep(20 * time.Millisecond)
		result = "written"
		return ctx.Err()
	})

	if result != "written" {
		t.Errorf("result = %q, want fn to finish before WithSpinner returns", result)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestWithSpinner_SpinnerError(t *testing.T) {
	fakeTerminal(t, true, true)

	origSpin := runSpinner
	t.Cleanup(func() { runSpinner = origSpin })
	spinFail := errors.New("no tty")
	runSpinner = func(ctx context.Context, title string, wait func(context.Context) error) error {
		if err := wait(ctx); err != nil {
			return err
		}
		return spinFail
	}

	err := WithSpinner(context.Background(), "working", func(ctx context.Context) error { return nil })
	if !errors.Is(err, spinFail) {
		t.Errorf("error = %v, want spinner error", err)
	}
}

func TestThemeRegistryMatchesValidThemes(t *testing.T) {
	if len(themes) != len(ValidThemes) {
		t.Errorf("len(themes) = %d, len(ValidThemes) = %d", len(themes), len(ValidThemes))
	}
}
