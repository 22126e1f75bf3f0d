package tui

import (
	"os"
	"strconv"
	"sync/atomic"

	"golang.org/x/term"
)

// EnvNonInteractive disables prompts and spinners when set to a true value.
const EnvNonInteractive = "CARGOBUMP_NONINTERACTIVE"

// ciEnvs are set by common CI systems; any of them disables prompting.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"BUILDKITE",
	"JENKINS_HOME",
	"TF_BUILD",
}

var (
	noInput atomic.Bool

	// isTerminal reports whether fd is a terminal. Tests replace it.
	isTerminal = func(fd uintptr) bool {
		return term.IsTerminal(int(fd)) //nolint:gosec // G115: fd is a small value, no overflow risk
	}
)

// SetNoInput forces every prompt and spinner off, as --no-input does.
func SetNoInput(disabled bool) {
	noInput.Store(disabled)
}

// IsInteractive reports whether prompts can be shown. huh reads keys from
// stdin and draws on stdout, so both must be terminals. It is false after
// SetNoInput(true), when $CARGOBUMP_NONINTERACTIVE is true, or under CI.
func IsInteractive() bool {
	if noInput.Load() || envTrue(EnvNonInteractive) {
		return false
	}
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func envTrue(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
