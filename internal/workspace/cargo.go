package workspace

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/indaco/cargobump/internal/core"
	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid json")

// CommandRunner runs an external command in dir and returns its stdout.
type CommandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// CargoInspector discovers packages by running `cargo metadata`.
type CargoInspector struct {
	cargo   string
	run     CommandRunner
	timeout time.Duration
	logger  *slog.Logger
}

// CargoOption configures a CargoInspector.
type CargoOption func(*CargoInspector)

// WithCargoBinary overrides the cargo executable (default "cargo").
func WithCargoBinary(path string) CargoOption {
	return func(c *CargoInspector) {
		if path != "" {
			c.cargo = path
		}
	}
}

// WithCommandRunner replaces the process runner, mainly for tests.
func WithCommandRunner(run CommandRunner) CargoOption {
	return func(c *CargoInspector) {
		c.run = run
	}
}

// WithTimeout bounds a single cargo invocation.
func WithTimeout(d time.Duration) CargoOption {
	return func(c *CargoInspector) {
		c.timeout = d
	}
}

// WithCargoLogger sets the logger used for debug output.
func WithCargoLogger(logger *slog.Logger) CargoOption {
	return func(c *CargoInspector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCargoInspector creates a CargoInspector.
func NewCargoInspector(opts ...CargoOption) *CargoInspector {
	c := &CargoInspector{
		cargo:   "cargo",
		run:     execRunner,
		timeout: core.TimeoutCargo,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Inspect runs `cargo metadata --no-deps` in root. Only workspace members are
// returned, so manifests of registry dependencies are never touched.
func (c *CargoInspector) Inspect(ctx context.Context, root string) ([]Package, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{"metadata", "--format-version", "1", "--no-deps"}
	c.logger.Debug("running cargo", "dir", root, "args", strings.Join(args, " "))

	out, err := c.run(ctx, root, c.cargo, args...)
	if err != nil {
		return nil, err
	}
	return decodeMetadata(out)
}

// decodeMetadata reads the packages and workspace_members fields of
// `cargo metadata --format-version 1` output.
func decodeMetadata(data []byte) ([]Package, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to decode cargo metadata: %w", errInvalidJSON)
	}
	meta := gjson.ParseBytes(data)

	members := make(map[string]bool)
	for _, id := range meta.Get("workspace_members").Array() {
		members[id.String()] = true
	}

	var packages []Package
	for _, p := range meta.Get("packages").Array() {
		id := p.Get("id").String()
		if len(members) > 0 && !members[id] {
			continue
		}
		name := p.Get("name").String()
		manifestPath := p.Get("manifest_path").String()
		if id == "" || manifestPath == "" {
			return nil, fmt.Errorf("cargo metadata: package %q has no id or manifest path", name)
		}
		packages = append(packages, Package{
			Name:         name,
			ID:           PackageID(id),
			ManifestPath: manifestPath,
			Version:      p.Get("version").String(),
		})
	}
	return packages, nil
}

// execRunner is the production CommandRunner.
func execRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrCargoNotFound, err)
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s %s: %w", name, args[0], ctx.Err())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s %s failed: %w", name, args[0], err)
		}
		return nil, fmt.Errorf("%s %s failed: %s: %w", name, args[0], msg, err)
	}
	return stdout.Bytes(), nil
}
