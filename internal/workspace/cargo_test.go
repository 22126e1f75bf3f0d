package workspace

import (
	"context"
	"errors"
	"slices"
	"testing"
)

const metadataJSON = `{
  "packages": [
    {"name": "core", "version": "0.1.0", "id": "path+file:///ws/core#0.1.0", "manifest_path": "/ws/core/Cargo.toml"},
    {"name": "cli", "version": "1.4.0", "id": "path+file:///ws/cli#1.4.0", "manifest_path": "/ws/cli/Cargo.toml"},
    {"name": "serde", "version": "1.0.0", "id": "registry+https://github.com/rust-lang/crates.io-index#serde@1.0.0", "manifest_path": "/home/u/.cargo/registry/serde/Cargo.toml"}
  ],
  "workspace_members": ["path+file:///ws/core#0.1.0", "path+file:///ws/cli#1.4.0"],
  "version": 1
}`

func TestCargoInspector_Inspect(t *testing.T) {
	var gotDir, gotName string
	var gotArgs []string
	run := func(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
		gotDir, gotName, gotArgs = dir, name, args
		return []byte(metadataJSON), nil
	}

	c := NewCargoInspector(WithCommandRunner(run), WithCargoBinary("/opt/cargo"))
	pkgs, err := c.Inspect(context.Background(), "/ws")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if gotDir != "/ws" || gotName != "/opt/cargo" {
		t.Errorf("ran %q in %q", gotName, gotDir)
	}
	if !slices.Contains(gotArgs, "--no-deps") || gotArgs[0] != "metadata" {
		t.Errorf("args = %v", gotArgs)
	}

	if len(pkgs) != 2 {
		t.Fatalf("len(pkgs) = %d, want 2 (registry package filtered)", len(pkgs))
	}
	if pkgs[0].Name != "core" || pkgs[1].Name != "cli" {
		t.Errorf("order = %s, %s; want core, cli", pkgs[0].Name, pkgs[1].Name)
	}
	if pkgs[1].ManifestPath != "/ws/cli/Cargo.toml" || pkgs[1].Version != "1.4.0" {
		t.Errorf("pkgs[1] = %+v", pkgs[1])
	}
}

func TestCargoInspector_Errors(t *testing.T) {
	boom := errors.New("cargo metadata failed: error: could not find `Cargo.toml`")

	tests := []struct {
		name string
		out  string
		err  error
	}{
		{name: "runner error", err: boom},
		{name: "bad json", out: "{not json"},
		{name: "missing manifest path", out: `{"packages":[{"name":"x","id":"x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := func(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
				return []byte(tt.out), tt.err
			}
			_, err := NewCargoInspector(WithCommandRunner(run)).Inspect(context.Background(), "/ws")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestExecRunner_NotFound(t *testing.T) {
	_, err := execRunner(context.Background(), t.TempDir(), "cargobump-definitely-missing-binary", "metadata")
	if !errors.Is(err, ErrCargoNotFound) {
		t.Errorf("error = %v, want ErrCargoNotFound", err)
	}
}

func TestAutoInspector(t *testing.T) {
	fallbackPkgs := []Package{{Name: "native", ID: "n", ManifestPath: "/ws/Cargo.toml"}}
	fallback := InspectorFunc(func(ctx context.Context, root string) ([]Package, error) {
		return fallbackPkgs, nil
	})

	t.Run("falls back when cargo is missing", func(t *testing.T) {
		primary := InspectorFunc(func(ctx context.Context, root string) ([]Package, error) {
			return nil, ErrCargoNotFound
		})
		pkgs, err := NewAutoInspector(primary, fallback, nil).Inspect(context.Background(), "/ws")
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if len(pkgs) != 1 || pkgs[0].Name != "native" {
			t.Errorf("pkgs = %+v", pkgs)
		}
	})

	t.Run("propagates other cargo errors", func(t *testing.T) {
		boom := errors.New("invalid workspace")
		primary := InspectorFunc(func(ctx context.Context, root string) ([]Package, error) {
			return nil, boom
		})
		if _, err := NewAutoInspector(primary, fallback, nil).Inspect(context.Background(), "/ws"); !errors.Is(err, boom) {
			t.Errorf("error = %v, want %v", err, boom)
		}
	})
}
