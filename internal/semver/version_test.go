package semver

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"1.2.3", Version{Major: 1, Minor: 2, Patch: 3}, false},
		{"0.0.0", Version{}, false},
		{"1.0.0-alpha.1", Version{Major: 1, PreRelease: "alpha.1"}, false},
		{"1.0.0+build.5", Version{Major: 1, Build: "build.5"}, false},
		{"1.0.0-rc.1+sha.abc", Version{Major: 1, PreRelease: "rc.1", Build: "sha.abc"}, false},
		{"1.0.0-0abc", Version{Major: 1, PreRelease: "0abc"}, false},
		{"18446744073709551615.0.0", Version{Major: math.MaxUint64}, false},
		{"v1.2.3", Version{}, true},
		{"1.2", Version{}, true},
		{"01.2.3", Version{}, true},
		{"1.2.3-01", Version{}, true},
		{"1.2.3-", Version{}, true},
		{" 1.2.3", Version{}, true},
		{"1.2.x", Version{}, true},
		{"18446744073709551616.0.0", Version{}, true},
		{"", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_TooLong(t *testing.T) {
	input := "1.2.3-" + strings.Repeat("a", maxVersionLength)
	if _, err := Parse(input); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("Parse(long) error = %v, want ErrInvalidVersion", err)
	}
}

func TestVersion_String(t *testing.T) {
	for _, s := range []string{"1.2.3", "0.1.0-beta.2", "2.0.0+meta", "3.4.5-rc.1+build.9"} {
		if got := MustParse(s).String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}

func TestVersion_Bump(t *testing.T) {
	tests := []struct {
		from  string
		level Level
		want  string
	}{
		{"1.2.3", Patch, "1.2.4"},
		{"1.2.3", Minor, "1.3.0"},
		{"1.2.3", Major, "2.0.0"},
		{"0.9.9", Minor, "0.10.0"},
		{"1.2.3-rc.1", Patch, "1.2.4"},
		{"1.2.3+build", Major, "2.0.0"},
		{"0.0.0", Patch, "0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"/"+tt.level.String(), func(t *testing.T) {
			got, err := MustParse(tt.from).Bump(tt.level)
			if err != nil {
				t.Fatalf("Bump: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Bump(%s) = %s, want %s", tt.level, got, tt.want)
			}
		})
	}
}

// TestVersion_Bump_Properties checks the reset rules over a spread of inputs.
func TestVersion_Bump_Properties(t *testing.T) {
	inputs := []string{"0.0.0", "0.1.0", "1.2.3", "10.20.30", "4.0.7-alpha", "99.0.1+x"}
	for _, in := range inputs {
		v := MustParse(in)

		p, _ := v.Bump(Patch)
		if p.Major != v.Major || p.Minor != v.Minor || p.Patch != v.Patch+1 {
			t.Errorf("%s patch -> %s", in, p)
		}

		m, _ := v.Bump(Minor)
		if m.Major != v.Major || m.Minor != v.Minor+1 || m.Patch != 0 {
			t.Errorf("%s minor -> %s", in, m)
		}

		M, _ := v.Bump(Major)
		if M.Major != v.Major+1 || M.Minor != 0 || M.Patch != 0 {
			t.Errorf("%s major -> %s", in, M)
		}
	}
}

func TestVersion_Bump_Overflow(t *testing.T) {
	v := Version{Major: math.MaxUint64, Minor: math.MaxUint64, Patch: math.MaxUint64}
	for _, level := range Levels {
		if _, err := v.Bump(level); !errors.Is(err, ErrOverflow) {
			t.Errorf("Bump(%s) error = %v, want ErrOverflow", level, err)
		}
	}
	if _, err := v.Bump(Level(42)); err == nil {
		t.Error("Bump(Level(42)) expected error")
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0-alpha.2", "1.0.0-alpha.10", -1},
		{"1.0.0+a", "1.0.0+b", 0},
	}
	for _, tt := range tests {
		if got := MustParse(tt.a).Compare(MustParse(tt.b)); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"patch", Patch, false},
		{"Minor", Minor, false},
		{" MAJOR ", Major, false},
		{"pre", Patch, true},
		{"", Patch, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
