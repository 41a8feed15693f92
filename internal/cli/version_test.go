package cli

import (
	"runtime/debug"
	"testing"

	"github.com/lattice-dev/lattice/internal/testutil"
)

func TestCurrentVersionInfoWithoutBuildInfo(t *testing.T) {
	original := readBuildInfo
	defer func() { readBuildInfo = original }()
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

	info := currentVersionInfo()
	if info.Version != "devel" {
		t.Errorf("Version = %q, want devel", info.Version)
	}
	if info.ModulePath != defaultModulePath {
		t.Errorf("ModulePath = %q, want %q", info.ModulePath, defaultModulePath)
	}
	if info.GoVersion == "" || info.GOOS == "" || info.GOARCH == "" {
		t.Error("expected runtime fields to be populated")
	}
}

func TestDetectProjectRoot(t *testing.T) {
	p := testutil.NewTestProject(t).Build()

	original := rootFlag
	defer func() { rootFlag = original }()

	rootFlag = p.Path
	if got := detectProjectRoot(); got != p.Path {
		t.Errorf("detectProjectRoot() = %q, want %q", got, p.Path)
	}

	rootFlag = t.TempDir()
	if got := detectProjectRoot(); got != "" {
		t.Errorf("detectProjectRoot() outside a project = %q, want empty", got)
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "devel"},
		{"(devel)", "devel"},
		{"v1.2.3", "v1.2.3"},
	}
	for _, tt := range tests {
		if got := normalizeVersion(tt.in); got != tt.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
