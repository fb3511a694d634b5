package bump

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocateVersionLine(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLine  int
		wantValue string
	}{
		{
			name:      "bare top level key",
			content:   "name = \"demo\"\nversion = \"1.2.3\"\n",
			wantLine:  2,
			wantValue: "1.2.3",
		},
		{
			name:      "project table",
			content:   "[project]\nname = \"demo\"\nversion = \"0.4.0\"\n",
			wantLine:  3,
			wantValue: "0.4.0",
		},
		{
			name:      "poetry table",
			content:   "[tool.poetry]\nname = \"demo\"\nversion = \"0.1.20\"\n",
			wantLine:  3,
			wantValue: "0.1.20",
		},
		{
			name:      "indented line",
			content:   "[project]\n  version = \"2.0.0\"\n",
			wantLine:  2,
			wantValue: "2.0.0",
		},
		{
			name:      "spaces around equals",
			content:   "[tool.poetry]\nversion   =   \"0.9.1\"\n",
			wantLine:  2,
			wantValue: "0.9.1",
		},
		{
			name:      "trailing comment preserved in suffix",
			content:   "[tool.poetry]\nversion = \"0.1.20\"  # release version\n",
			wantLine:  2,
			wantValue: "0.1.20",
		},
		{
			name: "dependency table skipped",
			content: "[tool.poetry.dependencies.requests]\nversion = \"2.31.0\"\n\n" +
				"[tool.poetry]\nname = \"demo\"\nversion = \"0.1.20\"\n",
			wantLine:  6,
			wantValue: "0.1.20",
		},
		{
			name: "array of tables skipped",
			content: "[[tool.poetry.source]]\nname = \"private\"\nversion = \"9.9.9\"\n\n" +
				"[tool.poetry]\nversion = \"0.3.0\"\n",
			wantLine:  6,
			wantValue: "0.3.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := locateVersionLine(tt.content)
			if loc == nil {
				t.Fatalf("locateVersionLine returned nil")
			}
			if loc.Line != tt.wantLine || loc.Value != tt.wantValue {
				t.Errorf("locateVersionLine = line %d value %q, want line %d value %q",
					loc.Line, loc.Value, tt.wantLine, tt.wantValue)
			}
			if got := loc.Prefix + loc.Value + loc.Suffix; got != strings.Split(tt.content, "\n")[loc.Line-1] {
				t.Errorf("prefix+value+suffix = %q does not reconstruct the line", got)
			}
		})
	}
}

func TestLocateVersionLineNotFound(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no version key", "[tool.poetry]\nname = \"demo\"\n"},
		{"version only in dependencies", "[tool.poetry.dependencies.requests]\nversion = \"2.31.0\"\n"},
		{"unquoted version", "[project]\nversion = 1.2\n"},
		{"single quoted version", "[tool.poetry]\nversion = '1.2.3'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if loc := locateVersionLine(tt.content); loc != nil {
				t.Errorf("locateVersionLine = %+v, want nil", loc)
			}
		})
	}
}

func TestFindManifestVersion(t *testing.T) {
	dir, err := os.MkdirTemp("", "bump_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	content := `[build-system]
requires = ["poetry-core"]

[tool.poetry]
name = "demo"
version = "0.1.20"
description = "A demo package."

[tool.poetry.dependencies]
python = "^3.11"

[tool.poetry.dependencies.requests]
version = "2.31.0"
`
	manifest := writeManifest(t, dir, content)

	loc, err := FindManifestVersion(manifest)
	if err != nil {
		t.Fatalf("FindManifestVersion failed: %v", err)
	}
	if loc.Value != "0.1.20" {
		t.Errorf("Value = %q, want %q", loc.Value, "0.1.20")
	}
	if loc.Line != 6 {
		t.Errorf("Line = %d, want 6", loc.Line)
	}
}

func TestFindManifestVersionErrors(t *testing.T) {
	dir, err := os.MkdirTemp("", "bump_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid toml",
			content: "[tool.poetry\nversion = \"1.2.3\"\n",
			wantErr: ErrUnparsableManifest,
		},
		{
			name:    "no version line",
			content: "[tool.poetry]\nname = \"demo\"\n",
			wantErr: ErrUnparsableManifest,
		},
		{
			name: "line disagrees with declared version",
			content: "[tool.poetry]\nversion = \"2.0.0\"\n\n" +
				"[project]\nversion = \"1.0.0\"\n",
			wantErr: ErrUnparsableManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifest := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".toml")
			if err := os.WriteFile(manifest, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write manifest: %v", err)
			}
			_, err := FindManifestVersion(manifest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FindManifestVersion error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := FindManifestVersion(filepath.Join(dir, "nope.toml"))
		if !errors.Is(err, ErrManifestNotFound) {
			t.Errorf("FindManifestVersion error = %v, want ErrManifestNotFound", err)
		}
	})
}

func TestReplaceManifestVersion(t *testing.T) {
	dir, err := os.MkdirTemp("", "bump_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	content := `# release manifest
[tool.poetry]
name = "demo"
version = "0.1.20"  # keep in sync with __init__.py
description = "A demo package."
`
	manifest := writeManifest(t, dir, content)

	loc, err := FindManifestVersion(manifest)
	if err != nil {
		t.Fatalf("FindManifestVersion failed: %v", err)
	}
	if err := ReplaceManifestVersion(manifest, loc, "0.1.21"); err != nil {
		t.Fatalf("ReplaceManifestVersion failed: %v", err)
	}

	want := `# release manifest
[tool.poetry]
name = "demo"
version = "0.1.21"  # keep in sync with __init__.py
description = "A demo package."
`
	got, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	if string(got) != want {
		t.Errorf("manifest after replace:\n%q\nwant:\n%q", got, want)
	}
}

func TestReplaceManifestVersionStaleLocation(t *testing.T) {
	dir, err := os.MkdirTemp("", "bump_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	manifest := writeManifest(t, dir, "[tool.poetry]\nversion = \"0.1.20\"\n")

	loc, err := FindManifestVersion(manifest)
	if err != nil {
		t.Fatalf("FindManifestVersion failed: %v", err)
	}

	// Rewrite the file behind the location's back.
	rewritten := "[tool.poetry]\nname = \"demo\"\nversion = \"0.1.20\"\n"
	if err := os.WriteFile(manifest, []byte(rewritten), 0644); err != nil {
		t.Fatalf("failed to rewrite manifest: %v", err)
	}

	err = ReplaceManifestVersion(manifest, loc, "0.1.21")
	if !errors.Is(err, ErrUnparsableManifest) {
		t.Fatalf("ReplaceManifestVersion error = %v, want ErrUnparsableManifest", err)
	}

	got, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	if string(got) != rewritten {
		t.Errorf("stale replace modified the manifest: %q", got)
	}
}

func TestDeclaredVersionPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "project wins over poetry",
			content: "[project]\nversion = \"1.0.0\"\n\n[tool.poetry]\nversion = \"1.0.0\"\n",
			want:    "1.0.0",
		},
		{
			name:    "poetry when no project",
			content: "[tool.poetry]\nversion = \"0.1.20\"\n",
			want:    "0.1.20",
		},
		{
			name:    "bare key as fallback",
			content: "version = \"3.2.1\"\n",
			want:    "3.2.1",
		},
		{
			name:    "none declared",
			content: "[tool.black]\nline-length = 100\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := declaredVersion([]byte(tt.content))
			if err != nil {
				t.Fatalf("declaredVersion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("declaredVersion = %q, want %q", got, tt.want)
			}
		})
	}
}
