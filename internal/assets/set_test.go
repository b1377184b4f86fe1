package assets

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeAssetDir creates dir/styles and dir/templates holding files.
func writeAssetDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestEmbedded_Load(t *testing.T) {
	t.Parallel()

	set := Embedded()
	tests := []struct {
		name    string
		kind    Kind
		asset   string
		want    string
		wantErr error
	}{
		{"default style", Style, "default", ".md-heading", nil},
		{"dark style", Style, "dark", ".md-preview", nil},
		{"page template", Template, "page", "{{.Body}}", nil},
		{"missing style", Style, "neon", "", ErrStyleNotFound},
		{"missing template", Template, "slides", "", ErrTemplateNotFound},
		{"traversal", Style, "../templates/page", "", ErrInvalidAssetName},
		{"empty", Template, "", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := set.Load(tt.kind, tt.asset)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load(%s, %q) error = %v, want %v", tt.kind, tt.asset, err, tt.wantErr)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Load(%s, %q) missing %q", tt.kind, tt.asset, tt.want)
			}
		})
	}
}

func TestEmbedded_Names(t *testing.T) {
	t.Parallel()

	if got, want := Styles(), []string{"dark", "default"}; !slices.Equal(got, want) {
		t.Errorf("Styles() = %v, want %v", got, want)
	}
	if got, want := Templates(), []string{"page"}; !slices.Equal(got, want) {
		t.Errorf("Templates() = %v, want %v", got, want)
	}
	for _, name := range Styles() {
		if _, err := LoadStyle(name); err != nil {
			t.Errorf("LoadStyle(%q) error = %v", name, err)
		}
	}
	if _, err := LoadTemplate(DefaultTemplateName); err != nil {
		t.Errorf("LoadTemplate(%q) error = %v", DefaultTemplateName, err)
	}
}

func TestOpenDir(t *testing.T) {
	t.Parallel()

	t.Run("loads and lists", func(t *testing.T) {
		t.Parallel()

		dir := writeAssetDir(t, map[string]string{
			"styles/paper.css":     "body { color: #111; }",
			"styles/notes.txt":     "ignored",
			"templates/bare.html":  "{{.Body}}",
			"styles/sub/deep.css":  "nested files are not assets",
			"templates/x.y.html":   "dotted names are not assets",
			"templates/print.html": "<main>{{.Body}}</main>",
		})
		set, err := OpenDir(dir)
		if err != nil {
			t.Fatalf("OpenDir() error = %v", err)
		}
		t.Cleanup(func() { _ = set.Close() })

		css, err := set.LoadStyle("paper")
		if err != nil || css != "body { color: #111; }" {
			t.Errorf("LoadStyle(paper) = %q, %v", css, err)
		}
		if got, want := set.Names(Style), []string{"paper"}; !slices.Equal(got, want) {
			t.Errorf("Names(Style) = %v, want %v", got, want)
		}
		if got, want := set.Names(Template), []string{"bare", "print"}; !slices.Equal(got, want) {
			t.Errorf("Names(Template) = %v, want %v", got, want)
		}
		if _, err := set.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("missing kind directory", func(t *testing.T) {
		t.Parallel()

		set, err := OpenDir(t.TempDir())
		if err != nil {
			t.Fatalf("OpenDir() error = %v", err)
		}
		t.Cleanup(func() { _ = set.Close() })

		if names := set.Names(Style); len(names) != 0 {
			t.Errorf("Names(Style) = %v, want none", names)
		}
		if _, err := set.LoadStyle("default"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid directories", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file.css")
		if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		for _, dir := range []string{"", filepath.Join(t.TempDir(), "absent"), file} {
			if _, err := OpenDir(dir); !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("OpenDir(%q) error = %v, want ErrInvalidBasePath", dir, err)
			}
		}
	})
}

func TestOpenDir_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := writeAssetDir(t, map[string]string{"secret.css": "secret"})
	dir := writeAssetDir(t, map[string]string{"styles/ok.css": "ok"})
	link := filepath.Join(dir, "styles", "leak.css")
	if err := os.Symlink(filepath.Join(outside, "secret.css"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	set, err := OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir() error = %v", err)
	}
	t.Cleanup(func() { _ = set.Close() })

	got, err := set.LoadStyle("leak")
	if err == nil {
		t.Fatalf("LoadStyle(leak) = %q, want an error", got)
	}
	if !errors.Is(err, ErrAssetRead) {
		t.Errorf("LoadStyle(leak) error = %v, want ErrAssetRead", err)
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
	}{
		{"default", true},
		{"my-style_2", true},
		{strings.Repeat("a", maxNameLength), true},
		{strings.Repeat("a", maxNameLength+1), false},
		{"", false},
		{"../etc/passwd", false},
		{"a/b", false},
		{`a\b`, false},
		{"page.html", false},
		{"two words", false},
		{"tab\tname", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.name)
			if tt.valid && err != nil {
				t.Errorf("ValidateName(%q) error = %v", tt.name, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateName(%q) error = %v, want ErrInvalidAssetName", tt.name, err)
			}
		})
	}
}
