package md2site_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2site "github.com/alnah/go-md2site"
)

// writeFile is a test helper that writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func newBuilder(t *testing.T, opts ...md2site.Option) *md2site.Builder {
	t.Helper()
	b, err := md2site.NewBuilder(opts...)
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}
	return b
}

// ---------------------------------------------------------------------------
// TestBuilder_Build - full pipeline
// ---------------------------------------------------------------------------

func TestBuilder_Build_ExactSubstitution(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := writeFile(t, dir, "news.md", []byte("# Hello"))
	tmpl := writeFile(t, dir, "template.html", []byte("<body>{{.News}}</body>"))
	style := writeFile(t, dir, "style.css", []byte("body { margin: 0; }\n"))
	outDir := filepath.Join(dir, "output")

	result, err := newBuilder(t).Build(context.Background(), md2site.Input{
		SourcePath:     source,
		TemplatePath:   tmpl,
		StylesheetPath: style,
		OutputDir:      outDir,
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := "<body><h1>Hello</h1>\n</body>"
	page, err := os.ReadFile(result.PagePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(page) != want {
		t.Errorf("page = %q, want %q", page, want)
	}
	if !bytes.Equal(result.PageHTML, page) {
		t.Error("result.PageHTML differs from the written page")
	}
	if filepath.Base(result.PagePath) != md2site.DefaultPageName {
		t.Errorf("page name = %q, want %q", filepath.Base(result.PagePath), md2site.DefaultPageName)
	}
}

func TestBuilder_Build_StylesheetByteIdentical(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := writeFile(t, dir, "news.md", []byte("# Hello"))
	styleContent := []byte("/* \x00 binary-ish */ body { color: #111; }\n")
	style := writeFile(t, dir, "style.css", styleContent)
	outDir := filepath.Join(dir, "output")

	result, err := newBuilder(t).Build(context.Background(), md2site.Input{
		SourcePath:     source,
		StylesheetPath: style,
		OutputDir:      outDir,
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	copied, err := os.ReadFile(result.StylesheetPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(copied, styleContent) {
		t.Error("stylesheet copy is not byte-identical to the source")
	}
	if filepath.Base(result.StylesheetPath) != md2site.StylesheetName {
		t.Errorf("stylesheet name = %q, want %q", filepath.Base(result.StylesheetPath), md2site.StylesheetName)
	}
}

func TestBuilder_Build_EmbeddedDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := writeFile(t, dir, "news.md", []byte("# Release 2.0\n\nShipped.\n"))
	outDir := filepath.Join(dir, "output")

	result, err := newBuilder(t).Build(context.Background(), md2site.Input{
		SourcePath: source,
		OutputDir:  outDir,
		SiteTitle:  "Project News",
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	page := string(result.PageHTML)
	if !strings.Contains(page, "<h1>Release 2.0</h1>") {
		t.Errorf("page missing converted fragment:\n%s", page)
	}
	if !strings.Contains(page, "<title>Project News</title>") {
		t.Errorf("page missing site title:\n%s", page)
	}

	style, err := os.ReadFile(result.StylesheetPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(style), "body") {
		t.Error("default stylesheet not written")
	}
}

func TestBuilder_Build_FrontMatter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "---\ntitle: August Update\ndate: \"2026-08-24\"\n---\n# Hello\n"
	source := writeFile(t, dir, "news.md", []byte(content))
	outDir := filepath.Join(dir, "output")

	result, err := newBuilder(t).Build(context.Background(), md2site.Input{
		SourcePath: source,
		OutputDir:  outDir,
		SiteTitle:  "ignored when front matter has a title",
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if result.Title != "August Update" {
		t.Errorf("result.Title = %q, want %q", result.Title, "August Update")
	}
	page := string(result.PageHTML)
	if !strings.Contains(page, "<title>August Update</title>") {
		t.Errorf("page missing front matter title:\n%s", page)
	}
	if !strings.Contains(page, "2026-08-24") {
		t.Errorf("page missing front matter date:\n%s", page)
	}
}

func TestBuilder_Build_Idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := writeFile(t, dir, "news.md", []byte("# Hello\n\nStable output.\n"))
	outDir := filepath.Join(dir, "output")

	b := newBuilder(t)
	input := md2site.Input{SourcePath: source, OutputDir: outDir}

	first, err := b.Build(context.Background(), input)
	if err != nil {
		t.Fatalf("first Build() error: %v", err)
	}
	firstPage, err := os.ReadFile(first.PagePath)
	if err != nil {
		t.Fatal(err)
	}
	firstStyle, err := os.ReadFile(first.StylesheetPath)
	if err != nil {
		t.Fatal(err)
	}

	second, err := b.Build(context.Background(), input)
	if err != nil {
		t.Fatalf("second Build() error: %v", err)
	}
	secondPage, err := os.ReadFile(second.PagePath)
	if err != nil {
		t.Fatal(err)
	}
	secondStyle, err := os.ReadFile(second.StylesheetPath)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(firstPage, secondPage) {
		t.Error("page output differs between identical runs")
	}
	if !bytes.Equal(firstStyle, secondStyle) {
		t.Error("stylesheet output differs between identical runs")
	}
}

func TestBuilder_Build_CustomPageName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := writeFile(t, dir, "news.md", []byte("# Hello"))
	outDir := filepath.Join(dir, "output")

	result, err := newBuilder(t).Build(context.Background(), md2site.Input{
		SourcePath: source,
		OutputDir:  outDir,
		PageName:   "news.html",
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if filepath.Base(result.PagePath) != "news.html" {
		t.Errorf("page name = %q, want %q", filepath.Base(result.PagePath), "news.html")
	}
}

func TestBuilder_Build_WithAssetPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetDir := filepath.Join(dir, "assets")
	if err := os.MkdirAll(filepath.Join(assetDir, "templates"), 0o750); err != nil {
		t.Fatal(err)
	}
	custom := "<article>{{.News}}</article>"
	writeFile(t, filepath.Join(assetDir, "templates"), "page.html", []byte(custom))

	source := writeFile(t, dir, "news.md", []byte("# Hello"))
	outDir := filepath.Join(dir, "output")

	b := newBuilder(t, md2site.WithAssetPath(assetDir))
	result, err := b.Build(context.Background(), md2site.Input{
		SourcePath: source,
		OutputDir:  outDir,
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := "<article><h1>Hello</h1>\n</article>"
	if string(result.PageHTML) != want {
		t.Errorf("page = %q, want %q", result.PageHTML, want)
	}
}

func TestNewBuilder_InvalidAssetPath(t *testing.T) {
	t.Parallel()

	_, err := md2site.NewBuilder(md2site.WithAssetPath(filepath.Join(t.TempDir(), "missing")))
	if !errors.Is(err, md2site.ErrInvalidAssetPath) {
		t.Errorf("NewBuilder() error = %v, want %v", err, md2site.ErrInvalidAssetPath)
	}
}

// ---------------------------------------------------------------------------
// TestBuilder_Build_Errors - failure modes
// ---------------------------------------------------------------------------

func TestBuilder_Build_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) md2site.Input
		wantErr error
	}{
		{
			name: "no source path",
			setup: func(t *testing.T, dir string) md2site.Input {
				return md2site.Input{OutputDir: filepath.Join(dir, "output")}
			},
			wantErr: md2site.ErrNoSourcePath,
		},
		{
			name: "missing source file",
			setup: func(t *testing.T, dir string) md2site.Input {
				return md2site.Input{
					SourcePath: filepath.Join(dir, "missing.md"),
					OutputDir:  filepath.Join(dir, "output"),
				}
			},
			wantErr: md2site.ErrReadSource,
		},
		{
			name: "empty source",
			setup: func(t *testing.T, dir string) md2site.Input {
				return md2site.Input{
					SourcePath: writeFile(t, dir, "news.md", []byte("   \n\n")),
					OutputDir:  filepath.Join(dir, "output"),
				}
			},
			wantErr: md2site.ErrEmptySource,
		},
		{
			name: "missing template file",
			setup: func(t *testing.T, dir string) md2site.Input {
				return md2site.Input{
					SourcePath:   writeFile(t, dir, "news.md", []byte("# Hello")),
					TemplatePath: filepath.Join(dir, "missing.html"),
					OutputDir:    filepath.Join(dir, "output"),
				}
			},
			wantErr: md2site.ErrReadTemplate,
		},
		{
			name: "malformed template",
			setup: func(t *testing.T, dir string) md2site.Input {
				return md2site.Input{
					SourcePath:   writeFile(t, dir, "news.md", []byte("# Hello")),
					TemplatePath: writeFile(t, dir, "template.html", []byte("<body>{{.News</body>")),
					OutputDir:    filepath.Join(dir, "output"),
				}
			},
			wantErr: md2site.ErrTemplateParse,
		},
		{
			name: "template references unknown field",
			setup: func(t *testing.T, dir string) md2site.Input {
				return md2site.Input{
					SourcePath:   writeFile(t, dir, "news.md", []byte("# Hello")),
					TemplatePath: writeFile(t, dir, "template.html", []byte("{{.Nope}}")),
					OutputDir:    filepath.Join(dir, "output"),
				}
			},
			wantErr: md2site.ErrTemplateRender,
		},
		{
			name: "malformed front matter",
			setup: func(t *testing.T, dir string) md2site.Input {
				return md2site.Input{
					SourcePath: writeFile(t, dir, "news.md", []byte("---\ntitle: [oops\n---\nbody\n")),
					OutputDir:  filepath.Join(dir, "output"),
				}
			},
			wantErr: md2site.ErrFrontMatter,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			input := tt.setup(t, dir)

			_, err := newBuilder(t).Build(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}

			// A failed build must not leave output behind.
			if input.OutputDir != "" {
				if _, statErr := os.Stat(input.OutputDir); !os.IsNotExist(statErr) {
					t.Errorf("output directory %s exists after failed build", input.OutputDir)
				}
			}
		})
	}
}

func TestBuilder_Build_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := writeFile(t, dir, "news.md", []byte("# Hello"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newBuilder(t).Build(ctx, md2site.Input{
		SourcePath: source,
		OutputDir:  filepath.Join(dir, "output"),
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want %v", err, context.Canceled)
	}
}
