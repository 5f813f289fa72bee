package pipeline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML - Markdown to HTML fragment conversion
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()

	tests := []struct {
		name     string
		markdown string
		want     string // exact fragment
	}{
		{
			name:     "heading",
			markdown: "# Hello",
			want:     "<h1>Hello</h1>\n",
		},
		{
			name:     "emphasis",
			markdown: "*hi*",
			want:     "<p><em>hi</em></p>\n",
		},
		{
			name:     "strong",
			markdown: "**bold**",
			want:     "<p><strong>bold</strong></p>\n",
		},
		{
			name:     "strikethrough",
			markdown: "~~gone~~",
			want:     "<p><del>gone</del></p>\n",
		},
		{
			name:     "link",
			markdown: "[site](https://example.com)",
			want:     "<p><a href=\"https://example.com\">site</a></p>\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML(%q) error: %v", tt.markdown, err)
			}
			if got != tt.want {
				t.Errorf("ToHTML(%q) = %q, want %q", tt.markdown, got, tt.want)
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_NoRawMarkers(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()

	markdown := "# Title\n\nSome *emphasis* and **strong** text.\n\n- item one\n- item two\n"
	got, err := conv.ToHTML(context.Background(), markdown)
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}

	for _, marker := range []string{"# ", "*emphasis*", "**strong**", "- item"} {
		if strings.Contains(got, marker) {
			t.Errorf("fragment still contains raw Markdown marker %q:\n%s", marker, got)
		}
	}
}

func TestGoldmarkConverter_ToHTML_Table(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()

	markdown := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	got, err := conv.ToHTML(context.Background(), markdown)
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>1</td>") {
		t.Errorf("GFM table not rendered:\n%s", got)
	}
}

func TestGoldmarkConverter_ToHTML_CodeHighlighting(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()

	markdown := "```go\nfmt.Println(\"hi\")\n```\n"
	got, err := conv.ToHTML(context.Background(), markdown)
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if !strings.Contains(got, "chroma") {
		t.Errorf("fenced code block not highlighted with chroma classes:\n%s", got)
	}
}

func TestGoldmarkConverter_ToHTML_RawHTMLEscaped(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()

	got, err := conv.ToHTML(context.Background(), "hello <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML was not escaped:\n%s", got)
	}
}

func TestGoldmarkConverter_ToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := conv.ToHTML(ctx, "# Hello"); err == nil {
		t.Error("ToHTML() with cancelled context: want error, got nil")
	}
}
