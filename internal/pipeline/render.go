package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// Sentinel errors for page template rendering.
var (
	ErrTemplateParse  = errors.New("page template parse failed")
	ErrTemplateRender = errors.New("page template rendering failed")
)

// PageData is the substitution context for the page template.
// News holds the rendered fragment and is inserted verbatim; the remaining
// fields go through normal html/template escaping.
type PageData struct {
	Title       string
	Description string
	Updated     string
	News        template.HTML
}

// PageRenderer defines the contract for substituting page data into an
// HTML page template.
type PageRenderer interface {
	RenderPage(ctx context.Context, templateText string, data PageData) (string, error)
}

// GoTemplateRenderer renders page templates with html/template.
// Templates are user inputs that change between builds, so parsing happens
// per call rather than once at construction.
type GoTemplateRenderer struct{}

// RenderPage parses templateText and executes it with data.
// Returns ErrTemplateParse for malformed placeholder syntax and
// ErrTemplateRender when execution fails (e.g., a placeholder referencing
// an unknown field).
func (r *GoTemplateRenderer) RenderPage(ctx context.Context, templateText string, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := template.New("page").Parse(templateText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return buf.String(), nil
}
