package md2site

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.PageRenderer  = (*pipeline.GoTemplateRenderer)(nil)
	_ assets.Loader          = (*assets.EmbeddedLoader)(nil)
	_ assets.Loader          = (*assets.Resolver)(nil)
)

// Builder orchestrates the news page build pipeline: load the Markdown
// source, transform it to HTML, substitute it into the page template, and
// write the page plus stylesheet to the output directory.
type Builder struct {
	cfg           builderConfig
	assetLoader   assets.Loader
	htmlConverter pipeline.HTMLConverter
	renderer      pipeline.PageRenderer
}

// NewBuilder creates a Builder with default configuration.
// Use options to customize behavior (e.g., WithAssetPath).
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		assetLoader:   assets.NewEmbeddedLoader(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
		renderer:      &pipeline.GoTemplateRenderer{},
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.cfg.assetPath != "" {
		resolver, err := assets.NewResolver(b.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		b.assetLoader = resolver
	}

	return b, nil
}

// Build runs the full pipeline for one news page.
// The context is used for cancellation. No output file is touched until
// the page has rendered successfully; there is no rollback of files
// already written when a later write fails.
func (b *Builder) Build(ctx context.Context, input Input) (*BuildResult, error) {
	if input.SourcePath == "" {
		return nil, ErrNoSourcePath
	}

	// Load source
	raw, err := os.ReadFile(input.SourcePath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	// Split optional front matter from the Markdown body
	meta, body, err := pipeline.SplitFrontMatter(string(raw))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, input.SourcePath)
	}

	// Convert to an HTML fragment
	fragment, err := b.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Resolve the page template
	tmplText, err := b.resolveTemplate(input.TemplatePath)
	if err != nil {
		return nil, err
	}

	// Render the page with the fragment bound to the News field
	data := pipeline.PageData{
		Title:       resolveTitle(meta.Title, input.SiteTitle),
		Description: meta.Description,
		Updated:     meta.Date,
		News:        template.HTML(fragment), // #nosec G203 -- fragment is Goldmark output, not raw user HTML
	}
	page, err := b.renderer.RenderPage(ctx, tmplText, data)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Write outputs
	if err := os.MkdirAll(input.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}

	pageName := input.PageName
	if pageName == "" {
		pageName = DefaultPageName
	}
	pagePath := filepath.Join(input.OutputDir, pageName)
	if err := os.WriteFile(pagePath, []byte(page), 0o600); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritePage, err)
	}

	stylePath := filepath.Join(input.OutputDir, StylesheetName)
	if err := b.writeStylesheet(input.StylesheetPath, stylePath); err != nil {
		return nil, err
	}

	return &BuildResult{
		PageHTML:       []byte(page),
		PagePath:       pagePath,
		StylesheetPath: stylePath,
		Title:          data.Title,
	}, nil
}

// resolveTemplate returns the page template text: the file at path when
// provided, otherwise the default template from the asset loader.
func (b *Builder) resolveTemplate(path string) (string, error) {
	if path == "" {
		return b.assetLoader.LoadTemplate(assets.DefaultTemplateName)
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}
	return string(content), nil
}

// writeStylesheet copies the stylesheet byte-for-byte when a source path is
// provided, otherwise writes the default stylesheet from the asset loader.
func (b *Builder) writeStylesheet(srcPath, dstPath string) error {
	if srcPath == "" {
		css, err := b.assetLoader.LoadStylesheet(assets.DefaultStylesheetName)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dstPath, []byte(css), 0o600); err != nil {
			return fmt.Errorf("%w: %v", ErrCopyStylesheet, err)
		}
		return nil
	}

	if err := fileutil.CopyFile(srcPath, dstPath); err != nil {
		return fmt.Errorf("%w: %v", ErrCopyStylesheet, err)
	}
	return nil
}

// resolveTitle picks the page title: front matter first, then the site
// title, then a neutral default.
func resolveTitle(metaTitle, siteTitle string) string {
	if metaTitle != "" {
		return metaTitle
	}
	if siteTitle != "" {
		return siteTitle
	}
	return "News"
}
