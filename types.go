package md2site

// DefaultPageName is the output page filename when Input.PageName is empty.
const DefaultPageName = "index.html"

// StylesheetName is the stylesheet filename written into the output
// directory. The page template references it by this name.
const StylesheetName = "style.css"

// Input contains the parameters for one build.
type Input struct {
	SourcePath     string // Markdown news file (required)
	TemplatePath   string // page template file (empty = embedded default)
	StylesheetPath string // stylesheet to copy (empty = embedded default)
	OutputDir      string // destination directory (required)
	PageName       string // output page filename (empty = "index.html")
	SiteTitle      string // fallback page title when front matter has none
}

// BuildResult contains the rendered page and the written output paths.
type BuildResult struct {
	PageHTML       []byte // rendered page content
	PagePath       string // written page path
	StylesheetPath string // written stylesheet path
	Title          string // resolved page title
}

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	assetPath string
}

// WithAssetPath loads default assets (page template, stylesheet) from a
// custom directory instead of the embedded ones. Assets missing from the
// directory fall back to the embedded defaults.
func WithAssetPath(dir string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = dir
	}
}
