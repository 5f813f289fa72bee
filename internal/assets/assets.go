package assets

// Default asset names.
const (
	DefaultTemplateName   = "page"
	DefaultStylesheetName = "news"
)

// Loader abstracts asset loading so templates and stylesheets can come
// from the embedded filesystem or a user-provided directory.
type Loader interface {
	// LoadTemplate returns the page template content by name
	// (without the .html extension).
	LoadTemplate(name string) (string, error)

	// LoadStylesheet returns the stylesheet content by name
	// (without the .css extension).
	LoadStylesheet(name string) (string, error)
}
