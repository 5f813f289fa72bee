// Package md2site builds a static HTML news page from a Markdown source.
//
// # Quick Start
//
// Create a builder and run a build:
//
//	b, err := md2site.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Build(ctx, md2site.Input{
//	    SourcePath: "news.md",
//	    OutputDir:  "output",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.PagePath)
//
// The result contains the rendered page bytes (result.PageHTML) and the
// paths of the written page and stylesheet.
//
// # Build Pipeline
//
// A build runs these stages in order:
//
//  1. Read the Markdown news file and split optional YAML front matter
//  2. Convert the Markdown body to an HTML fragment via Goldmark (GFM,
//     syntax highlighting)
//  3. Substitute the fragment into the page template under the News field
//  4. Write the page to the output directory and copy the stylesheet
//     next to it byte-for-byte
//
// Nothing is written until rendering has succeeded; a failure in any stage
// aborts the build and is returned to the caller.
//
// # Templates and Stylesheets
//
// When Input.TemplatePath or Input.StylesheetPath is empty, the builder
// falls back to embedded defaults. A page template is an html/template
// document; the news fragment is available as {{.News}} and is inserted
// verbatim, while metadata fields ({{.Title}}, {{.Description}},
// {{.Updated}}) are escaped normally.
//
// Use WithAssetPath to load named default assets from a custom directory:
//
//	b, err := md2site.NewBuilder(md2site.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── news.css
//	└── templates/
//	    └── page.html
package md2site
