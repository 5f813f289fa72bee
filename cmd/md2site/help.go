package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [flags] [source.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a static HTML news page from a Markdown file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source.md    Markdown news file (default: news.md, or input.source from config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --source <path>       Markdown news file")
	fmt.Fprintln(w, "      --template <path>     Page template file (default: embedded)")
	fmt.Fprintln(w, "      --stylesheet <path>   Stylesheet to copy (default: embedded)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: output)")
	fmt.Fprintln(w, "      --page <name>         Output page filename (default: index.html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --title <s>           Fallback page title")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mode:")
	fmt.Fprintln(w, "  -w, --watch               Rebuild when inputs change")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show build timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SITE_CONFIG, MD2SITE_SOURCE, MD2SITE_OUTPUT_DIR")
	fmt.Fprintln(w, "  A .env file in the working directory is loaded if present.")
}
