package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2site command.
type cliFlags struct {
	config     string
	source     string
	template   string
	stylesheet string
	output     string
	page       string
	title      string
	assetPath  string
	watch      bool
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.source, "source", "", "Markdown news file")
	fs.StringVar(&f.template, "template", "", "page template file")
	fs.StringVar(&f.stylesheet, "stylesheet", "", "stylesheet to copy")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.page, "page", "", "output page filename")
	fs.StringVar(&f.title, "title", "", "fallback page title")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild when inputs change")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show build timing")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
