package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/watch"
)

// Sentinel errors for CLI operations.
var (
	ErrTooManyArgs = errors.New("too many arguments")
)

// run resolves configuration, builds the page, and optionally keeps
// rebuilding in watch mode.
func run(flags *cliFlags, args []string, deps *Dependencies) error {
	if flags.version {
		fmt.Fprintln(deps.Stdout, "md2site", Version)
		return nil
	}

	if len(args) > 1 {
		return fmt.Errorf("%w: %v", ErrTooManyArgs, args[1:])
	}

	applyEnv(flags, deps.Getenv)

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	input := resolveInput(cfg, flags, args)

	var opts []md2site.Option
	if flags.assetPath != "" {
		opts = append(opts, md2site.WithAssetPath(flags.assetPath))
	}
	builder, err := md2site.NewBuilder(opts...)
	if err != nil {
		return err
	}

	buildOnce := func(ctx context.Context) error {
		start := deps.Now()
		result, err := builder.Build(ctx, input)
		if err != nil {
			return err
		}
		if flags.verbose {
			fmt.Fprintf(deps.Stderr, "Built in %s\n", deps.Now().Sub(start))
		}
		if !flags.quiet {
			fmt.Fprintf(deps.Stdout, "Created %s\n", result.PagePath)
		}
		return nil
	}

	ctx := context.Background()
	if err := buildOnce(ctx); err != nil {
		return err
	}

	if !flags.watch {
		return nil
	}
	return watchAndRebuild(ctx, input, buildOnce, flags, deps)
}

// resolveInput merges config and flags into a build input.
// Flags win over config values; a positional argument overrides the source.
func resolveInput(cfg *config.Config, flags *cliFlags, args []string) md2site.Input {
	input := md2site.Input{
		SourcePath:     cfg.Input.Source,
		TemplatePath:   cfg.Input.Template,
		StylesheetPath: cfg.Input.Stylesheet,
		OutputDir:      cfg.Output.Dir,
		PageName:       cfg.Output.Page,
		SiteTitle:      cfg.Site.Title,
	}

	if flags.source != "" {
		input.SourcePath = flags.source
	}
	if len(args) > 0 {
		input.SourcePath = args[0]
	}
	if flags.template != "" {
		input.TemplatePath = flags.template
	}
	if flags.stylesheet != "" {
		input.StylesheetPath = flags.stylesheet
	}
	if flags.output != "" {
		input.OutputDir = flags.output
	}
	if flags.page != "" {
		input.PageName = flags.page
	}
	if flags.title != "" {
		input.SiteTitle = flags.title
	}

	return input
}

// watchAndRebuild blocks, rebuilding the page when any input file changes,
// until interrupted. Build failures in watch mode are logged and watching
// continues; only watcher failures end the loop.
func watchAndRebuild(ctx context.Context, input md2site.Input, buildOnce func(context.Context) error, flags *cliFlags, deps *Dependencies) error {
	paths := []string{input.SourcePath}
	if input.TemplatePath != "" {
		paths = append(paths, input.TemplatePath)
	}
	if input.StylesheetPath != "" {
		paths = append(paths, input.StylesheetPath)
	}

	w, err := watch.New(paths, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !flags.quiet {
		fmt.Fprintln(deps.Stderr, "Watching for changes (Ctrl+C to stop)...")
	}

	return w.Run(ctx, func() {
		if err := buildOnce(ctx); err != nil {
			fmt.Fprintln(deps.Stderr, "md2site:", err)
		}
	})
}
