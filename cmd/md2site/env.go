package main

import (
	"io"
	"os"
	"time"
)

// Environment variable overrides. Precedence: flags > environment > config
// file > defaults.
const (
	envConfig    = "MD2SITE_CONFIG"
	envSource    = "MD2SITE_SOURCE"
	envOutputDir = "MD2SITE_OUTPUT_DIR"
)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// applyEnv fills unset flags from environment variables.
func applyEnv(f *cliFlags, getenv func(string) string) {
	if f.config == "" {
		f.config = getenv(envConfig)
	}
	if f.source == "" {
		f.source = getenv(envSource)
	}
	if f.output == "" {
		f.output = getenv(envOutputDir)
	}
}
