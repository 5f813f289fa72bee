package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for build operations.
var (
	ErrEmptySource     = errors.New("news source cannot be empty")
	ErrNoSourcePath    = errors.New("no news source path specified")
	ErrReadSource      = errors.New("failed to read news source")
	ErrReadTemplate    = errors.New("failed to read page template")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrWritePage       = errors.New("failed to write rendered page")
	ErrCopyStylesheet  = errors.New("failed to copy stylesheet")
)

// Pipeline errors surfaced through Build. Aliased so callers can match
// them with errors.Is without importing internal packages.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrTemplateParse  = pipeline.ErrTemplateParse
	ErrTemplateRender = pipeline.ErrTemplateRender
	ErrFrontMatter    = pipeline.ErrFrontMatter
)

// Asset loading errors.
var (
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
