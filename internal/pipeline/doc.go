// Package pipeline implements the content transformation stages of the
// news page build: front matter splitting, Markdown to HTML conversion,
// and page template rendering.
package pipeline
