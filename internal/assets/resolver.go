package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver loads assets from a filesystem directory, falling back to the
// embedded defaults for assets the directory does not provide.
//
// Expected directory layout:
//
//	<dir>/templates/<name>.html
//	<dir>/styles/<name>.css
type Resolver struct {
	dir      string
	fallback Loader
}

// NewResolver creates a Resolver rooted at dir.
// Returns ErrInvalidAssetDir if dir does not exist or is not a directory.
func NewResolver(dir string) (*Resolver, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidAssetDir, dir)
	}

	return &Resolver{
		dir:      dir,
		fallback: NewEmbeddedLoader(),
	}, nil
}

// LoadTemplate loads a page template by name from the asset directory,
// falling back to the embedded default when the file is absent.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(r.dir, "templates", name+".html")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated, dir user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return r.fallback.LoadTemplate(name)
		}
		return "", fmt.Errorf("%w: %q: %v", ErrTemplateNotFound, name, err)
	}

	return string(content), nil
}

// LoadStylesheet loads a stylesheet by name from the asset directory,
// falling back to the embedded default when the file is absent.
func (r *Resolver) LoadStylesheet(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(r.dir, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated, dir user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return r.fallback.LoadStylesheet(name)
		}
		return "", fmt.Errorf("%w: %q: %v", ErrStylesheetNotFound, name, err)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
