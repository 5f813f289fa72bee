package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates malformed front matter in the news source.
var ErrFrontMatter = errors.New("invalid front matter")

// PageMeta holds optional metadata parsed from the news file front matter.
type PageMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
}

// SplitFrontMatter separates optional YAML front matter from the Markdown
// body. Content without front matter is returned unchanged with zero
// metadata.
func SplitFrontMatter(content string) (PageMeta, string, error) {
	var meta PageMeta
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return PageMeta{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, string(body), nil
}
