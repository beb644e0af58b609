package gongwen

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// frontMatter is the restricted key-value preamble of a controlled
// Markdown document. Unknown keys are ignored.
type frontMatter struct {
	Recipients  StringList `yaml:"recipients"`
	Attachments StringList `yaml:"attachments"`
	Signer      string     `yaml:"signer"`
	Date        string     `yaml:"date"`
}

// extractFrontMatter splits the front-matter block from the body.
// Content without a leading delimiter passes through untouched; a
// present but unparsable block is rejected with ErrFrontMatter.
// A UTF-8 BOM before the opening delimiter is stripped.
func extractFrontMatter(content string) (*frontMatter, string, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	var fm frontMatter
	rest, err := frontmatter.Parse(strings.NewReader(content), &fm)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return &fm, string(rest), nil
}

// ParseControlled parses controlled Markdown into a classified
// Document. The first level-1 heading becomes the title; it stays in
// Blocks and is skipped again during assembly.
func ParseControlled(content string) (*Document, error) {
	fm, body, err := extractFrontMatter(content)
	if err != nil {
		return nil, err
	}

	blocks := parseBlocks(body)
	doc := &Document{
		Recipients:  fm.Recipients,
		Attachments: fm.Attachments,
		Signer:      strings.TrimSpace(fm.Signer),
		Date:        strings.TrimSpace(fm.Date),
		Blocks:      blocks,
	}
	for _, b := range blocks {
		if b.Kind == BlockHeading && b.Level == 1 {
			doc.Title = b.Text
			break
		}
	}
	return doc, nil
}
