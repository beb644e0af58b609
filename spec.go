package gongwen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hanchen-dev/go-gongwen/internal/yamlutil"
)

// ParseSpecJSON decodes a JSON document spec.
func ParseSpecJSON(data []byte) (*DocumentSpec, error) {
	var spec DocumentSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecParse, err)
	}
	return &spec, nil
}

// ParseSpecYAML decodes a YAML document spec.
func ParseSpecYAML(data []byte) (*DocumentSpec, error) {
	var spec DocumentSpec
	if err := yamlutil.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecParse, err)
	}
	return &spec, nil
}

// document converts the structured spec into a classified Document. Body entries
// carry no '#' markers, so heading depth comes from the numbering
// prefix heuristic instead.
func (s *DocumentSpec) document() *Document {
	return &Document{
		Title:       strings.TrimSpace(s.Title),
		Recipients:  s.Recipients,
		Attachments: s.Attachments,
		Signer:      strings.TrimSpace(s.Signer),
		Date:        strings.TrimSpace(s.Date),
		Blocks:      classifyBodyLines(s.Body),
	}
}
