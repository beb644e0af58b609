package gongwen

import (
	"encoding/json"
	"strings"
	"time"
)

// Input contains conversion parameters. Exactly one source is used:
// Spec takes precedence over Markdown when both are set.
type Input struct {
	Markdown  string        // controlled Markdown source
	Spec      *DocumentSpec // structured document spec (optional)
	Overrides *Overrides    // field overrides applied after parsing (optional)
	Defaults  *Overrides    // fallbacks for fields the document leaves empty (optional)
}

// DocumentSpec is the structured (JSON/YAML) equivalent of a controlled
// Markdown document.
type DocumentSpec struct {
	Title       string     `json:"title" yaml:"title"`
	Recipients  StringList `json:"recipients" yaml:"recipients"`
	Body        StringList `json:"body" yaml:"body"`
	Attachments StringList `json:"attachments" yaml:"attachments"`
	Signer      string     `json:"signer" yaml:"signer"`
	Date        string     `json:"date" yaml:"date"`
}

// Overrides replaces parsed document fields with caller-supplied values.
// Zero-valued fields leave the parsed value untouched.
type Overrides struct {
	Title       string
	Recipients  []string
	Body        []string // replaces all classified body blocks
	Attachments []string
	Signer      string
	Date        string
}

// Document is the classified form of a 公文, ready for assembly.
type Document struct {
	Title       string
	Recipients  []string
	Attachments []string
	Signer      string
	Date        string
	Blocks      []Block
}

// applyOverrides merges non-empty override fields into the document.
func (d *Document) applyOverrides(o *Overrides) {
	if o == nil {
		return
	}
	if o.Title != "" {
		d.Title = o.Title
	}
	if len(o.Recipients) > 0 {
		d.Recipients = o.Recipients
	}
	if len(o.Attachments) > 0 {
		d.Attachments = o.Attachments
	}
	if o.Signer != "" {
		d.Signer = o.Signer
	}
	if o.Date != "" {
		d.Date = o.Date
	}
	if len(o.Body) > 0 {
		d.Blocks = classifyBodyLines(o.Body)
	}
}

// applyDefaults fills document fields that are still empty.
func (d *Document) applyDefaults(o *Overrides) {
	if o == nil {
		return
	}
	if d.Title == "" {
		d.Title = o.Title
	}
	if len(d.Recipients) == 0 {
		d.Recipients = o.Recipients
	}
	if len(d.Attachments) == 0 {
		d.Attachments = o.Attachments
	}
	if d.Signer == "" {
		d.Signer = o.Signer
	}
	if d.Date == "" {
		d.Date = o.Date
	}
	if len(d.Blocks) == 0 && len(o.Body) > 0 {
		d.Blocks = classifyBodyLines(o.Body)
	}
}

// StringList accepts either a scalar string or a list of strings when
// decoding YAML or JSON. Entries are trimmed and empties dropped.
type StringList []string

// UnmarshalYAML implements list-or-scalar decoding for both yaml.v2
// (front matter) and goccy/go-yaml (document specs).
func (l *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var multi []string
	if err := unmarshal(&multi); err == nil {
		*l = cleanList(multi)
		return nil
	}
	var single string
	if err := unmarshal(&single); err != nil {
		return err
	}
	*l = cleanList([]string{single})
	return nil
}

// UnmarshalJSON implements list-or-scalar decoding for JSON specs.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*l = cleanList(multi)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = cleanList([]string{single})
	return nil
}

// cleanList trims whitespace and drops empty entries.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	layout *Layout
	now    func() time.Time
}

// WithLayout replaces the default 公文 layout. Panics if l is nil
// (programmer error); the layout is validated on Convert.
func WithLayout(l *Layout) Option {
	if l == nil {
		panic("gongwen: WithLayout layout must not be nil")
	}
	return func(s *Service) {
		s.cfg.layout = l
	}
}

// WithClock sets the time source used to resolve "auto" dates.
// Panics if now is nil (programmer error, similar to time.NewTicker).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("gongwen: WithClock function must not be nil")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}
