package gongwen

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service orchestrates the controlled-Markdown-to-DOCX pipeline.
type Service struct {
	cfg        serviceConfig
	normalizer sourceNormalizer
	assembler  docxAssembler
}

// New creates a Service with the standard 公文 layout.
// Use options to customize behavior (e.g., WithLayout, WithClock).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			layout: DefaultLayout(),
			now:    time.Now,
		},
		normalizer: &lineEndingNormalizer{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create assembler if not injected (e.g., by tests)
	if s.assembler == nil {
		s.assembler = newGooxmlAssembler(s.cfg.layout)
	}

	return s
}

// Convert runs the full pipeline and returns the .docx as bytes.
// The context is used for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	if err := s.cfg.layout.Validate(); err != nil {
		return nil, err
	}

	var doc *Document
	if input.Spec != nil {
		doc = input.Spec.document()
	} else {
		source := s.normalizer.NormalizeSource(ctx, input.Markdown)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		parsed, err := ParseControlled(source)
		if err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
		doc = parsed
	}

	doc.applyOverrides(input.Overrides)
	doc.applyDefaults(input.Defaults)
	doc.Date = ResolveDate(doc.Date, s.cfg.now())

	out, err := s.assembler.Assemble(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}
	return out, nil
}

// validateInput checks that a source is present.
func (s *Service) validateInput(input Input) error {
	if input.Spec == nil && strings.TrimSpace(input.Markdown) == "" {
		return ErrEmptyInput
	}
	return nil
}
