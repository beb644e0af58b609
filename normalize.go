package gongwen

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Straight double-quote pair within a single line
	straightQuotePair = regexp.MustCompile(`"([^"\n]+)"`)
)

// sourceNormalizer defines the contract for source preprocessing.
type sourceNormalizer interface {
	NormalizeSource(ctx context.Context, content string) string
}

// lineEndingNormalizer prepares raw input for line classification.
type lineEndingNormalizer struct{}

// NormalizeSource converts \r\n and \r to \n so the classifier only
// ever sees \n-separated lines.
func (n *lineEndingNormalizer) NormalizeSource(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// normalizeQuotes replaces straight double-quote pairs with Chinese
// curly quotes. Pairs never span lines; unpaired quotes pass through.
// Applied to every emitted text span at assembly time.
func normalizeQuotes(text string) string {
	return straightQuotePair.ReplaceAllString(text, "“$1”")
}
