package gongwen

import (
	"fmt"

	"baliance.com/gooxml/measurement"
)

// Standard 公文 font families. The title face is a commercial 方正 font;
// the rest ship with Chinese Windows and WPS installations.
const (
	FontTitle      = "方正小标宋简体"
	FontHeading    = "黑体"
	FontSubheading = "楷体_GB2312"
	FontBody       = "仿宋_GB2312"
	FontPageNumber = "宋体"
)

// Fixed measurements from GB/T 9704. Sizes follow the Chinese 字号
// scale: 2号 = 22pt, 3号 = 16pt, 4号 = 14pt.
const (
	TitleSize      = 22 * measurement.Point
	BodySize       = 16 * measurement.Point
	PageNumberSize = 14 * measurement.Point

	// Exact line spacing for every paragraph.
	LineSpacing = 29 * measurement.Point

	// First-line indent of two 3号 characters.
	TwoCharIndent = 32 * measurement.Point
)

// Layout holds the fixed formatting rules applied during assembly.
// Font fields may be overridden for systems lacking the standard faces;
// measurements are part of the 公文 convention and rarely change.
type Layout struct {
	TitleFont      string
	HeadingFont    string // level-2 headings (一、总体要求)
	SubheadingFont string // level-3 headings (（一）突出重点), rendered bold
	BodyFont       string
	PageNumberFont string

	TitleSize      measurement.Distance
	BodySize       measurement.Distance
	PageNumberSize measurement.Distance

	LineSpacing     measurement.Distance
	FirstLineIndent measurement.Distance

	MarginTop    measurement.Distance
	MarginBottom measurement.Distance
	MarginLeft   measurement.Distance
	MarginRight  measurement.Distance
}

// DefaultLayout returns the standard GB/T 9704 layout.
func DefaultLayout() *Layout {
	return &Layout{
		TitleFont:      FontTitle,
		HeadingFont:    FontHeading,
		SubheadingFont: FontSubheading,
		BodyFont:       FontBody,
		PageNumberFont: FontPageNumber,

		TitleSize:      TitleSize,
		BodySize:       BodySize,
		PageNumberSize: PageNumberSize,

		LineSpacing:     LineSpacing,
		FirstLineIndent: TwoCharIndent,

		MarginTop:    3.7 * measurement.Centimeter,
		MarginBottom: 3.5 * measurement.Centimeter,
		MarginLeft:   2.5 * measurement.Centimeter,
		MarginRight:  2.5 * measurement.Centimeter,
	}
}

// Validate checks that all fonts are named and measurements positive.
func (l *Layout) Validate() error {
	fonts := map[string]string{
		"title":      l.TitleFont,
		"heading":    l.HeadingFont,
		"subheading": l.SubheadingFont,
		"body":       l.BodyFont,
		"pageNumber": l.PageNumberFont,
	}
	for name, font := range fonts {
		if font == "" {
			return fmt.Errorf("%w: %s font cannot be empty", ErrInvalidLayout, name)
		}
	}

	sizes := map[string]measurement.Distance{
		"titleSize":      l.TitleSize,
		"bodySize":       l.BodySize,
		"pageNumberSize": l.PageNumberSize,
		"lineSpacing":    l.LineSpacing,
	}
	for name, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidLayout, name)
		}
	}

	if l.FirstLineIndent < 0 {
		return fmt.Errorf("%w: firstLineIndent cannot be negative", ErrInvalidLayout)
	}
	margins := map[string]measurement.Distance{
		"marginTop":    l.MarginTop,
		"marginBottom": l.MarginBottom,
		"marginLeft":   l.MarginLeft,
		"marginRight":  l.MarginRight,
	}
	for name, m := range margins {
		if m < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidLayout, name)
		}
	}

	return nil
}
