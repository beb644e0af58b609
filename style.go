package gongwen

import (
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
)

// blockStyle bundles the run and paragraph formatting for one block
// type: font family, size, alignment, first-line indent, and weight.
type blockStyle struct {
	font   string
	size   measurement.Distance
	align  wml.ST_Jc
	indent measurement.Distance // first-line indent; 0 = none
	bold   bool
}

// titleStyle formats the centered document title.
func (l *Layout) titleStyle() blockStyle {
	return blockStyle{
		font:  l.TitleFont,
		size:  l.TitleSize,
		align: wml.ST_JcCenter,
	}
}

// bodyStyle formats justified body paragraphs.
func (l *Layout) bodyStyle() blockStyle {
	return blockStyle{
		font:   l.BodyFont,
		size:   l.BodySize,
		align:  wml.ST_JcBoth,
		indent: l.FirstLineIndent,
	}
}

// recipientStyle formats the flush-left 主送机关 line.
func (l *Layout) recipientStyle() blockStyle {
	return blockStyle{
		font:  l.BodyFont,
		size:  l.BodySize,
		align: wml.ST_JcLeft,
	}
}

// signatureStyle formats the right-aligned signer and date lines.
func (l *Layout) signatureStyle() blockStyle {
	return blockStyle{
		font:  l.BodyFont,
		size:  l.BodySize,
		align: wml.ST_JcRight,
	}
}

// styleFor returns the style for a classified block. Level-1 headings
// are the title; when one appears mid-body it renders as body text.
func (l *Layout) styleFor(b Block) blockStyle {
	if b.Kind != BlockHeading {
		return l.bodyStyle()
	}
	switch b.Level {
	case 2:
		return blockStyle{
			font:   l.HeadingFont,
			size:   l.BodySize,
			align:  wml.ST_JcLeft,
			indent: l.FirstLineIndent,
		}
	case 3:
		return blockStyle{
			font:   l.SubheadingFont,
			size:   l.BodySize,
			align:  wml.ST_JcLeft,
			indent: l.FirstLineIndent,
			bold:   true,
		}
	case 4, 5:
		return blockStyle{
			font:   l.BodyFont,
			size:   l.BodySize,
			align:  wml.ST_JcLeft,
			indent: l.FirstLineIndent,
		}
	default:
		// Level 1 outside the title slot: plain indented body text.
		return blockStyle{
			font:   l.BodyFont,
			size:   l.BodySize,
			align:  wml.ST_JcLeft,
			indent: l.FirstLineIndent,
		}
	}
}
