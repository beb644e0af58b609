package gongwen

import (
	"testing"

	"baliance.com/gooxml/schema/soo/wml"
)

func TestStyleFor(t *testing.T) {
	t.Parallel()

	l := DefaultLayout()

	tests := []struct {
		name string
		b    Block
		want blockStyle
	}{
		{
			name: "paragraph is justified body text",
			b:    Block{Kind: BlockParagraph, Text: "正文"},
			want: blockStyle{font: l.BodyFont, size: l.BodySize, align: wml.ST_JcBoth, indent: l.FirstLineIndent},
		},
		{
			name: "level 2 heading uses heading font",
			b:    Block{Kind: BlockHeading, Level: 2, Text: "一、总体要求"},
			want: blockStyle{font: l.HeadingFont, size: l.BodySize, align: wml.ST_JcLeft, indent: l.FirstLineIndent},
		},
		{
			name: "level 3 heading is bold subheading font",
			b:    Block{Kind: BlockHeading, Level: 3, Text: "（一）突出重点"},
			want: blockStyle{font: l.SubheadingFont, size: l.BodySize, align: wml.ST_JcLeft, indent: l.FirstLineIndent, bold: true},
		},
		{
			name: "level 4 heading uses body font",
			b:    Block{Kind: BlockHeading, Level: 4, Text: "1. 具体安排"},
			want: blockStyle{font: l.BodyFont, size: l.BodySize, align: wml.ST_JcLeft, indent: l.FirstLineIndent},
		},
		{
			name: "level 5 heading uses body font",
			b:    Block{Kind: BlockHeading, Level: 5, Text: "（1）细目"},
			want: blockStyle{font: l.BodyFont, size: l.BodySize, align: wml.ST_JcLeft, indent: l.FirstLineIndent},
		},
		{
			name: "level 1 outside title slot renders as body",
			b:    Block{Kind: BlockHeading, Level: 1, Text: "重复的大标题"},
			want: blockStyle{font: l.BodyFont, size: l.BodySize, align: wml.ST_JcLeft, indent: l.FirstLineIndent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := l.styleFor(tt.b)
			if got != tt.want {
				t.Errorf("styleFor(%+v) = %+v, want %+v", tt.b, got, tt.want)
			}
		})
	}
}

func TestTitleStyle(t *testing.T) {
	t.Parallel()

	l := DefaultLayout()
	got := l.titleStyle()

	if got.font != l.TitleFont {
		t.Errorf("font = %q, want %q", got.font, l.TitleFont)
	}
	if got.size != l.TitleSize {
		t.Errorf("size = %v, want %v", got.size, l.TitleSize)
	}
	if got.align != wml.ST_JcCenter {
		t.Errorf("align = %v, want center", got.align)
	}
	if got.indent != 0 {
		t.Errorf("indent = %v, want 0", got.indent)
	}
}

func TestSignatureStyle(t *testing.T) {
	t.Parallel()

	l := DefaultLayout()
	got := l.signatureStyle()

	if got.align != wml.ST_JcRight {
		t.Errorf("align = %v, want right", got.align)
	}
	if got.font != l.BodyFont {
		t.Errorf("font = %q, want %q", got.font, l.BodyFont)
	}
}
