package gongwen

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"
)

// A4 page dimensions in twentieths of a point.
const (
	pageWidthA4  = 11906
	pageHeightA4 = 16838
)

// Header/footer edge distances. The footer distance leaves room for
// the page number inside the 3.5cm bottom margin.
const (
	headerDistance = 1.5 * measurement.Centimeter
	footerDistance = 1.75 * measurement.Centimeter
)

// docxAssembler defines the contract for document assembly.
type docxAssembler interface {
	Assemble(ctx context.Context, doc *Document) ([]byte, error)
}

// gooxmlAssembler emits 公文-formatted paragraphs into an OOXML
// word-processing container.
type gooxmlAssembler struct {
	layout *Layout
}

func newGooxmlAssembler(layout *Layout) *gooxmlAssembler {
	return &gooxmlAssembler{layout: layout}
}

// Assemble renders the classified document and returns the serialized
// .docx bytes.
func (a *gooxmlAssembler) Assemble(ctx context.Context, src *Document) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	out := document.New()
	a.applyPageLayout(out)

	if src.Title != "" {
		a.addTextParagraph(out, src.Title, a.layout.titleStyle())
		a.addBlankParagraph(out)
	}

	if len(src.Recipients) > 0 {
		a.addTextParagraph(out, joinRecipients(src.Recipients)+"：", a.layout.recipientStyle())
	}

	// The first level-1 heading already rendered as the title.
	titleSkipped := false
	for _, b := range src.Blocks {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if b.Text == "" {
			continue
		}
		if b.Kind == BlockHeading && b.Level == 1 && !titleSkipped {
			titleSkipped = true
			continue
		}
		a.addTextParagraph(out, b.Text, a.layout.styleFor(b))
	}

	a.addAttachments(out, src.Attachments)
	a.addSignature(out, src.Signer, src.Date)
	a.addPageNumberFooter(out)

	var buf bytes.Buffer
	if err := out.Save(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssemble, err)
	}
	return buf.Bytes(), nil
}

// applyPageLayout sets A4 page size and the 公文 margins.
func (a *gooxmlAssembler) applyPageLayout(out *document.Document) {
	section := out.BodySection()
	section.SetPageMargins(
		a.layout.MarginTop, a.layout.MarginRight,
		a.layout.MarginBottom, a.layout.MarginLeft,
		headerDistance, footerDistance, 0)

	// No high-level page size setter in gooxml; set the raw section.
	size := wml.NewCT_PageSz()
	size.WAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(pageWidthA4)}
	size.HAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(pageHeightA4)}
	section.X().PgSz = size
}

// addTextParagraph emits one paragraph holding a single run.
func (a *gooxmlAssembler) addTextParagraph(out *document.Document, text string, style blockStyle) {
	para := out.AddParagraph()
	props := para.Properties()
	props.SetAlignment(style.align)
	a.applySpacing(props)
	if style.indent != 0 {
		props.SetFirstLineIndent(style.indent)
	}

	run := para.AddRun()
	run.AddText(normalizeQuotes(text))
	applyRunFont(run, style.font, style.size, style.bold)
}

// addBlankParagraph emits an empty spacer paragraph with the standard
// line spacing.
func (a *gooxmlAssembler) addBlankParagraph(out *document.Document) {
	para := out.AddParagraph()
	a.applySpacing(para.Properties())
}

// addAttachments renders the 附件 block: one line for a single
// attachment, a numbered list otherwise, hanging at a two-character
// left indent.
func (a *gooxmlAssembler) addAttachments(out *document.Document, names []string) {
	if len(names) == 0 {
		return
	}
	a.addBlankParagraph(out)

	if len(names) == 1 {
		a.addIndentedParagraph(out, "附件："+names[0])
		return
	}
	for i, name := range names {
		prefix := "    "
		if i == 0 {
			prefix = "附件："
		}
		a.addIndentedParagraph(out, fmt.Sprintf("%s%d. %s", prefix, i+1, name))
	}
}

// addIndentedParagraph emits a body-font paragraph with a full left
// indent instead of a first-line indent.
func (a *gooxmlAssembler) addIndentedParagraph(out *document.Document, text string) {
	para := out.AddParagraph()
	props := para.Properties()
	a.applySpacing(props)
	props.SetStartIndent(a.layout.FirstLineIndent)

	run := para.AddRun()
	run.AddText(normalizeQuotes(text))
	applyRunFont(run, a.layout.BodyFont, a.layout.BodySize, false)
}

// addSignature renders the right-aligned signer and date lines.
func (a *gooxmlAssembler) addSignature(out *document.Document, signer, date string) {
	if signer == "" && date == "" {
		return
	}
	a.addBlankParagraph(out)

	style := a.layout.signatureStyle()
	if signer != "" {
		a.addTextParagraph(out, signer, style)
	}
	if date != "" {
		a.addTextParagraph(out, date, style)
	}
}

// addPageNumberFooter attaches a centered "— N —" footer with a live
// PAGE field.
func (a *gooxmlAssembler) addPageNumberFooter(out *document.Document) {
	ftr := out.AddFooter()
	para := ftr.AddParagraph()
	props := para.Properties()
	props.SetAlignment(wml.ST_JcCenter)
	a.applySpacing(props)

	left := para.AddRun()
	left.AddText("— ")
	applyRunFont(left, a.layout.PageNumberFont, a.layout.PageNumberSize, false)

	page := para.AddRun()
	page.AddField(document.FieldCurrentPage)
	applyRunFont(page, a.layout.PageNumberFont, a.layout.PageNumberSize, false)

	right := para.AddRun()
	right.AddText(" —")
	applyRunFont(right, a.layout.PageNumberFont, a.layout.PageNumberSize, false)

	out.BodySection().SetFooter(ftr, wml.ST_HdrFtrDefault)
}

// applySpacing enforces the exact line spacing with no space before or
// after, on every paragraph including blanks and the footer.
func (a *gooxmlAssembler) applySpacing(props document.ParagraphProperties) {
	spacing := props.Spacing()
	spacing.SetBefore(0)
	spacing.SetAfter(0)
	spacing.SetLineSpacing(a.layout.LineSpacing, wml.ST_LineSpacingRuleExact)
}

// applyRunFont sets family, size, and weight on a run. SetFontFamily
// only covers the Latin script attributes; CJK glyphs resolve through
// the eastAsia attribute, which must be set on the raw properties.
func applyRunFont(run document.Run, font string, size measurement.Distance, bold bool) {
	props := run.Properties()
	props.SetFontFamily(font)
	props.SetSize(size)
	if bold {
		props.SetBold(true)
	}

	rpr := props.X()
	if rpr.RFonts == nil {
		rpr.RFonts = wml.NewCT_Fonts()
		rpr.RFonts.AsciiAttr = gooxml.String(font)
		rpr.RFonts.HAnsiAttr = gooxml.String(font)
	}
	rpr.RFonts.EastAsiaAttr = gooxml.String(font)
}

// joinRecipients joins recipient names with the Chinese enumeration
// comma.
func joinRecipients(names []string) string {
	trimmed := make([]string, 0, len(names))
	for _, name := range names {
		if n := strings.TrimSpace(name); n != "" {
			trimmed = append(trimmed, n)
		}
	}
	return strings.Join(trimmed, "、")
}
