// Package gongwen converts controlled Markdown into fixed-layout DOCX
// documents following Chinese official-document (公文) formatting
// conventions.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := gongwen.New()
//	out, err := svc.Convert(ctx, gongwen.Input{
//	    Markdown: "---\nrecipients: 各相关单位\n---\n# 关于开展年度工作总结的通知\n正文第一段。",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("通知.docx", out, 0644)
//
// # Controlled Markdown
//
// The input dialect is deliberately restricted. Only two rules apply:
//
//  1. Every non-blank line is exactly one paragraph.
//  2. A leading run of 1-5 '#' characters followed by text marks a
//     heading of that depth. Nothing else in the line is interpreted.
//
// The first level-1 heading becomes the centered document title. An
// optional front-matter block supplies recipients, attachments, signer,
// and date. No general Markdown semantics (lists, emphasis, tables,
// links) are honored.
//
// # Structured Input
//
// Documents may also be described as a JSON or YAML spec instead of
// Markdown:
//
//	spec, err := gongwen.ParseSpecJSON(data)
//	out, err := svc.Convert(ctx, gongwen.Input{Spec: spec})
//
// Body paragraphs in a spec are styled by a prefix heuristic: 一、-style
// numbering takes the heading style (黑体) and （一）-style numbering
// takes the subheading style (楷体).
//
// # Formatting
//
// Output follows the GB/T 9704 conventions: 方正小标宋简体 2号 centered
// title, 仿宋_GB2312 3号 justified body with a two-character first-line
// indent, exact 29pt line spacing, A4 pages with 3.7/3.5/2.5cm margins,
// and a centered 宋体 4号 page-number footer. Use WithLayout to swap
// font families on systems where the standard faces are unavailable.
package gongwen
