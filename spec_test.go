package gongwen

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSpecJSON(t *testing.T) {
	t.Parallel()

	t.Run("full spec", func(t *testing.T) {
		t.Parallel()

		data := `{
			"title": "关于开展工作的通知",
			"recipients": ["各省厅", "各直属单位"],
			"body": ["一、总体要求", "坚持稳中求进。"],
			"attachments": "任务分工表",
			"signer": "某某委员会",
			"date": "auto"
		}`

		spec, err := ParseSpecJSON([]byte(data))
		if err != nil {
			t.Fatalf("ParseSpecJSON() unexpected error: %v", err)
		}
		if spec.Title != "关于开展工作的通知" {
			t.Errorf("Title = %q", spec.Title)
		}
		wantRecipients := StringList{"各省厅", "各直属单位"}
		if !reflect.DeepEqual(spec.Recipients, wantRecipients) {
			t.Errorf("Recipients = %v, want %v", spec.Recipients, wantRecipients)
		}
		wantAttachments := StringList{"任务分工表"}
		if !reflect.DeepEqual(spec.Attachments, wantAttachments) {
			t.Errorf("Attachments = %v, want %v", spec.Attachments, wantAttachments)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		_, err := ParseSpecJSON([]byte(`{"title": `))
		if !errors.Is(err, ErrSpecParse) {
			t.Errorf("error = %v, want ErrSpecParse", err)
		}
	})
}

func TestParseSpecYAML(t *testing.T) {
	t.Parallel()

	t.Run("full spec", func(t *testing.T) {
		t.Parallel()

		data := `
title: 关于开展工作的通知
recipients:
  - 各省厅
body:
  - 一、总体要求
  - 坚持稳中求进。
signer: 某某委员会
date: 2024年3月5日
`
		spec, err := ParseSpecYAML([]byte(data))
		if err != nil {
			t.Fatalf("ParseSpecYAML() unexpected error: %v", err)
		}
		if spec.Title != "关于开展工作的通知" {
			t.Errorf("Title = %q", spec.Title)
		}
		wantBody := StringList{"一、总体要求", "坚持稳中求进。"}
		if !reflect.DeepEqual(spec.Body, wantBody) {
			t.Errorf("Body = %v, want %v", spec.Body, wantBody)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ParseSpecYAML([]byte("title: [未闭合"))
		if !errors.Is(err, ErrSpecParse) {
			t.Errorf("error = %v, want ErrSpecParse", err)
		}
	})
}

func TestSpecDocument(t *testing.T) {
	t.Parallel()

	spec := &DocumentSpec{
		Title:      "  标题  ",
		Recipients: StringList{"各部门"},
		Body: StringList{
			"一、总体要求",
			"坚持稳中求进。",
			"（一）突出重点",
		},
		Signer: " 机关 ",
		Date:   " auto ",
	}

	doc := spec.document()

	if doc.Title != "标题" {
		t.Errorf("Title = %q, want trimmed %q", doc.Title, "标题")
	}
	if doc.Signer != "机关" {
		t.Errorf("Signer = %q, want trimmed %q", doc.Signer, "机关")
	}
	if doc.Date != "auto" {
		t.Errorf("Date = %q, want trimmed %q", doc.Date, "auto")
	}

	wantBlocks := []Block{
		{Kind: BlockHeading, Level: 2, Text: "一、总体要求"},
		{Kind: BlockParagraph, Text: "坚持稳中求进。"},
		{Kind: BlockHeading, Level: 3, Text: "（一）突出重点"},
	}
	if !reflect.DeepEqual(doc.Blocks, wantBlocks) {
		t.Errorf("Blocks = %+v, want %+v", doc.Blocks, wantBlocks)
	}
}
