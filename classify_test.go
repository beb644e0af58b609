package gongwen

import (
	"reflect"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Block
	}{
		// Headings by marker depth
		{
			name: "single marker is level 1",
			line: "# 关于开展工作的通知",
			want: Block{Kind: BlockHeading, Level: 1, Text: "关于开展工作的通知"},
		},
		{
			name: "marker without space still heads",
			line: "##一、总体要求",
			want: Block{Kind: BlockHeading, Level: 2, Text: "一、总体要求"},
		},
		{
			name: "three markers is level 3",
			line: "### （一）突出重点",
			want: Block{Kind: BlockHeading, Level: 3, Text: "（一）突出重点"},
		},
		{
			name: "five markers is level 5",
			line: "##### 细目",
			want: Block{Kind: BlockHeading, Level: 5, Text: "细目"},
		},
		{
			name: "tab after markers is trimmed",
			line: "##\t一、总体要求",
			want: Block{Kind: BlockHeading, Level: 2, Text: "一、总体要求"},
		},
		// Degradation to paragraph
		{
			name: "six markers is body text",
			line: "###### 太深了",
			want: Block{Kind: BlockParagraph, Text: "###### 太深了"},
		},
		{
			name: "markers without content is body text",
			line: "###",
			want: Block{Kind: BlockParagraph, Text: "###"},
		},
		{
			name: "markers with only spaces is body text",
			line: "##   ",
			want: Block{Kind: BlockParagraph, Text: "##"},
		},
		{
			name: "indented marker is body text",
			line: "  # 不是标题",
			want: Block{Kind: BlockParagraph, Text: "# 不是标题"},
		},
		{
			name: "inline marker is never special",
			line: "话题 #标签 继续",
			want: Block{Kind: BlockParagraph, Text: "话题 #标签 继续"},
		},
		// Plain paragraphs
		{
			name: "plain line is a paragraph",
			line: "为深入贯彻落实相关要求，现就有关事项通知如下。",
			want: Block{Kind: BlockParagraph, Text: "为深入贯彻落实相关要求，现就有关事项通知如下。"},
		},
		{
			name: "surrounding whitespace trimmed",
			line: "  正文内容  ",
			want: Block{Kind: BlockParagraph, Text: "正文内容"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyLine(tt.line)
			if got != tt.want {
				t.Errorf("classifyLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []Block
	}{
		{
			name: "empty body yields no blocks",
			body: "",
			want: nil,
		},
		{
			name: "blank lines are skipped",
			body: "\n\n第一段\n\n\n第二段\n",
			want: []Block{
				{Kind: BlockParagraph, Text: "第一段"},
				{Kind: BlockParagraph, Text: "第二段"},
			},
		},
		{
			name: "every non-blank line is one block",
			body: "# 标题\n一句话。\n另一句话。",
			want: []Block{
				{Kind: BlockHeading, Level: 1, Text: "标题"},
				{Kind: BlockParagraph, Text: "一句话。"},
				{Kind: BlockParagraph, Text: "另一句话。"},
			},
		},
		{
			name: "whitespace-only lines are blank",
			body: "第一段\n   \t\n第二段",
			want: []Block{
				{Kind: BlockParagraph, Text: "第一段"},
				{Kind: BlockParagraph, Text: "第二段"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseBlocks(tt.body)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseBlocks(%q) = %+v, want %+v", tt.body, got, tt.want)
			}
		})
	}
}

func TestClassifyBodyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Block
	}{
		{
			name: "chinese numeral with 、 is level 2",
			line: "一、总体要求",
			want: Block{Kind: BlockHeading, Level: 2, Text: "一、总体要求"},
		},
		{
			name: "two-rune numeral with 、 is level 2",
			line: "十、保障措施",
			want: Block{Kind: BlockHeading, Level: 2, Text: "十、保障措施"},
		},
		{
			name: "parenthesized numeral is level 3",
			line: "（一）突出重点",
			want: Block{Kind: BlockHeading, Level: 3, Text: "（一）突出重点"},
		},
		{
			name: "two-rune parenthesized numeral is level 3",
			line: "（十）其他事项",
			want: Block{Kind: BlockHeading, Level: 3, Text: "（十）其他事项"},
		},
		{
			name: "numeral without 、 is a paragraph",
			line: "一是坚持统筹推进。",
			want: Block{Kind: BlockParagraph, Text: "一是坚持统筹推进。"},
		},
		{
			name: "、 beyond third rune is a paragraph",
			line: "一二三四、不是标题",
			want: Block{Kind: BlockParagraph, Text: "一二三四、不是标题"},
		},
		{
			name: "） beyond fourth rune is a paragraph",
			line: "（某某某某）说明",
			want: Block{Kind: BlockParagraph, Text: "（某某某某）说明"},
		},
		{
			name: "plain paragraph",
			line: "现就有关事项通知如下。",
			want: Block{Kind: BlockParagraph, Text: "现就有关事项通知如下。"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyBodyLine(tt.line)
			if got != tt.want {
				t.Errorf("classifyBodyLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassifyBodyLines(t *testing.T) {
	t.Parallel()

	entries := []string{
		"一、总体要求",
		"第一段。\n\n第二段。",
		"  （一）突出重点  ",
	}

	want := []Block{
		{Kind: BlockHeading, Level: 2, Text: "一、总体要求"},
		{Kind: BlockParagraph, Text: "第一段。"},
		{Kind: BlockParagraph, Text: "第二段。"},
		{Kind: BlockHeading, Level: 3, Text: "（一）突出重点"},
	}

	got := classifyBodyLines(entries)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("classifyBodyLines() = %+v, want %+v", got, want)
	}
}
