package gongwen

import "strings"

// BlockKind distinguishes the two paragraph categories of the
// controlled dialect.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
)

// maxHeadingDepth bounds recognized '#' runs; deeper runs are body text.
const maxHeadingDepth = 5

// Block is one classified line: a heading of some depth or a body
// paragraph. Level is 1-5 for headings and 0 for paragraphs.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
}

// classifyLine maps one non-blank line to a block based solely on its
// leading '#' run. A run of 1-5 markers followed by non-blank content
// is a heading (no space after the markers required); anything else,
// including indented '#' and marker runs without content, is a body
// paragraph. In-line '#' is never special.
func classifyLine(line string) Block {
	if strings.HasPrefix(line, "#") {
		depth := 0
		for _, r := range line {
			if r != '#' {
				break
			}
			depth++
		}
		if depth <= maxHeadingDepth {
			content := strings.TrimLeft(line[depth:], " \t")
			if content != "" {
				return Block{Kind: BlockHeading, Level: depth, Text: content}
			}
		}
	}
	return Block{Kind: BlockParagraph, Text: strings.TrimSpace(line)}
}

// parseBlocks classifies every non-blank line of the body. Blank lines
// carry no meaning: a natural line is a natural paragraph.
func parseBlocks(body string) []Block {
	var blocks []Block
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		blocks = append(blocks, classifyLine(line))
	}
	return blocks
}

// chineseNumerals are the characters that open 一、-style heading
// numbering in plain body text.
const chineseNumerals = "一二三四五六七八九十"

// classifyBodyLine applies the prefix heuristic used for structured
// specs, where body paragraphs carry no '#' markers: 一、-numbering
// maps to a level-2 heading, （一）-numbering to a level-3 heading.
func classifyBodyLine(line string) Block {
	runes := []rune(strings.TrimSpace(line))
	text := string(runes)

	if len(runes) > 0 && strings.ContainsRune(chineseNumerals, runes[0]) {
		if strings.Contains(headRunes(runes, 3), "、") {
			return Block{Kind: BlockHeading, Level: 2, Text: text}
		}
	}
	if len(runes) > 0 && runes[0] == '（' {
		if strings.Contains(headRunes(runes, 4), "）") {
			return Block{Kind: BlockHeading, Level: 3, Text: text}
		}
	}
	return Block{Kind: BlockParagraph, Text: text}
}

// headRunes returns the first n runes of rs as a string.
func headRunes(rs []rune, n int) string {
	if len(rs) < n {
		n = len(rs)
	}
	return string(rs[:n])
}

// classifyBodyLines classifies a slice of body entries, splitting
// multi-line entries into one block per non-blank line.
func classifyBodyLines(entries []string) []Block {
	var blocks []Block
	for _, entry := range entries {
		for _, line := range strings.Split(entry, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			blocks = append(blocks, classifyBodyLine(line))
		}
	}
	return blocks
}
