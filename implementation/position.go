package implementation

import (
	"sort"
	"unicode"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineIndex holds the byte offset at which each logical line starts. "\r\n",
// "\r" and "\n" each terminate a line.
type lineIndex struct {
	starts []int
}

func newLineIndex(text string) lineIndex {
	starts := []int{0}
	for index := 0; index < len(text); index++ {
		switch text[index] {
		case '\r':
			if (index+1 < len(text)) && (text[index+1] == '\n') {
				index++
			}
			starts = append(starts, index+1)
		case '\n':
			starts = append(starts, index+1)
		}
	}
	return lineIndex{starts}
}

// lineOf returns the zero-based line containing the byte offset.
func (self lineIndex) lineOf(offset int) int {
	return sort.Search(len(self.starts), func(i int) bool {
		return self.starts[i] > offset
	}) - 1
}

func (self lineIndex) count() int {
	return len(self.starts)
}

// line returns the content of the line without its terminator.
func (self lineIndex) line(text string, line int) (string, bool) {
	if (line < 0) || (line >= len(self.starts)) {
		return "", false
	}
	start := self.starts[line]
	end := len(text)
	if line+1 < len(self.starts) {
		end = self.starts[line+1]
		if text[end-1] == '\n' {
			end--
		}
		if (end > start) && (text[end-1] == '\r') {
			end--
		}
	}
	return text[start:end], true
}

// tokenSpan is a whitespace-delimited token within a line, measured in UTF-16
// code units.
type tokenSpan struct {
	text  string
	start int
	end   int
}

func tokenize(line string) []tokenSpan {
	var tokens []tokenSpan

	column := 0
	tokenStart := -1
	tokenColumn := 0
	for index, rune_ := range line {
		if unicode.IsSpace(rune_) {
			if tokenStart >= 0 {
				tokens = append(tokens, tokenSpan{line[tokenStart:index], tokenColumn, column})
				tokenStart = -1
			}
		} else if tokenStart < 0 {
			tokenStart = index
			tokenColumn = column
		}
		column += utf16Len(rune_)
	}
	if tokenStart >= 0 {
		tokens = append(tokens, tokenSpan{line[tokenStart:], tokenColumn, column})
	}

	return tokens
}

// ResolveToken returns the whitespace-delimited token at or adjacent to
// position. Both ends of a token's span are inclusive, so a cursor right
// before or after a token still resolves to it; the leftmost candidate wins.
func ResolveToken(text string, position protocol.Position) (string, bool) {
	lines := newLineIndex(text)
	line, ok := lines.line(text, int(position.Line))
	if !ok {
		return "", false
	}

	character := int(position.Character)
	for _, token := range tokenize(line) {
		if (token.start <= character) && (token.end >= character) {
			return token.text, true
		}
	}

	return "", false
}

// positionToIndex converts an LSP position to a byte offset in text. Positions
// beyond the end of a line clamp to the line end and positions beyond the last
// line clamp to the end of text.
func positionToIndex(text string, position protocol.Position) int {
	lines := newLineIndex(text)
	if int(position.Line) >= lines.count() {
		return len(text)
	}

	start := lines.starts[position.Line]
	line, _ := lines.line(text, int(position.Line))
	need := int(position.Character)
	index := 0
	for (index < len(line)) && (need > 0) {
		rune_, size := utf8.DecodeRuneInString(line[index:])
		need -= utf16Len(rune_)
		if need < 0 {
			// Position points into the middle of a surrogate pair
			break
		}
		index += size
	}

	return start + index
}

func rangeToIndex(text string, start protocol.Position, end protocol.Position) (int, int) {
	startIndex := positionToIndex(text, start)
	endIndex := positionToIndex(text, end)
	if endIndex < startIndex {
		startIndex, endIndex = endIndex, startIndex
	}
	return startIndex, endIndex
}

func utf16Len(rune_ rune) int {
	if rune_ > 0xFFFF {
		return 2
	}
	return 1
}
