package implementation

import (
	"regexp"
)

// procedureRegex matches a PROCEDURE keyword at the start of a line followed
// by the procedure name. Go's multiline ^ only anchors after \n, so a lone
// \r is matched explicitly as a line start.
var procedureRegex = regexp.MustCompile(`(?m)(?:^|\r)(PROCEDURE)\s+(\w+)`)

// Declaration is the site of a procedure declaration.
type Declaration struct {
	Name string
	// Line is zero-based.
	Line int
	// Offset is the byte index of the PROCEDURE keyword in the document.
	Offset int
}

// SymbolTable maps procedure names to their most recent declaration.
type SymbolTable map[string]Declaration

// ExtractSymbols scans text for procedure declarations. When a name is
// declared more than once the bottom-most declaration wins.
func ExtractSymbols(text string) SymbolTable {
	symbols := make(SymbolTable)

	matches := procedureRegex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return symbols
	}

	lines := newLineIndex(text)
	for _, match := range matches {
		offset := match[2]
		name := text[match[4]:match[5]]
		symbols[name] = Declaration{
			Name:   name,
			Line:   lines.lineOf(offset),
			Offset: offset,
		}
	}

	return symbols
}

// Lookup returns the declaration for name.
func (self SymbolTable) Lookup(name string) (Declaration, bool) {
	declaration, ok := self[name]
	return declaration, ok
}
