package implementation

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// declarationMargin approximates the width of "PROCEDURE " plus some slack
// after the name when reporting a declaration's range.
const declarationMargin = 10

// DocumentState is an indexed snapshot of a document. It is never mutated
// after creation; a content change stores a new one.
type DocumentState struct {
	Content string
	Symbols SymbolTable
}

// Service tracks the indexed state of every open document and answers
// definition queries against it.
type Service struct {
	documentStates sync.Map // protocol.DocumentUri to *DocumentState
}

func NewService() *Service {
	return new(Service)
}

// ContentChanged re-indexes a document from a full-text snapshot, replacing
// any previous state.
func (self *Service) ContentChanged(uri protocol.DocumentUri, content string) *DocumentState {
	documentState := &DocumentState{
		Content: content,
		Symbols: ExtractSymbols(content),
	}
	self.documentStates.Store(uri, documentState)
	log.Debugf("indexed %s: %d procedures", uri, len(documentState.Symbols))
	return documentState
}

// Close discards the state of a document.
func (self *Service) Close(uri protocol.DocumentUri) {
	self.documentStates.Delete(uri)
}

func (self *Service) documentState(uri protocol.DocumentUri) (*DocumentState, bool) {
	if documentState, ok := self.documentStates.Load(uri); ok {
		return documentState.(*DocumentState), true
	}
	return nil, false
}

// Content returns the last content received for a document.
func (self *Service) Content(uri protocol.DocumentUri) (string, bool) {
	if documentState, ok := self.documentState(uri); ok {
		return documentState.Content, true
	}
	return "", false
}

// Symbols returns the symbol table of a document.
func (self *Service) Symbols(uri protocol.DocumentUri) (SymbolTable, bool) {
	if documentState, ok := self.documentState(uri); ok {
		return documentState.Symbols, true
	}
	return nil, false
}

// LookupDefinition resolves the token at position and returns the location of
// its declaration in the same document. Unknown documents, out-of-range
// positions and undeclared names all return nil.
func (self *Service) LookupDefinition(uri protocol.DocumentUri, position protocol.Position) *protocol.Location {
	documentState, ok := self.documentState(uri)
	if !ok {
		return nil
	}

	token, ok := ResolveToken(documentState.Content, position)
	if !ok {
		return nil
	}

	declaration, ok := documentState.Symbols.Lookup(token)
	if !ok {
		return nil
	}

	line := protocol.UInteger(declaration.Line)
	return &protocol.Location{
		URI: uri,
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line, Character: protocol.UInteger(len(declaration.Name) + declarationMargin)},
		},
	}
}
