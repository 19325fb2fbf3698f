package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// TextDocumentDidOpen implements protocol.TextDocumentDidOpenFunc
func TextDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	Definitions.ContentChanged(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange implements protocol.TextDocumentDidChangeFunc
func TextDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if content, ok := Definitions.Content(params.TextDocument.URI); ok {
		Definitions.ContentChanged(params.TextDocument.URI, applyContentChanges(content, params.ContentChanges))
	} else {
		log.Debugf("change for unopened document: %s", params.TextDocument.URI)
	}
	return nil
}

// TextDocumentDidSave implements protocol.TextDocumentDidSaveFunc
func TextDocumentDidSave(context *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}

// TextDocumentDidClose implements protocol.TextDocumentDidCloseFunc
func TextDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	Definitions.Close(params.TextDocument.URI)
	return nil
}
