package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// TextDocumentDefinition implements protocol.TextDocumentDefinitionFunc
func TextDocumentDefinition(context *glsp.Context, params *protocol.DefinitionParams) (interface{}, error) {
	if location := Definitions.LookupDefinition(params.TextDocument.URI, params.Position); location != nil {
		return location, nil
	}
	// The protocol expects null, not an error, when there is no definition
	return nil, nil
}
