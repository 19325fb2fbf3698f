package implementation

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// applyContentChanges applies didChange events in order and returns the
// resulting full text.
func applyContentChanges(content string, changes []interface{}) string {
	for _, change := range changes {
		switch change_ := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			startIndex, endIndex := rangeToIndex(content, change_.Range.Start, change_.Range.End)
			content = content[:startIndex] + change_.Text + content[endIndex:]
		case protocol.TextDocumentContentChangeEventWhole:
			content = change_.Text
		default:
			log.Warningf("unsupported content change: %T", change)
		}
	}
	return content
}
