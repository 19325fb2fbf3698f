package implementation

import (
	"github.com/op/go-logging"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = logging.MustGetLogger("implementation")

// ServerVersion may be overridden at build time with
// -ldflags "-X github.com/tminor/procls/implementation.ServerVersion=..."
var (
	ServerName    = "procls"
	ServerVersion = "dev"
)

// traceValue is the trace level last requested by the client.
var traceValue protocol.TraceValue = protocol.TraceValueOff

// TraceValue returns the trace level last requested by the client.
func TraceValue() protocol.TraceValue {
	return traceValue
}

// Definitions holds the state of all documents opened by the client.
var Definitions = NewService()

var Handler protocol.Handler

func init() {
	Handler.Initialize = Initialize
	Handler.Initialized = Initialized
	Handler.Shutdown = Shutdown
	Handler.SetTrace = SetTrace
	Handler.TextDocumentDidOpen = TextDocumentDidOpen
	Handler.TextDocumentDidChange = TextDocumentDidChange
	Handler.TextDocumentDidSave = TextDocumentDidSave
	Handler.TextDocumentDidClose = TextDocumentDidClose
	Handler.TextDocumentDefinition = TextDocumentDefinition
}
