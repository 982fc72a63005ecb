// Package tools implements the plain-text tool-call protocol: the call
// grammar, the per-tool recognizers, and the registry that binds tools to
// the conversation loop.
package tools

import (
	"context"
	"fmt"
	"strings"
)

// CallToken is the first token of every tool-call line the model emits.
// Matching is case-insensitive.
const CallToken = "CALL_TOOL"

// ResultMarker begins every synthetic user message that reports a tool
// outcome back to the model. The system prompt promises this exact marker,
// so renderers must not change it.
const ResultMarker = "TOOL_RESULT"

// Args is the marker interface for per-tool argument types. Each tool
// defines its own concrete struct; its recognizer returns that type and
// its executor asserts it back. String renders the operation and operands
// as they stood in the call line, for logs and result messages.
type Args interface {
	fmt.Stringer
	isArgs()
}

// Tool is one operation the model can invoke through the text protocol.
//
// Recognize inspects a full assistant reply and reports whether it is a
// call to this tool; when it is, the returned Args carry the parsed, typed
// operands. Malformed operands mean "not a call", never an error.
//
// Execute runs the call. It never panics and never returns a Go error:
// every failure folds into the returned Outcome.
type Tool interface {
	Name() string
	Description() string
	Recognize(reply string) (Args, bool)
	Execute(ctx context.Context, args Args) Outcome
}

// ParsedCall is a recognized tool call ready for execution.
type ParsedCall struct {
	Tool string
	Args Args
}

// callFields splits reply into whitespace-separated tokens when its first
// token is the call token. Any other reply yields ok == false.
func callFields(reply string) ([]string, bool) {
	fields := strings.Fields(reply)
	if len(fields) == 0 || !strings.EqualFold(fields[0], CallToken) {
		return nil, false
	}
	return fields, true
}
