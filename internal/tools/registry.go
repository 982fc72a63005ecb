package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/inkwhale/inkwhale/internal/log"
)

// Registry holds the tools available to a conversation, in registration
// order. Order matters twice: it is the order tools appear in the system
// prompt catalogue and the order recognizers are tried against a reply.
type Registry struct {
	names []string
	tools map[string]Tool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds t to the registry. Registering a name twice replaces the
// earlier tool but keeps its catalogue position. The empty name is the only
// thing rejected.
func (r *Registry) Register(t Tool) error {
	name := t.Name()
	if name == "" {
		return errors.New("registering tool: empty name")
	}
	if _, exists := r.tools[name]; !exists {
		r.names = append(r.names, name)
	}
	r.tools[name] = t
	return nil
}

// GetTool returns the tool with the given name, or nil.
func (r *Registry) GetTool(name string) Tool {
	return r.tools[name]
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.tools[n])
	}
	return out
}

// ParseToolCall matches reply against the registered recognizers in
// registration order and returns the first match. The fast path rejects any
// reply whose first token is not the call token, so ordinary prose never
// touches a recognizer.
func (r *Registry) ParseToolCall(reply string) (ParsedCall, bool) {
	if _, ok := callFields(reply); !ok {
		return ParsedCall{}, false
	}
	for _, name := range r.names {
		if args, ok := r.tools[name].Recognize(reply); ok {
			return ParsedCall{Tool: name, Args: args}, true
		}
	}
	return ParsedCall{}, false
}

// ExecuteToolCall runs a parsed call and always produces an Outcome. A call
// naming an unregistered tool fails with a not-found outcome; a panicking
// executor is contained into a failure the same way.
func (r *Registry) ExecuteToolCall(ctx context.Context, call ParsedCall) (out Outcome) {
	t := r.GetTool(call.Tool)
	if t == nil {
		return Failuref("Tool %q not found", call.Tool)
	}
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorw("Tool panicked", "tool", call.Tool, "panic", rec)
			out = Failuref("Tool %q failed: %v", call.Tool, rec)
		}
	}()
	return t.Execute(ctx, call.Args)
}

// callInstructions is the fixed block appended after the tool catalogue.
// The wording is part of the protocol: the model learns the call grammar
// and the result marker from this text alone.
const callInstructions = `To use a tool, reply with exactly one line of the form:

` + CallToken + ` <operation> <arg1> <arg2>

That line must be your entire reply: no explanation, no quotes, no code fences.
After you issue a call, the next user message will begin with ` + ResultMarker + `
and carries the result (or the error) of the call. Wait for that message, then
use it to answer. If no tool is needed, just answer normally.`

// SystemPrompt renders the tool section of the system prompt: one
// catalogue line per registered tool followed by the calling convention.
// An empty registry renders nothing, leaving the prompt tool-free.
func (r *Registry) SystemPrompt() string {
	if len(r.names) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Tools\n\nThe following tools are available:\n")
	for _, t := range r.Tools() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", t.Name(), t.Description()))
	}
	sb.WriteString("\n")
	sb.WriteString(callInstructions)
	return sb.String()
}
