// Package agent drives the conversation between the user, the model, and
// the tool registry.
//
// A turn starts with one user message and runs the model until it produces
// a reply that is not a tool call: each detected call is executed and its
// outcome is fed back as a synthetic user message, then the model is asked
// again. The whole exchange, synthetic messages included, is recorded in
// the session transcript.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inkwhale/inkwhale/internal/log"
	"github.com/inkwhale/inkwhale/internal/schema"
	"github.com/inkwhale/inkwhale/internal/session"
	"github.com/inkwhale/inkwhale/internal/shared/stringutils"
	"github.com/inkwhale/inkwhale/internal/tools"
)

// ErrToolLoopExceeded is returned when a turn runs out of tool iterations
// before the model produces a plain reply. The transcript keeps the partial
// exchange: the model calls already happened and their results are real.
var ErrToolLoopExceeded = errors.New("tool loop limit exceeded")

// defaultMaxIterations bounds a turn when settings leave the limit unset.
const defaultMaxIterations = 10

// resultInstruction is appended to every synthetic result message so the
// model knows the result is input, not a user request.
const resultInstruction = "Use this result to continue. Answer the user in plain language, or issue another call if you still need more information."

// TurnStats aggregates model usage across the requests of one turn.
type TurnStats struct {
	Model     string // model that served the last request
	Usage     schema.Usage
	ToolCalls []string // tool names in execution order
}

// Orchestrator runs conversation turns against a provider, detecting and
// executing tool calls between requests. It is not safe for concurrent use;
// the CLI drives one turn at a time.
type Orchestrator struct {
	provider schema.LLMProvider
	registry *tools.Registry
	settings schema.AgentSettings
	session  *session.Session

	// OnToolCall, when set, observes every executed call. Used by the CLI
	// to print progress while the model is still working.
	OnToolCall func(call tools.ParsedCall, outcome tools.Outcome)

	now       func() time.Time
	lastStats TurnStats
}

// New creates an Orchestrator over the given provider, registry, and session.
func New(provider schema.LLMProvider, registry *tools.Registry, settings schema.AgentSettings, sess *session.Session) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		registry: registry,
		settings: settings,
		session:  sess,
		now:      time.Now,
	}
}

// Turn appends input as a user message and runs the model until it replies
// with something that is not a tool call. The returned string is the final
// reply, already cleaned of reasoning blocks.
//
// If the provider fails, the user message that started the turn is removed
// from the transcript so the input can be resubmitted without duplication;
// any tool exchanges recorded before the failure remain.
func (o *Orchestrator) Turn(ctx context.Context, input string) (string, error) {
	// The system prompt is installed once per session. Rebuilding it every
	// turn would shift the time line under a rollback, and the recognizer
	// contract depends on its key phrases staying put anyway.
	if o.session.Len() == 0 {
		o.session.AddSystem(BuildSystemPrompt(o.registry, o.now()))
	}

	userIdx := o.session.Len()
	o.session.AddUser(input)

	stats := TurnStats{}
	maxIter := o.settings.MaxToolIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	for i := 0; i < maxIter; i++ {
		reply, err := o.provider.Chat(ctx, o.session.History(o.settings.HistoryWindow), o.settings.ChatOptions())
		if err != nil {
			o.session.RemoveAt(userIdx)
			o.lastStats = stats
			return "", fmt.Errorf("querying model: %w", err)
		}

		stats.Model = reply.Model
		stats.Usage.Add(reply.Usage)

		content := strings.TrimSpace(stringutils.StripThink(reply.Content))
		if content == "" {
			// A reply that was all reasoning block carries nothing to act
			// on; treat it like a transport failure.
			o.session.RemoveAt(userIdx)
			o.lastStats = stats
			return "", fmt.Errorf("model %s returned an empty reply", reply.Model)
		}
		o.session.AddAssistant(content)

		call, ok := o.registry.ParseToolCall(content)
		if !ok {
			o.lastStats = stats
			return content, nil
		}

		log.Infow("Tool call", "tool", call.Tool, "args", stringutils.Truncate(call.Args.String(), 200), "iteration", i)
		outcome := o.registry.ExecuteToolCall(ctx, call)
		stats.ToolCalls = append(stats.ToolCalls, call.Tool)
		if o.OnToolCall != nil {
			o.OnToolCall(call, outcome)
		}

		o.session.AddUser(renderResult(call, outcome))
	}

	o.lastStats = stats
	return "", ErrToolLoopExceeded
}

// Reset discards the conversation and starts a fresh session.
func (o *Orchestrator) Reset() {
	o.session.Reset()
	o.lastStats = TurnStats{}
}

// SessionID returns the current session identifier.
func (o *Orchestrator) SessionID() string {
	return o.session.ID()
}

// LastStats returns usage accumulated during the most recent turn.
func (o *Orchestrator) LastStats() TurnStats {
	return o.lastStats
}

// renderResult builds the synthetic user message that carries a tool outcome
// back to the model. It always begins with the result marker so the model
// can tell it apart from real user input, and it restates the call so the
// model knows which invocation the result answers.
func renderResult(call tools.ParsedCall, out tools.Outcome) string {
	status := "ok"
	if !out.OK {
		status = "error"
	}
	return fmt.Sprintf("%s %s %s (%s)\n%s\n\n%s", tools.ResultMarker, call.Tool, call.Args, status, out.Text(), resultInstruction)
}
