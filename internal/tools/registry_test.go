package tools

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// stubArgs/stubTool implement Tool for registry tests with a controllable
// operation keyword and canned result.
type stubArgs struct {
	operand string
}

func (stubArgs) isArgs() {}

func (a stubArgs) String() string { return a.operand }

type stubTool struct {
	name    string
	keyword string
	result  string
	panics  bool
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub tool " + s.name }

func (s *stubTool) Recognize(reply string) (Args, bool) {
	fields, ok := callFields(reply)
	if !ok || len(fields) < 2 || !strings.EqualFold(fields[1], s.keyword) {
		return nil, false
	}
	operand := ""
	if len(fields) > 2 {
		operand = fields[2]
	}
	return stubArgs{operand: operand}, true
}

func (s *stubTool) Execute(_ context.Context, args Args) Outcome {
	if s.panics {
		panic("stub exploded")
	}
	sa, _ := args.(stubArgs)
	return Success(fmt.Sprintf("%s:%s", s.result, sa.operand))
}

func buildRegistry(t *testing.T, ts ...Tool) *Registry {
	t.Helper()
	b := NewRegistryBuilder()
	for _, tool := range ts {
		b.WithTool(tool)
	}
	r, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return r
}

// ─── Register ──────────────────────────────────────────────────────────────

func TestRegister_EmptyName(t *testing.T) {
	err := NewRegistry().Register(&stubTool{name: "", keyword: "x"})
	if err == nil {
		t.Fatal("expected error for empty tool name")
	}
}

func TestRegister_LastWins(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubTool{name: "first", keyword: "one", result: "first"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&stubTool{name: "dup", keyword: "two", result: "old"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&stubTool{name: "dup", keyword: "two", result: "new"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := r.Tools()
	if len(all) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(all))
	}
	if all[0].Name() != "first" || all[1].Name() != "dup" {
		t.Errorf("unexpected order: %q, %q", all[0].Name(), all[1].Name())
	}

	call, ok := r.ParseToolCall("CALL_TOOL two payload")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	out := r.ExecuteToolCall(context.Background(), call)
	if out.Value != "new:payload" {
		t.Errorf("expected replacement tool to run, got %q", out.Value)
	}
}

// ─── ParseToolCall ─────────────────────────────────────────────────────────

func TestParseToolCall_NonCallReply(t *testing.T) {
	r := buildRegistry(t, &stubTool{name: "a", keyword: "go"})
	replies := []string{
		"hello there",
		"Use CALL_TOOL go when you need me.",
		"",
	}
	for _, reply := range replies {
		if _, ok := r.ParseToolCall(reply); ok {
			t.Errorf("expected no parse for %q", reply)
		}
	}
}

func TestParseToolCall_NoRecognizerClaims(t *testing.T) {
	r := buildRegistry(t, &stubTool{name: "a", keyword: "go"})
	if _, ok := r.ParseToolCall("CALL_TOOL stop everything"); ok {
		t.Error("expected no parse when no recognizer matches")
	}
}

func TestParseToolCall_RegistrationOrderWins(t *testing.T) {
	// Both stubs claim the same keyword; the first registered must win.
	r := buildRegistry(t,
		&stubTool{name: "alpha", keyword: "go", result: "alpha"},
		&stubTool{name: "beta", keyword: "go", result: "beta"},
	)
	call, ok := r.ParseToolCall("CALL_TOOL go now")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if call.Tool != "alpha" {
		t.Errorf("expected first-registered tool to win, got %q", call.Tool)
	}

	// Reversed registration order flips the winner.
	r = buildRegistry(t,
		&stubTool{name: "beta", keyword: "go", result: "beta"},
		&stubTool{name: "alpha", keyword: "go", result: "alpha"},
	)
	call, ok = r.ParseToolCall("CALL_TOOL go now")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if call.Tool != "beta" {
		t.Errorf("expected first-registered tool to win, got %q", call.Tool)
	}
}

// ─── ExecuteToolCall ───────────────────────────────────────────────────────

func TestExecuteToolCall_UnknownTool(t *testing.T) {
	r := buildRegistry(t, &stubTool{name: "a", keyword: "go"})
	out := r.ExecuteToolCall(context.Background(), ParsedCall{Tool: "ghost"})
	if out.OK {
		t.Fatal("expected failure for unknown tool")
	}
	if out.Err != `Tool "ghost" not found` {
		t.Errorf("unexpected error message: %q", out.Err)
	}
}

func TestExecuteToolCall_PanicContained(t *testing.T) {
	r := buildRegistry(t, &stubTool{name: "boom", keyword: "boom", panics: true})
	call, ok := r.ParseToolCall("CALL_TOOL boom")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	out := r.ExecuteToolCall(context.Background(), call)
	if out.OK {
		t.Fatal("expected failure from panicking tool")
	}
	if !strings.Contains(out.Err, "stub exploded") {
		t.Errorf("expected panic message in outcome, got %q", out.Err)
	}
}

// ─── End to end with real tools ────────────────────────────────────────────

func TestRegistry_CalculatorDispatch(t *testing.T) {
	r := buildRegistry(t, NewCalculatorTool(), NewClockTool())

	call, ok := r.ParseToolCall("CALL_TOOL add 2 2")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if call.Tool != "calculator" {
		t.Fatalf("expected calculator, got %q", call.Tool)
	}
	out := r.ExecuteToolCall(context.Background(), call)
	if !out.OK || out.Value != "4" {
		t.Errorf("expected value %q, got %+v", "4", out)
	}

	call, ok = r.ParseToolCall("CALL_TOOL divide 5 0")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	out = r.ExecuteToolCall(context.Background(), call)
	if out.OK {
		t.Fatal("expected division by zero to fail")
	}
	if out.Err != "Division by zero is not allowed." {
		t.Errorf("unexpected error message: %q", out.Err)
	}
}

func TestRegistry_DisjointGrammars(t *testing.T) {
	r := buildRegistry(t, NewCalculatorTool(), NewClockTool(), NewWebpageTool(0, 0))

	cases := []struct {
		reply string
		tool  string
	}{
		{"CALL_TOOL add 1 2", "calculator"},
		{"CALL_TOOL time UTC", "clock"},
		{"CALL_TOOL fetch https://example.com", "webpage"},
	}
	for _, tc := range cases {
		call, ok := r.ParseToolCall(tc.reply)
		if !ok {
			t.Errorf("expected %q to parse", tc.reply)
			continue
		}
		if call.Tool != tc.tool {
			t.Errorf("expected %q for %q, got %q", tc.tool, tc.reply, call.Tool)
		}
	}
}

// ─── SystemPrompt ──────────────────────────────────────────────────────────

func TestSystemPrompt_CatalogueOrderAndConvention(t *testing.T) {
	r := buildRegistry(t, NewCalculatorTool(), NewClockTool(), NewWebpageTool(0, 0))
	prompt := r.SystemPrompt()

	calc := strings.Index(prompt, "- calculator: ")
	clock := strings.Index(prompt, "- clock: ")
	web := strings.Index(prompt, "- webpage: ")
	if calc < 0 || clock < 0 || web < 0 {
		t.Fatalf("missing catalogue lines in prompt:\n%s", prompt)
	}
	if !(calc < clock && clock < web) {
		t.Errorf("catalogue lines out of registration order: %d %d %d", calc, clock, web)
	}
	if !strings.Contains(prompt, CallToken+" <operation> <arg1> <arg2>") {
		t.Error("prompt missing the call convention line")
	}
	if !strings.Contains(prompt, ResultMarker) {
		t.Error("prompt missing the result marker")
	}
}

func TestSystemPrompt_Empty(t *testing.T) {
	if got := NewRegistry().SystemPrompt(); got != "" {
		t.Errorf("expected empty prompt for empty registry, got %q", got)
	}
}
