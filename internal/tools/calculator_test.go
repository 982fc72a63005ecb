package tools

import (
	"context"
	"testing"
)

// recognizeCalc parses reply with a fresh calculator tool.
func recognizeCalc(t *testing.T, reply string) (CalculatorArgs, bool) {
	t.Helper()
	args, ok := NewCalculatorTool().Recognize(reply)
	if !ok {
		return CalculatorArgs{}, false
	}
	ca, isCalc := args.(CalculatorArgs)
	if !isCalc {
		t.Fatalf("expected CalculatorArgs, got %T", args)
	}
	return ca, true
}

// execCalc parses and executes reply, failing the test if it does not parse.
func execCalc(t *testing.T, reply string) Outcome {
	t.Helper()
	tool := NewCalculatorTool()
	args, ok := tool.Recognize(reply)
	if !ok {
		t.Fatalf("expected %q to parse", reply)
	}
	return tool.Execute(context.Background(), args)
}

// ─── Recognize ─────────────────────────────────────────────────────────────

func TestCalculatorRecognize_Basic(t *testing.T) {
	ca, ok := recognizeCalc(t, "CALL_TOOL add 2 2")
	if !ok {
		t.Fatal("expected a match")
	}
	if ca.Op != "add" || ca.A != 2 || ca.B != 2 {
		t.Errorf("unexpected args: %+v", ca)
	}
}

func TestCalculatorRecognize_CaseInsensitive(t *testing.T) {
	ca, ok := recognizeCalc(t, "call_tool DIVIDE 10 4")
	if !ok {
		t.Fatal("expected a match")
	}
	if ca.Op != "divide" {
		t.Errorf("expected op %q, got %q", "divide", ca.Op)
	}
}

func TestCalculatorRecognize_FloatOperands(t *testing.T) {
	ca, ok := recognizeCalc(t, "CALL_TOOL multiply -1.5 2e3")
	if !ok {
		t.Fatal("expected a match")
	}
	if ca.A != -1.5 || ca.B != 2000 {
		t.Errorf("unexpected operands: %+v", ca)
	}
}

func TestCalculatorRecognize_NoMatch(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"plain text", "The answer is 4."},
		{"non-numeric operand", "CALL_TOOL multiply x 3"},
		{"missing operand", "CALL_TOOL add 2"},
		{"extra operand", "CALL_TOOL add 2 2 2"},
		{"unknown operation", "CALL_TOOL modulo 5 2"},
		{"token not first", "Please run CALL_TOOL add 2 2"},
		{"empty reply", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := NewCalculatorTool().Recognize(tc.reply); ok {
				t.Errorf("expected no match for %q", tc.reply)
			}
		})
	}
}

// ─── Execute ───────────────────────────────────────────────────────────────

func TestCalculatorExecute_Add(t *testing.T) {
	out := execCalc(t, "CALL_TOOL add 2 2")
	if !out.OK {
		t.Fatalf("unexpected failure: %s", out.Err)
	}
	if out.Value != "4" {
		t.Errorf("expected %q, got %q", "4", out.Value)
	}
}

func TestCalculatorExecute_FractionalResult(t *testing.T) {
	out := execCalc(t, "CALL_TOOL divide 7 2")
	if !out.OK {
		t.Fatalf("unexpected failure: %s", out.Err)
	}
	if out.Value != "3.5" {
		t.Errorf("expected %q, got %q", "3.5", out.Value)
	}
}

func TestCalculatorExecute_NegativeResult(t *testing.T) {
	out := execCalc(t, "CALL_TOOL subtract 2.5 5")
	if !out.OK {
		t.Fatalf("unexpected failure: %s", out.Err)
	}
	if out.Value != "-2.5" {
		t.Errorf("expected %q, got %q", "-2.5", out.Value)
	}
}

func TestCalculatorExecute_DivisionByZero(t *testing.T) {
	out := execCalc(t, "CALL_TOOL divide 5 0")
	if out.OK {
		t.Fatalf("expected failure, got value %q", out.Value)
	}
	if out.Err != "Division by zero is not allowed." {
		t.Errorf("unexpected error message: %q", out.Err)
	}
}

func TestCalculatorExecute_DivisionByNegativeZero(t *testing.T) {
	out := execCalc(t, "CALL_TOOL divide 5 -0")
	if out.OK {
		t.Fatalf("expected failure, got value %q", out.Value)
	}
}

func TestCalculatorExecute_WrongArgsType(t *testing.T) {
	out := NewCalculatorTool().Execute(context.Background(), ClockArgs{Zone: "UTC"})
	if out.OK {
		t.Fatal("expected failure for mismatched argument type")
	}
}
