package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	opAdd      = "add"
	opSubtract = "subtract"
	opMultiply = "multiply"
	opDivide   = "divide"
)

// CalculatorArgs are the parsed operands of a calculator call.
type CalculatorArgs struct {
	Op string
	A  float64
	B  float64
}

func (CalculatorArgs) isArgs() {}

func (a CalculatorArgs) String() string {
	return fmt.Sprintf("%s %s %s", a.Op, formatNumber(a.A), formatNumber(a.B))
}

// CalculatorTool evaluates basic arithmetic on two operands.
// Grammar: CALL_TOOL <add|subtract|multiply|divide> <a> <b>
type CalculatorTool struct{}

func NewCalculatorTool() *CalculatorTool { return &CalculatorTool{} }

func (t *CalculatorTool) Name() string { return "calculator" }

func (t *CalculatorTool) Description() string {
	return "Performs basic arithmetic on two numbers. " +
		"Usage: CALL_TOOL add|subtract|multiply|divide <a> <b>, e.g. CALL_TOOL add 2 2."
}

// Recognize matches the calculator grammar: the call token, one operation
// keyword, and exactly two numeric operands. Anything else is not a call
// to this tool.
func (t *CalculatorTool) Recognize(reply string) (Args, bool) {
	fields, ok := callFields(reply)
	if !ok || len(fields) != 4 {
		return nil, false
	}
	op := strings.ToLower(fields[1])
	switch op {
	case opAdd, opSubtract, opMultiply, opDivide:
	default:
		return nil, false
	}
	a, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, false
	}
	b, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, false
	}
	return CalculatorArgs{Op: op, A: a, B: b}, true
}

func (t *CalculatorTool) Execute(_ context.Context, args Args) Outcome {
	ca, ok := args.(CalculatorArgs)
	if !ok {
		return Failuref("calculator: unexpected arguments %T", args)
	}

	var result float64
	switch ca.Op {
	case opAdd:
		result = ca.A + ca.B
	case opSubtract:
		result = ca.A - ca.B
	case opMultiply:
		result = ca.A * ca.B
	case opDivide:
		if ca.B == 0 {
			return Failuref("Division by zero is not allowed.")
		}
		result = ca.A / ca.B
	default:
		return Failuref("calculator: unknown operation %q", ca.Op)
	}
	return Success(formatNumber(result))
}

// formatNumber renders a float with the shortest exact representation, so
// whole results print without a decimal point (4, not 4.000000).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
