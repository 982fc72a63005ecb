package tools

import "fmt"

// Outcome is the result of one tool execution: either a value or an error
// message, both plain text destined for the model. Executors report every
// failure through an Outcome instead of a Go error or a panic, so a failed
// call is data for the conversation, not control flow.
type Outcome struct {
	OK    bool
	Value string // set when OK
	Err   string // set when !OK
}

// Success returns an ok outcome carrying value.
func Success(value string) Outcome {
	return Outcome{OK: true, Value: value}
}

// Failuref returns a failed outcome with a formatted error message.
func Failuref(format string, args ...any) Outcome {
	return Outcome{Err: fmt.Sprintf(format, args...)}
}

// Text returns the value or the error message, whichever the outcome holds.
func (o Outcome) Text() string {
	if o.OK {
		return o.Value
	}
	return o.Err
}
