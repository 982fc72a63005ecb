package tools

import (
	"context"
	"strings"
	"time"
)

// ClockArgs carry the zone operand of a clock call.
type ClockArgs struct {
	Zone string
}

func (ClockArgs) isArgs() {}

func (a ClockArgs) String() string { return "time " + a.Zone }

// ClockTool reports the current time in a named IANA time zone.
// Grammar: CALL_TOOL time <zone>
type ClockTool struct {
	now func() time.Time // stubbed in tests
}

func NewClockTool() *ClockTool {
	return &ClockTool{now: time.Now}
}

func (t *ClockTool) Name() string { return "clock" }

func (t *ClockTool) Description() string {
	return "Reports the current time in a time zone. " +
		"Usage: CALL_TOOL time <IANA zone>, e.g. CALL_TOOL time Europe/Paris."
}

// Recognize matches the clock grammar: the call token, the time keyword,
// and a single zone operand. Zone validity is checked at execution time;
// an unknown zone is a failed call, not an unrecognized one.
func (t *ClockTool) Recognize(reply string) (Args, bool) {
	fields, ok := callFields(reply)
	if !ok || len(fields) != 3 || !strings.EqualFold(fields[1], "time") {
		return nil, false
	}
	return ClockArgs{Zone: fields[2]}, true
}

func (t *ClockTool) Execute(_ context.Context, args Args) Outcome {
	ca, ok := args.(ClockArgs)
	if !ok {
		return Failuref("clock: unexpected arguments %T", args)
	}
	loc, err := time.LoadLocation(ca.Zone)
	if err != nil {
		return Failuref("Unknown time zone %q.", ca.Zone)
	}
	return Success(t.now().In(loc).Format("Mon, 02 Jan 2006 15:04:05 MST"))
}
