package agent

import (
	"fmt"
	"runtime"
	"time"

	"github.com/inkwhale/inkwhale/internal/tools"
)

// identityTemplate is the fixed head of every system prompt. The verbs are
// addressed to the model, not the user.
const identityTemplate = `# inkwhale 🐋

You are inkwhale, a helpful assistant running in a terminal.

## Session Started
%s (%s)

## Runtime
%s

Be helpful, accurate, and concise. Answer in the user's language.`

// BuildSystemPrompt assembles the system prompt: identity, session start
// time and runtime, followed by the tool catalogue and calling convention.
// Built once when a session starts; the clock tool covers current time
// after that.
func BuildSystemPrompt(reg *tools.Registry, now time.Time) string {
	tz, _ := now.Zone()
	if tz == "" {
		tz = "UTC"
	}

	osName := runtime.GOOS
	if osName == "darwin" {
		osName = "macOS"
	}
	runtimeStr := fmt.Sprintf("%s %s, Go %s", osName, runtime.GOARCH, runtime.Version())

	identity := fmt.Sprintf(identityTemplate,
		now.Format("2006-01-02 15:04 (Monday)"), tz,
		runtimeStr,
	)

	if reg == nil {
		return identity
	}
	catalogue := reg.SystemPrompt()
	if catalogue == "" {
		return identity
	}
	return identity + "\n\n---\n\n" + catalogue
}
