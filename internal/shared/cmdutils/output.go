package cmdutils

import "fmt"

const logo = "🐋"

// PrintResponse prints an assistant reply with the inkwhale banner.
func PrintResponse(text string) {
	if text == "" {
		return
	}

	fmt.Printf("\n%s inkwhale\n%s\n\n", logo, text)
}

// PrintToolCall prints a one-line progress note while a tool runs.
func PrintToolCall(name, preview string) {
	if preview == "" {
		fmt.Printf("  ⚙ %s\n", name)
		return
	}
	fmt.Printf("  ⚙ %s → %s\n", name, preview)
}
