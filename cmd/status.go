package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwhale/inkwhale/internal/config"
	"github.com/inkwhale/inkwhale/internal/dependency"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show inkwhale status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Printf("%s inkwhale Status\n\n", logo)

	cfgMark := "✗"
	if _, err := os.Stat(cfgPath); err == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:   %s %s\n", cfgPath, cfgMark)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	fmt.Printf("Model:    %s\n", cfg.Agents.Defaults.Model)

	keyMark := "✗ (set provider.apiKey or OPENAI_API_KEY)"
	if cfg.EffectiveAPIKey() != "" {
		keyMark = "✓"
	}
	fmt.Printf("API key:  %s\n", keyMark)

	base := cfg.Provider.APIBase
	if base == "" {
		base = "https://api.openai.com/v1 (default)"
	}
	fmt.Printf("API base: %s\n", base)

	reg, err := dependency.BuildRegistry(cfg)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(reg.Tools()))
	for _, t := range reg.Tools() {
		names = append(names, t.Name())
	}
	fmt.Printf("Tools:    %s\n", strings.Join(names, ", "))

	return nil
}
