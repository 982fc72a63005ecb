package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwhale/inkwhale/internal/config"
	"github.com/inkwhale/inkwhale/internal/dependency"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List available tools and the calling convention",
	RunE:  runTools,
}

// runTools prints the tool section of the system prompt exactly as the
// model sees it. No API key is needed.
func runTools(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	reg, err := dependency.BuildRegistry(cfg)
	if err != nil {
		return err
	}

	fmt.Println(reg.SystemPrompt())
	return nil
}
