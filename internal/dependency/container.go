// Package dependency wires core inkwhale services using go.uber.org/dig.
package dependency

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/inkwhale/inkwhale/internal/agent"
	"github.com/inkwhale/inkwhale/internal/config"
	"github.com/inkwhale/inkwhale/internal/providers"
	"github.com/inkwhale/inkwhale/internal/schema"
	"github.com/inkwhale/inkwhale/internal/session"
	"github.com/inkwhale/inkwhale/internal/tools"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	provider     schema.LLMProvider
	registry     *tools.Registry
	orchestrator *agent.Orchestrator
}

func (c *Container) Provider() schema.LLMProvider      { return c.provider }
func (c *Container) Registry() *tools.Registry         { return c.registry }
func (c *Container) Orchestrator() *agent.Orchestrator { return c.orchestrator }

// New builds and wires all core services from cfg. It fails when no API key
// is available; commands that never talk to the model should call
// BuildRegistry directly instead.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newProvider); err != nil {
		return nil, err
	}
	if err := d.Provide(BuildRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(newSession); err != nil {
		return nil, err
	}
	if err := d.Provide(newSettings); err != nil {
		return nil, err
	}
	if err := d.Provide(newOrchestrator); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		provider schema.LLMProvider,
		registry *tools.Registry,
		orchestrator *agent.Orchestrator,
	) {
		result = &Container{
			provider:     provider,
			registry:     registry,
			orchestrator: orchestrator,
		}
	})
	return result, err
}

// BuildRegistry assembles the tool registry from cfg. It needs no API key,
// so commands that only inspect tools call it without building a Container.
func BuildRegistry(cfg *config.Config) (*tools.Registry, error) {
	return tools.NewRegistryBuilder().
		WithTool(tools.NewCalculatorTool()).
		WithTool(tools.NewClockTool()).
		WithTool(tools.NewWebpageTool(cfg.Tools.Webpage.MaxChars, cfg.Tools.Webpage.TimeoutSeconds)).
		Build()
}

func newProvider(cfg *config.Config) (schema.LLMProvider, error) {
	apiKey := cfg.EffectiveAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured: set provider.apiKey in %s or export OPENAI_API_KEY", config.ConfigPath())
	}
	return providers.NewOpenAIProvider(apiKey, cfg.Agents.Defaults.Model, cfg.Provider), nil
}

func newSession() *session.Session {
	return session.New()
}

func newSettings(cfg *config.Config) schema.AgentSettings {
	d := cfg.Agents.Defaults
	return schema.AgentSettings{
		Model:             d.Model,
		MaxTokens:         d.MaxTokens,
		Temperature:       d.Temperature,
		TopP:              d.TopP,
		FrequencyPenalty:  d.FrequencyPenalty,
		PresencePenalty:   d.PresencePenalty,
		MaxToolIterations: d.MaxToolIter,
		HistoryWindow:     d.HistoryWindow,
	}
}

func newOrchestrator(
	provider schema.LLMProvider,
	registry *tools.Registry,
	settings schema.AgentSettings,
	sess *session.Session,
) *agent.Orchestrator {
	return agent.New(provider, registry, settings, sess)
}
