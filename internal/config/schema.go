// Package config defines the configuration schema for inkwhale.
//
// YAML keys use camelCase so the file reads the same as the struct fields
// they mirror.
package config

import "os"

// ProviderConfig holds the OpenAI-compatible endpoint settings.
type ProviderConfig struct {
	APIKey         string            `yaml:"apiKey"`
	APIBase        string            `yaml:"apiBase,omitempty"`
	ExtraHeaders   map[string]string `yaml:"extraHeaders,omitempty"`
	TimeoutSeconds int               `yaml:"timeoutSeconds"`
	MaxRetries     int               `yaml:"maxRetries"`
}

func defaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		TimeoutSeconds: 120,
		MaxRetries:     2,
	}
}

// AgentDefaults holds default values for conversation behaviour.
type AgentDefaults struct {
	Model            string  `yaml:"model"`
	MaxTokens        int     `yaml:"maxTokens"`
	Temperature      float64 `yaml:"temperature"`
	TopP             float64 `yaml:"topP,omitempty"`
	FrequencyPenalty float64 `yaml:"frequencyPenalty,omitempty"`
	PresencePenalty  float64 `yaml:"presencePenalty,omitempty"`
	MaxToolIter      int     `yaml:"maxToolIterations"`
	HistoryWindow    int     `yaml:"historyWindow"`
}

func defaultAgentDefaults() AgentDefaults {
	return AgentDefaults{
		Model:         "gpt-4o-mini",
		MaxTokens:     8192,
		Temperature:   0.7,
		MaxToolIter:   10,
		HistoryWindow: 0, // full transcript
	}
}

// AgentsConfig wraps agent defaults.
type AgentsConfig struct {
	Defaults AgentDefaults `yaml:"defaults"`
}

func defaultAgentsConfig() AgentsConfig {
	return AgentsConfig{Defaults: defaultAgentDefaults()}
}

// WebpageToolConfig configures the webpage fetch tool.
type WebpageToolConfig struct {
	MaxChars       int `yaml:"maxChars"`
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

func defaultWebpageToolConfig() WebpageToolConfig {
	return WebpageToolConfig{MaxChars: 20000, TimeoutSeconds: 30}
}

// ToolsConfig groups all tool-level settings.
type ToolsConfig struct {
	Webpage WebpageToolConfig `yaml:"webpage"`
}

func defaultToolsConfig() ToolsConfig {
	return ToolsConfig{Webpage: defaultWebpageToolConfig()}
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

func defaultLogConfig() LogConfig {
	return LogConfig{Level: "warn"}
}

// Config is the root configuration object, loaded from ~/.inkwhale/config.yaml.
type Config struct {
	Agents   AgentsConfig   `yaml:"agents"`
	Provider ProviderConfig `yaml:"provider"`
	Tools    ToolsConfig    `yaml:"tools"`
	Log      LogConfig      `yaml:"log"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		Agents:   defaultAgentsConfig(),
		Provider: defaultProviderConfig(),
		Tools:    defaultToolsConfig(),
		Log:      defaultLogConfig(),
	}
}

// EffectiveAPIKey returns the configured API key, falling back to the
// OPENAI_API_KEY environment variable.
func (c *Config) EffectiveAPIKey() string {
	if c.Provider.APIKey != "" {
		return c.Provider.APIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}
