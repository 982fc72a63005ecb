package schema

// AgentSettings carries the per-agent generation and loop parameters
// resolved from config.
type AgentSettings struct {
	Model             string
	MaxTokens         int
	Temperature       float64
	TopP              float64
	FrequencyPenalty  float64
	PresencePenalty   float64
	MaxToolIterations int
	HistoryWindow     int
}

// ChatOptions derives the request options sent to the provider.
func (s AgentSettings) ChatOptions() ChatOptions {
	return ChatOptions{
		Model:            s.Model,
		MaxTokens:        s.MaxTokens,
		Temperature:      s.Temperature,
		TopP:             s.TopP,
		FrequencyPenalty: s.FrequencyPenalty,
		PresencePenalty:  s.PresencePenalty,
	}
}
