package tools

// RegistryBuilder accumulates tools during the construction phase.
// Call Build() to produce a Registry ready for use.
type RegistryBuilder struct {
	tools []Tool
}

// NewRegistryBuilder returns a fresh RegistryBuilder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// WithTool adds a tool and returns the builder, enabling chaining.
func (b *RegistryBuilder) WithTool(tool Tool) *RegistryBuilder {
	b.tools = append(b.tools, tool)
	return b
}

// Build produces a Registry holding the accumulated tools in the order
// they were added. Duplicate names follow Register semantics: the last
// tool wins, keeping the original position.
func (b *RegistryBuilder) Build() (*Registry, error) {
	r := NewRegistry()
	for _, t := range b.tools {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}
