package catalog

// Schema is the JSON-Schema-shaped description of a tool's input, served on
// tool discovery. Required is always present, even when empty, to match the
// MCP inputSchema convention.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property describes one inputSchema property.
type Property struct {
	Type        string      `json:"type"`
	Description string      `json:"description,omitempty"`
	Default     interface{} `json:"default,omitempty"`
}

// InputSchema renders the tool's parameters as a JSON Schema object.
func (t *Tool) InputSchema() Schema {
	s := Schema{
		Type:       "object",
		Properties: make(map[string]Property, len(t.Params)),
		Required:   []string{},
	}
	for _, p := range t.Params {
		s.Properties[p.Name] = Property{
			Type:        string(p.Type),
			Description: p.Description,
			Default:     p.Default,
		}
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}
