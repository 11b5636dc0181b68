// Package invoke maps (tool name, arguments) pairs onto Hyperliquid info
// requests and wraps every outcome in a uniform envelope.
package invoke

import (
	"context"
	"encoding/json"
	"fmt"

	"hyperliquid-mcp/internal/catalog"
	"hyperliquid-mcp/internal/hyperliquid"
)

// Envelope is the only result shape surfaced to callers. Exactly one of Data
// and Error is present, keyed by Success.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Adapter validates arguments against the catalogue, builds the tool-specific
// upstream payload, and performs the HTTP call. It holds no mutable state;
// concurrent invocations need no coordination.
type Adapter struct {
	client *hyperliquid.Client
}

// New returns an Adapter backed by the given client.
func New(client *hyperliquid.Client) *Adapter {
	return &Adapter{client: client}
}

// Invoke executes a single tool call. It never returns an error: unknown
// tools, invalid arguments, and upstream failures all come back as failure
// envelopes. Caller mistakes (unknown tool, bad arguments) are rejected
// before any upstream request is made.
func (a *Adapter) Invoke(ctx context.Context, name string, args map[string]interface{}) Envelope {
	tool, ok := catalog.Lookup(name)
	if !ok {
		return failure("Unknown tool: %s", name)
	}
	resolved, err := resolveArgs(tool, args)
	if err != nil {
		return failure("%s", err)
	}
	payload := buildPayload(tool, resolved)
	data, err := a.client.Info(ctx, payload)
	if err != nil {
		return failure("%s", err)
	}
	return Envelope{Success: true, Data: data}
}

// resolveArgs applies the catalogue's required/default rules: a supplied value
// is taken verbatim after a scalar type check, a missing required parameter is
// an error, and a missing optional parameter is defaulted or dropped entirely.
func resolveArgs(tool *catalog.Tool, args map[string]interface{}) (map[string]interface{}, error) {
	resolved := make(map[string]interface{}, len(tool.Params))
	for _, p := range tool.Params {
		v, present := args[p.Name]
		if !present {
			if p.Required {
				return nil, fmt.Errorf("missing required argument: %s", p.Name)
			}
			if p.Default != nil {
				resolved[p.Name] = p.Default
			}
			continue
		}
		if !matchesType(v, p.Type) {
			return nil, fmt.Errorf("invalid argument %q: expected %s", p.Name, p.Type)
		}
		resolved[p.Name] = v
	}
	return resolved, nil
}

func matchesType(v interface{}, t catalog.ParamType) bool {
	switch t {
	case catalog.TypeString:
		_, ok := v.(string)
		return ok
	case catalog.TypeNumber:
		switch v.(type) {
		case float64, int, int64, json.Number:
			return true
		}
		return false
	case catalog.TypeBoolean:
		_, ok := v.(bool)
		return ok
	}
	return false
}

func failure(format string, args ...interface{}) Envelope {
	return Envelope{Error: fmt.Sprintf(format, args...)}
}
