package server

// CallRequest is the body of a POST /mcp/call.
type CallRequest struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"arguments"`
}

// ContentBlock is one element of an MCP tool result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the MCP-shaped response to a tool call.
type CallResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError"`
}
