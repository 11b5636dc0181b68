package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRoot(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["endpoints"]; !ok {
		t.Fatal("expected endpoints key in response")
	}
}

func TestListTools(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/mcp/tools", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Tools []struct {
			Name        string          `json:"name"`
			Description string          `json:"description"`
			InputSchema json.RawMessage `json:"inputSchema"`
		} `json:"tools"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Tools) != 8 {
		t.Fatalf("expected 8 tools, got %d", len(resp.Tools))
	}
	if resp.Tools[0].Name != "get_all_mids" {
		t.Fatalf("expected get_all_mids first, got %s", resp.Tools[0].Name)
	}
	for _, tool := range resp.Tools {
		if len(tool.InputSchema) == 0 {
			t.Fatalf("tool %s missing inputSchema", tool.Name)
		}
	}
}

func TestCallRoundTrip(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"BTC":"65000.5"}`))
	}))
	defer upstream.Close()

	s := New(Config{UpstreamURL: upstream.URL})
	body, _ := json.Marshal(map[string]interface{}{"name": "get_all_mids", "arguments": map[string]interface{}{}})
	req := httptest.NewRequest(http.MethodPost, "/mcp/call", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp CallResult
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.IsError {
		t.Fatalf("unexpected error result: %+v", resp)
	}
	if len(resp.Content) != 1 || resp.Content[0].Type != "text" {
		t.Fatalf("unexpected content: %+v", resp.Content)
	}
	if !strings.Contains(resp.Content[0].Text, "65000.5") {
		t.Fatalf("upstream data missing from content: %q", resp.Content[0].Text)
	}
}

func TestCallUnknownTool(t *testing.T) {
	s := New(Config{})
	body, _ := json.Marshal(map[string]interface{}{"name": "bogus", "arguments": map[string]interface{}{}})
	req := httptest.NewRequest(http.MethodPost, "/mcp/call", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp CallResult
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.IsError {
		t.Fatal("expected isError for unknown tool")
	}
	if !strings.Contains(resp.Content[0].Text, "Unknown tool: bogus") {
		t.Fatalf("unexpected error text: %q", resp.Content[0].Text)
	}
}

func TestCallInvalidJSON(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodPost, "/mcp/call", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
