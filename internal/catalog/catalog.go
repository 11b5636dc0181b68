// Package catalog defines the static tool catalogue: the eight Hyperliquid
// market-data tools, their parameters, and their discovery schemas.
package catalog

// ParamType is the JSON type a parameter accepts. Only scalar types are
// allowed; object and array arguments are rejected at the boundary.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
)

// Param describes a single tool parameter. A required parameter never carries
// a default; an optional parameter without a default is omitted from the
// upstream payload unless the caller supplies it.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Default     interface{}
}

// Tool describes one catalogue entry. The set is fixed at process start and
// never mutated.
type Tool struct {
	Name        string
	Description string
	Params      []Param
}

var tools = []Tool{
	{
		Name:        "get_all_mids",
		Description: "Get all market IDs (symbols) available on Hyperliquid",
	},
	{
		Name:        "get_user_state",
		Description: "Get user account state including balances and positions",
		Params: []Param{
			{Name: "user_address", Type: TypeString, Description: "User wallet address", Required: true},
		},
	},
	{
		Name:        "get_recent_trades",
		Description: "Get recent trades for a specific coin",
		Params: []Param{
			{Name: "coin", Type: TypeString, Description: "Coin symbol (e.g., 'BTC', 'ETH')", Required: true},
			{Name: "n", Type: TypeNumber, Description: "Number of trades to return (default: 100)", Default: 100},
		},
	},
	{
		Name:        "get_l2_snapshot",
		Description: "Get Level 2 order book snapshot for a coin",
		Params: []Param{
			{Name: "coin", Type: TypeString, Description: "Coin symbol", Required: true},
		},
	},
	{
		Name:        "get_candles",
		Description: "Get OHLCV candlestick data for a coin",
		Params: []Param{
			{Name: "coin", Type: TypeString, Description: "Coin symbol", Required: true},
			{Name: "interval", Type: TypeString, Description: "Candle interval (e.g., '1m', '5m', '1h', '1d')", Default: "1h"},
			{Name: "start_time", Type: TypeNumber, Description: "Start timestamp (milliseconds)"},
			{Name: "end_time", Type: TypeNumber, Description: "End timestamp (milliseconds)"},
			{Name: "limit", Type: TypeNumber, Description: "Maximum number of candles to return"},
		},
	},
	{
		Name:        "get_meta",
		Description: "Get exchange metadata including asset information",
	},
	{
		Name:        "get_funding_rates",
		Description: "Get current funding rates for perpetual markets",
		Params: []Param{
			{Name: "coin", Type: TypeString, Description: "Coin symbol; omit for all markets"},
		},
	},
	{
		Name:        "get_open_interest",
		Description: "Get open interest data for a coin",
		Params: []Param{
			{Name: "coin", Type: TypeString, Description: "Coin symbol", Required: true},
		},
	},
}

var byName = func() map[string]*Tool {
	m := make(map[string]*Tool, len(tools))
	for i := range tools {
		m[tools[i].Name] = &tools[i]
	}
	return m
}()

// List returns the full catalogue in its stable declaration order.
func List() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// Lookup returns the tool with the given name, or false if no such tool exists.
func Lookup(name string) (*Tool, bool) {
	t, ok := byName[name]
	return t, ok
}
