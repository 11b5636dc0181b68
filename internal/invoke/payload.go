package invoke

import "hyperliquid-mcp/internal/catalog"

// requestSpec is the fixed mapping from a tool to its upstream request: the
// info "type" discriminator plus the rename from each catalogue parameter to
// the upstream field name. Enumerated once here, never inferred.
type requestSpec struct {
	infoType string
	fields   map[string]string
}

var requestSpecs = map[string]requestSpec{
	"get_all_mids": {infoType: "allMids"},
	"get_user_state": {infoType: "clearinghouseState", fields: map[string]string{
		"user_address": "user",
	}},
	"get_recent_trades": {infoType: "trades", fields: map[string]string{
		"coin": "coin",
		"n":    "n",
	}},
	"get_l2_snapshot": {infoType: "l2Book", fields: map[string]string{
		"coin": "coin",
	}},
	"get_candles": {infoType: "candles", fields: map[string]string{
		"coin":       "coin",
		"interval":   "interval",
		"start_time": "startTime",
		"end_time":   "endTime",
		"limit":      "limit",
	}},
	"get_meta": {infoType: "meta"},
	"get_funding_rates": {infoType: "fundingRates", fields: map[string]string{
		"coin": "coin",
	}},
	"get_open_interest": {infoType: "openInterest", fields: map[string]string{
		"coin": "coin",
	}},
}

// buildPayload assembles the upstream request body from resolved arguments.
// Parameters absent from resolved are left out of the body entirely; the
// upstream never sees a null field.
func buildPayload(tool *catalog.Tool, resolved map[string]interface{}) map[string]interface{} {
	spec := requestSpecs[tool.Name]
	payload := map[string]interface{}{"type": spec.infoType}
	for _, p := range tool.Params {
		v, ok := resolved[p.Name]
		if !ok {
			continue
		}
		payload[spec.fields[p.Name]] = v
	}
	return payload
}
