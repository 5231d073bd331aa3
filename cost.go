package openai

import (
	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// CostThreshold is the default total token count above which a usage
	// alert is logged
	CostThreshold = 1000
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CheckCost logs a usage alert when usage.total_tokens exceeds the client
// threshold. It never fails and keeps no state between calls.
func (c *Client) CheckCost(usage map[string]any) {
	total, ok := schema.TotalTokens(usage)
	if !ok || total <= c.threshold {
		return
	}
	c.logger.Printf("Usage alert: Total tokens exceeded the threshold. Used: %d", total)
}
