package mcpapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/krishvadhani19/resemble-project/internal/resemble"
)

// handleListVoices returns one page of the provider's voice catalog.
// The provider body is passed through verbatim; failures come back as a
// `{"error": ...}` document with the error flag set.
func (r *Router) handleListVoices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := req.GetInt("page", 1)
	pageSize := req.GetInt("page_size", 10)

	body, err := r.client.ListVoices(ctx, page, pageSize)
	if err != nil {
		r.logger.WithError(err).WithField("kind", resemble.KindOf(err)).Error("voices: listing failed")
		sentry.CaptureException(err)
		doc, _ := json.Marshal(map[string]string{
			"error": fmt.Sprintf("error retrieving voices: %v", err),
		})
		return mcp.NewToolResultError(string(doc)), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}
