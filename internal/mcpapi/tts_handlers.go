package mcpapi

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/krishvadhani19/resemble-project/internal/resemble"
)

// ttsFailureText is the stable failure payload callers of generate_tts see.
// The failure classification lives in the IsError flag and the server logs,
// so callers are not forced to match on message text.
const ttsFailureText = "Unable to generate TTS audio."

// handleGenerateTTS synthesizes speech for the given text and writes the
// decoded audio to a file under the configured output directory.
func (r *Router) handleGenerateTTS(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	voiceUUID := req.GetString("voice_uuid", r.cfg.VoiceUUID)
	outputFormat := req.GetString("output_format", r.cfg.OutputFormat)

	audio, err := r.client.Synthesize(ctx, text, voiceUUID, outputFormat)
	if err != nil {
		r.logger.WithError(err).WithField("kind", resemble.KindOf(err)).Error("tts: synthesis failed")
		sentry.CaptureException(err)
		return mcp.NewToolResultError(ttsFailureText), nil
	}

	// Unique name per request so concurrent calls cannot clobber each other.
	name := fmt.Sprintf("output.%s.%s", uuid.NewString()[:8], outputFormat)
	path := filepath.Join(r.cfg.OutputDir, name)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		r.logger.WithError(err).WithField("path", path).Error("tts: write audio file")
		sentry.CaptureException(err)
		return mcp.NewToolResultError(ttsFailureText), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("TTS audio generated and saved as %s", path)), nil
}
