package mcpapi

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/krishvadhani19/resemble-project/internal/resemble"
)

type RouterConfig struct {
	// Defaults applied when the caller omits the corresponding argument.
	VoiceUUID    string
	OutputFormat string

	// Directory synthesized audio files are written to.
	OutputDir string
}

// Router holds the dependencies shared by the exposed tool handlers.
type Router struct {
	cfg    RouterConfig
	logger *logrus.Logger
	client *resemble.Client
}

func NewRouter(cfg RouterConfig, logger *logrus.Logger, client *resemble.Client) *Router {
	return &Router{cfg: cfg, logger: logger, client: client}
}

// Register declares the exposed operations on the MCP server.
func (r *Router) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("generate_tts",
		mcp.WithDescription("Generate text-to-speech audio from text using Resemble AI and save it to a local file."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to convert to speech."),
		),
		mcp.WithString("voice_uuid",
			mcp.Description("UUID of the Resemble voice model to use."),
		),
		mcp.WithString("output_format",
			mcp.Description("Output audio format, e.g. \"mp3\" or \"wav\"."),
		),
	), r.handleGenerateTTS)

	s.AddTool(mcp.NewTool("list_voices",
		mcp.WithDescription("Retrieve one page of the available Resemble AI voice models."),
		mcp.WithNumber("page",
			mcp.Description("Page number to retrieve."),
			mcp.DefaultNumber(1),
			mcp.Min(1),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of voices per page."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
		),
	), r.handleListVoices)
}
