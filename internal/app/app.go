package app

import (
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/krishvadhani19/resemble-project/internal/mcpapi"
	"github.com/krishvadhani19/resemble-project/internal/resemble"
)

const serverName = "resemble-server"

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

type App struct {
	cfg        Config
	logger     *logrus.Logger
	httpClient *http.Client // Shared HTTP client with connection pooling for Resemble calls
	mcp        *server.MCPServer
}

func New(cfg Config, logger *logrus.Logger) *App {
	// Shared HTTP client with connection pooling.
	// Keeps TCP connections alive to reduce latency for repeated calls to Resemble.
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10, // Both endpoints live on Resemble hosts
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	client := resemble.New(resemble.ClientConfig{
		APIKey:        cfg.APIKey,
		SynthesizeURL: cfg.SynthesizeURL,
		VoicesURL:     cfg.VoicesURL,
		HTTPClient:    httpClient,
	})

	mcpServer := server.NewMCPServer(serverName, Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	router := mcpapi.NewRouter(mcpapi.RouterConfig{
		VoiceUUID:    cfg.VoiceUUID,
		OutputFormat: cfg.OutputFormat,
		OutputDir:    cfg.OutputDir,
	}, logger, client)
	router.Register(mcpServer)

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpClient: httpClient,
		mcp:        mcpServer,
	}
}

// Serve runs the stdio dispatch loop until the client disconnects or the
// process is terminated.
func (a *App) Serve() error {
	return server.ServeStdio(a.mcp)
}
