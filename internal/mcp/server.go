package mcp

import (
	"context"
	"fmt"
	"log"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/clickthrough/internal/actionlog"
	"github.com/1broseidon/clickthrough/internal/config"
	"github.com/1broseidon/clickthrough/internal/platform"
)

const (
	ServerName    = "clickthrough"
	ServerVersion = "0.1.0"
)

// Server exposes click-through operations as MCP tools.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	backend   platform.Backend
	logger    *actionlog.Logger

	// resolveFn maps a selector to a handle (replaced in tests).
	resolveFn func(platform.Target, platform.Options) (platform.Handle, error)
}

// NewServer creates a new MCP server on the configured backend.
func NewServer(cfg *config.Config) (*Server, error) {
	backend, err := platform.Open(cfg.Backend, cfg.PlatformOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", cfg.Backend, err)
	}

	logCfg := cfg.GetActionLogConfig()
	var logger *actionlog.Logger
	if logCfg.Enabled {
		logger, err = actionlog.New(actionlog.Config{
			Enabled:   logCfg.Enabled,
			FilePath:  logCfg.File,
			MaxSizeMB: logCfg.MaxSizeMB,
			MaxFiles:  logCfg.MaxFiles,
		})
		if err != nil {
			log.Printf("Warning: failed to initialize action log: %v", err)
			logger = nil
		}
	}

	return newServer(cfg, backend, logger), nil
}

func newServer(cfg *config.Config, backend platform.Backend, logger *actionlog.Logger) *Server {
	s := &Server{
		config:    cfg,
		backend:   backend,
		logger:    logger,
		resolveFn: platform.Resolve,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases server resources.
func (s *Server) Close() error {
	if s == nil || s.logger == nil {
		return nil
	}
	return s.logger.Close()
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_click_through",
		Description: "Make a native window ignore mouse events (click-through) or restore normal pointer handling. On X11 this replaces the window's SHAPE input region; on Windows it toggles WS_EX_TRANSPARENT and WS_EX_LAYERED.",
	}, s.handleSetClickThrough)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_click_through",
		Description: "Report whether a native window currently ignores mouse events. Does not change the window.",
	}, s.handleGetClickThrough)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Ask the window manager to move a window via _NET_WM_MOVERESIZE (X11 only). The request is asynchronous and the window manager may ignore it.",
	}, s.handleMoveWindow)
}

func (s *Server) resolve(window, title string, active bool) (platform.Handle, error) {
	return s.resolveFn(platform.Target{
		ID:     window,
		Title:  title,
		Active: active,
	}, s.config.PlatformOptions())
}
