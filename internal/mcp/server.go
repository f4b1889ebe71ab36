// Package mcp exposes the daemon's command vocabulary as MCP tools. Tool
// calls are forwarded to the control socket; the server holds no window state.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/splitd/internal/split"
)

const (
	ServerName    = "splitd"
	ServerVersion = "0.1.0"
)

// Sender delivers a command to the daemon. *ipc.Client satisfies it.
type Sender interface {
	Send(cmd split.Command) error
	SocketPath() string
}

var commandDescriptions = map[split.Command]string{
	split.CommandRestore:    "Return the focused window to its remembered windowed geometry.",
	split.CommandSplitLeft:  "Pin the focused window to the left half of the work area.",
	split.CommandSplitRight: "Pin the focused window to the right half of the work area.",
	split.CommandMaximize:   "Maximize the focused window. The window must already be tracked.",
	split.CommandSave:       "Remember the focused window's current geometry as its restore target.",
	split.CommandRestart:    "Reconnect the daemon to the X server, keeping all remembered windows.",
	split.CommandQuit:       "Stop the daemon and remove its control socket.",
}

// Server is the MCP server for splitd.
type Server struct {
	mcpServer *mcpsdk.Server
	sender    Sender
	logger    *slog.Logger
}

// NewServer creates an MCP server that forwards tool calls through sender.
func NewServer(sender Sender, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{sender: sender, logger: logger}
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

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "window_command",
		Description: "Send a layout command to the splitd daemon. Commands act on the currently focused window: splitleft/splitright pin it to half the screen, restore returns it to the geometry it had before, save records its current geometry, maximize maximizes a tracked window. Delivery is fire-and-forget; the daemon does not report whether the command succeeded.",
	}, s.handleWindowCommand)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_commands",
		Description: "List the commands accepted by window_command.",
	}, s.handleListCommands)
}

func (s *Server) handleWindowCommand(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowCommandInput) (*mcpsdk.CallToolResult, WindowCommandOutput, error) {
	name := strings.ToLower(strings.TrimSpace(args.Command))
	cmd, err := split.ParseCommand(name)
	if err != nil {
		return nil, WindowCommandOutput{}, fmt.Errorf("%w; use list_commands for the accepted names", err)
	}
	if err := s.sender.Send(cmd); err != nil {
		s.logger.Warn("mcp window_command failed", "command", cmd.String(), "error", err)
		return nil, WindowCommandOutput{}, err
	}
	s.logger.Info("mcp window_command sent", "command", cmd.String())
	return nil, WindowCommandOutput{
		Command: cmd.String(),
		Sent:    true,
		Socket:  s.sender.SocketPath(),
	}, nil
}

func (s *Server) handleListCommands(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListCommandsInput) (*mcpsdk.CallToolResult, ListCommandsOutput, error) {
	cmds := split.Commands()
	out := ListCommandsOutput{Commands: make([]CommandInfo, 0, len(cmds))}
	for _, cmd := range cmds {
		out.Commands = append(out.Commands, CommandInfo{
			Name:        cmd.String(),
			Description: commandDescriptions[cmd],
		})
	}
	return nil, out, nil
}
