package main

import (
	"fmt"

	"github.com/1broseidon/splitd/internal/ipc"
	"github.com/1broseidon/splitd/internal/split"
	"github.com/spf13/cobra"
)

var verbShort = map[split.Command]string{
	split.CommandRestore:    "Return the focused window to its remembered geometry",
	split.CommandSplitLeft:  "Pin the focused window to the left half of the screen",
	split.CommandSplitRight: "Pin the focused window to the right half of the screen",
	split.CommandMaximize:   "Maximize the focused window (it must already be tracked)",
	split.CommandSave:       "Remember the focused window's current geometry",
	split.CommandRestart:    "Reconnect the daemon to the X server",
	split.CommandQuit:       "Stop the daemon",
}

func init() {
	for _, cmd := range split.Commands() {
		rootCmd.AddCommand(newVerbCmd(cmd))
	}
}

func newVerbCmd(command split.Command) *cobra.Command {
	return &cobra.Command{
		Use:   command.String(),
		Short: verbShort[command],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendCommand(cmd, command)
		},
	}
}

// sendCommand delivers one datagram. Success means the daemon's socket
// accepted it, not that the command took effect.
func sendCommand(cmd *cobra.Command, command split.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := resolveSocket(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ipc.ErrEndpointNotFound, err)
	}
	return ipc.NewClient(path).Send(command)
}
