package mcp

// WindowCommandInput is the input for the window_command tool.
type WindowCommandInput struct {
	Command string `json:"command" jsonschema:"One of restore, splitleft, splitright, maximize, save, restart, quit. Applies to the window that currently has focus."`
}

// WindowCommandOutput is the output for the window_command tool.
type WindowCommandOutput struct {
	Command string `json:"command"`
	Sent    bool   `json:"sent"`
	Socket  string `json:"socket"`
}

// ListCommandsInput is the input for the list_commands tool.
type ListCommandsInput struct{}

// CommandInfo describes one command the daemon accepts.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListCommandsOutput is the output for the list_commands tool.
type ListCommandsOutput struct {
	Commands []CommandInfo `json:"commands"`
}
