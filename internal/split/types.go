package split

import (
	"errors"
	"fmt"
	"math"

	"github.com/1broseidon/splitd/internal/platform"
)

var (
	// ErrWindowNotTracked is returned when a command needs a stored entry
	// for the active window and none exists.
	ErrWindowNotTracked = errors.New("window not tracked")
	// ErrUnsupportedCommand is returned for commands the dispatcher does not handle.
	ErrUnsupportedCommand = errors.New("unsupported command")
)

// Dimensions is an outer frame rectangle in root window coordinates.
type Dimensions struct {
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", d.Width, d.Height, d.X, d.Y)
}

// Rect converts d to the platform rectangle type.
func (d Dimensions) Rect() platform.Rect {
	return platform.Rect{X: int(d.X), Y: int(d.Y), Width: int(d.Width), Height: int(d.Height)}
}

// DimensionsFromRect narrows a platform rectangle to X11 geometry types.
func DimensionsFromRect(r platform.Rect) Dimensions {
	return Dimensions{
		X:      int16(clampOrigin(r.X)),
		Y:      int16(clampOrigin(r.Y)),
		Width:  uint16(clampSize(r.Width)),
		Height: uint16(clampSize(r.Height)),
	}
}

func clampOrigin(v int) int {
	if v < math.MinInt16 {
		return math.MinInt16
	}
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return v
}

func clampSize(v int) int {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return v
}

// State is the layout state of a tracked window.
type State int

const (
	Windowed State = iota
	SplitLeft
	SplitRight
	Maximized
)

func (s State) String() string {
	switch s {
	case Windowed:
		return "windowed"
	case SplitLeft:
		return "splitleft"
	case SplitRight:
		return "splitright"
	case Maximized:
		return "maximized"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Properties is the tracked entry for one window. Dimensions is always the
// geometry to go back to when the window leaves a non-Windowed state.
type Properties struct {
	State      State
	Dimensions Dimensions
}

// Command is a client request.
type Command int

const (
	CommandRestore Command = iota + 1
	CommandSplitLeft
	CommandSplitRight
	CommandMaximize
	CommandSave
	CommandRestart
	CommandQuit
)

var commandNames = map[Command]string{
	CommandRestore:    "restore",
	CommandSplitLeft:  "splitleft",
	CommandSplitRight: "splitright",
	CommandMaximize:   "maximize",
	CommandSave:       "save",
	CommandRestart:    "restart",
	CommandQuit:       "quit",
}

// Commands lists every command in client vocabulary order.
func Commands() []Command {
	return []Command{
		CommandRestore,
		CommandSplitLeft,
		CommandSplitRight,
		CommandMaximize,
		CommandSave,
		CommandRestart,
		CommandQuit,
	}
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps a wire name to its Command.
func ParseCommand(name string) (Command, error) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCommand, name)
}
