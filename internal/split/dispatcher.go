package split

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/splitd/internal/platform"
)

// Outcome describes a dispatched command.
type Outcome struct {
	Window  platform.WindowID
	Current Dimensions
	Next    Properties
	Action  Action
}

// Dispatcher runs commands against the active window.
type Dispatcher struct {
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil logger discards debug output.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{logger: logger}
}

// Process queries the active window, its geometry and the work area, computes
// the transition for cmd, performs the geometry action and then records the
// new entry in store. Nothing is recorded if any step fails.
func (d *Dispatcher) Process(geom platform.Backend, store *Store, cmd Command) (Outcome, error) {
	switch cmd {
	case CommandRestart, CommandQuit:
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnsupportedCommand, cmd)
	}

	window, err := geom.ActiveWindow()
	if err != nil {
		return Outcome{}, fmt.Errorf("get active window: %w", err)
	}
	if window == 0 {
		return Outcome{}, fmt.Errorf("get active window: no window has focus")
	}

	rect, err := geom.WindowGeometry(window)
	if err != nil {
		return Outcome{}, fmt.Errorf("get geometry of window %d: %w", window, err)
	}
	current := DimensionsFromRect(rect)

	workRect, err := geom.WorkArea()
	if err != nil {
		return Outcome{}, fmt.Errorf("get work area: %w", err)
	}
	work := DimensionsFromRect(workRect)

	var prior *Properties
	if p, ok := store.Lookup(window); ok {
		prior = &p
	}

	d.logger.Debug("dispatching command",
		"command", cmd.String(),
		"window_id", uint32(window),
		"current", current.String(),
		"work_area", work.String())

	next, action, err := Transition(prior, current, work, cmd)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s window %d: %w", cmd, window, err)
	}

	if err := apply(geom, window, action); err != nil {
		return Outcome{}, fmt.Errorf("%s window %d: %w", cmd, window, err)
	}

	store.Upsert(window, next)
	return Outcome{Window: window, Current: current, Next: next, Action: action}, nil
}

func apply(geom platform.Backend, window platform.WindowID, action Action) error {
	if action.Unmaximize {
		if err := geom.SetMaximized(window, false); err != nil {
			return fmt.Errorf("clear maximize hint: %w", err)
		}
	}
	if action.Resize != nil {
		if err := geom.MoveResize(window, action.Resize.Rect()); err != nil {
			return fmt.Errorf("move/resize to %s: %w", action.Resize, err)
		}
	}
	if action.Maximize {
		if err := geom.SetMaximized(window, true); err != nil {
			return fmt.Errorf("set maximize hint: %w", err)
		}
	}
	return nil
}
