package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"
)

// Geometry is a rectangle in root window coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// GetCurrentDesktop returns the current virtual desktop number (0-indexed).
// Uses _NET_CURRENT_DESKTOP atom.
func (c *Connection) GetCurrentDesktop() (int, error) {
	desktop, err := ewmh.CurrentDesktopGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get current desktop: %w", err)
	}
	return int(desktop), nil
}

// GetWorkArea returns the _NET_WORKAREA entry of the current desktop. The
// work area spans every monitor, so on multi-head setups it is the bounding
// box of all of them.
func (c *Connection) GetWorkArea() (Geometry, error) {
	areas, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to get work area: %w", err)
	}

	desktop, err := c.GetCurrentDesktop()
	if err != nil {
		return Geometry{}, err
	}
	if desktop < 0 || desktop >= len(areas) {
		return Geometry{}, fmt.Errorf("no work area for desktop %d (%d reported)", desktop, len(areas))
	}

	wa := areas[desktop]
	return Geometry{
		X:      wa.X,
		Y:      wa.Y,
		Width:  int(wa.Width),
		Height: int(wa.Height),
	}, nil
}
