package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

const (
	stateMaxHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaxVert = "_NET_WM_STATE_MAXIMIZED_VERT"
)

// GetActiveWindow returns the window referenced by _NET_ACTIVE_WINDOW.
func (c *Connection) GetActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	return win, nil
}

// GetFrameExtents returns the window decoration sizes (if available)
func (c *Connection) GetFrameExtents(windowID uint32) (left, right, top, bottom int) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, xproto.Window(windowID))
	if err != nil {
		// No frame extents available, return zeros
		return 0, 0, 0, 0
	}
	return extents.Left, extents.Right, extents.Top, extents.Bottom
}

// GetFrameGeometry returns the outer geometry of a client window: its content
// area translated to root coordinates, grown by the frame extents.
func (c *Connection) GetFrameGeometry(windowID uint32) (Geometry, error) {
	win := xproto.Window(windowID)

	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to get window geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to translate window coordinates: %w", err)
	}

	left, right, top, bottom := c.GetFrameExtents(windowID)
	return Geometry{
		X:      int(translate.DstX) - left,
		Y:      int(translate.DstY) - top,
		Width:  int(geom.Width) + left + right,
		Height: int(geom.Height) + top + bottom,
	}, nil
}

// MoveResizeFrame places a window so its outer frame covers g. The client
// size sent to the window manager excludes the frame extents.
func (c *Connection) MoveResizeFrame(windowID uint32, g Geometry) error {
	win := xproto.Window(windowID)
	left, right, top, bottom := c.GetFrameExtents(windowID)

	width := max(g.Width-left-right, 1)
	height := max(g.Height-top-bottom, 1)

	// NorthWest gravity: x/y is the top-left corner of the frame.
	err := ewmh.MoveresizeWindowExtra(c.XUtil, win, g.X, g.Y, width, height,
		xproto.GravityNorthWest, 2, true, true)
	if err != nil {
		// Fallback to a direct ConfigureWindow request.
		mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
		values := []uint32{uint32(int32(g.X)), uint32(int32(g.Y)), uint32(width), uint32(height)}
		if err := xproto.ConfigureWindowChecked(c.XUtil.Conn(), win, mask, values).Check(); err != nil {
			return fmt.Errorf("failed to move/resize window: %w", err)
		}
	}
	return nil
}

// MaximizeWindow asks the window manager to maximize a window in both directions.
func (c *Connection) MaximizeWindow(windowID uint32) error {
	err := ewmh.WmStateReqExtra(c.XUtil, xproto.Window(windowID), ewmh.StateAdd, stateMaxVert, stateMaxHorz, 2)
	if err != nil {
		return fmt.Errorf("failed to maximize window: %w", err)
	}
	return nil
}

// UnmaximizeWindow removes the maximized states from a window if present.
func (c *Connection) UnmaximizeWindow(windowID uint32) error {
	win := xproto.Window(windowID)

	states, err := ewmh.WmStateGet(c.XUtil, win)
	if err != nil {
		// No _NET_WM_STATE property means nothing to remove.
		return nil
	}

	hasMaxH := false
	hasMaxV := false
	for _, state := range states {
		switch state {
		case stateMaxHorz:
			hasMaxH = true
		case stateMaxVert:
			hasMaxV = true
		}
	}
	if !hasMaxH && !hasMaxV {
		return nil
	}

	if err := ewmh.WmStateReqExtra(c.XUtil, win, ewmh.StateRemove, stateMaxVert, stateMaxHorz, 2); err != nil {
		return fmt.Errorf("failed to unmaximize window: %w", err)
	}
	return nil
}
