//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/splitd/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11
// connection. An empty display name uses $DISPLAY.
func NewLinuxBackendFromDisplay(display string) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// ActiveWindow returns the currently active/focused window ID.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

// WindowGeometry returns the outer frame rectangle of a window.
func (b *LinuxBackend) WindowGeometry(windowID WindowID) (Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return Rect{}, err
	}

	g, err := conn.GetFrameGeometry(uint32(windowID))
	if err != nil {
		return Rect{}, err
	}
	return rectFromGeometry(g), nil
}

// WorkArea returns the work area of the current desktop.
func (b *LinuxBackend) WorkArea() (Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return Rect{}, err
	}

	g, err := conn.GetWorkArea()
	if err != nil {
		return Rect{}, err
	}
	return rectFromGeometry(g), nil
}

// MoveResize moves and resizes a window's outer frame to the specified bounds.
func (b *LinuxBackend) MoveResize(windowID WindowID, bounds Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveResizeFrame(uint32(windowID), x11.Geometry{
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  bounds.Width,
		Height: bounds.Height,
	})
}

// SetMaximized toggles the horizontal and vertical maximize states.
func (b *LinuxBackend) SetMaximized(windowID WindowID, maximized bool) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	if maximized {
		return conn.MaximizeWindow(uint32(windowID))
	}
	return conn.UnmaximizeWindow(uint32(windowID))
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func rectFromGeometry(g x11.Geometry) Rect {
	return Rect{
		X:      g.X,
		Y:      g.Y,
		Width:  g.Width,
		Height: g.Height,
	}
}
