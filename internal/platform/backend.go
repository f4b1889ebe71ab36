package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Backend abstracts the window-system queries and requests the daemon needs.
// Implementations are not required to be safe for concurrent use.
type Backend interface {
	// ActiveWindow returns the window holding input focus.
	ActiveWindow() (WindowID, error)
	// WindowGeometry returns the outer frame rectangle of a window,
	// decorations included.
	WindowGeometry(windowID WindowID) (Rect, error)
	// WorkArea returns the usable desktop region of the current desktop.
	WorkArea() (Rect, error)
	// MoveResize places a window so that its outer frame covers bounds.
	MoveResize(windowID WindowID, bounds Rect) error
	// SetMaximized adds or removes the window manager's maximize hint.
	SetMaximized(windowID WindowID, maximized bool) error
	// Disconnect releases the window-system connection.
	Disconnect()
}
