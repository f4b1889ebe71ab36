// Package platformtest provides an in-memory platform.Backend for tests.
package platformtest

import (
	"fmt"

	"github.com/1broseidon/splitd/internal/platform"
)

// Call records one mutating request made against the fake.
type Call struct {
	Op        string // "moveresize" or "maximize"
	Window    platform.WindowID
	Bounds    platform.Rect
	Maximized bool
}

// Backend is a scriptable window system. Move/resize requests update the
// stored geometry so consecutive commands observe their own effects.
type Backend struct {
	Active   platform.WindowID
	Geometry map[platform.WindowID]platform.Rect
	Work     platform.Rect
	Max      map[platform.WindowID]bool

	// Errors injected per operation name: "active", "geometry", "workarea",
	// "moveresize", "maximize".
	Errors map[string]error

	Calls        []Call
	Disconnected bool
}

var _ platform.Backend = (*Backend)(nil)

// New returns a fake with the given work area and no windows.
func New(work platform.Rect) *Backend {
	return &Backend{
		Geometry: make(map[platform.WindowID]platform.Rect),
		Work:     work,
		Max:      make(map[platform.WindowID]bool),
		Errors:   make(map[string]error),
	}
}

// Focus adds a window at bounds (if new) and makes it active.
func (b *Backend) Focus(id platform.WindowID, bounds platform.Rect) {
	b.Geometry[id] = bounds
	b.Active = id
}

func (b *Backend) ActiveWindow() (platform.WindowID, error) {
	if err := b.Errors["active"]; err != nil {
		return 0, err
	}
	return b.Active, nil
}

func (b *Backend) WindowGeometry(id platform.WindowID) (platform.Rect, error) {
	if err := b.Errors["geometry"]; err != nil {
		return platform.Rect{}, err
	}
	r, ok := b.Geometry[id]
	if !ok {
		return platform.Rect{}, fmt.Errorf("no such window %d", id)
	}
	return r, nil
}

func (b *Backend) WorkArea() (platform.Rect, error) {
	if err := b.Errors["workarea"]; err != nil {
		return platform.Rect{}, err
	}
	return b.Work, nil
}

func (b *Backend) MoveResize(id platform.WindowID, bounds platform.Rect) error {
	if err := b.Errors["moveresize"]; err != nil {
		return err
	}
	b.Calls = append(b.Calls, Call{Op: "moveresize", Window: id, Bounds: bounds})
	b.Geometry[id] = bounds
	return nil
}

func (b *Backend) SetMaximized(id platform.WindowID, maximized bool) error {
	if err := b.Errors["maximize"]; err != nil {
		return err
	}
	b.Calls = append(b.Calls, Call{Op: "maximize", Window: id, Maximized: maximized})
	b.Max[id] = maximized
	if maximized {
		b.Geometry[id] = b.Work
	}
	return nil
}

func (b *Backend) Disconnect() {
	b.Disconnected = true
}

// MoveResizes returns the bounds of every move/resize request, in order.
func (b *Backend) MoveResizes() []platform.Rect {
	var out []platform.Rect
	for _, c := range b.Calls {
		if c.Op == "moveresize" {
			out = append(out, c.Bounds)
		}
	}
	return out
}

// Reset clears recorded calls.
func (b *Backend) Reset() {
	b.Calls = nil
}
