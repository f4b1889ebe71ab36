// Package hotkeys binds global key sequences to daemon commands. Each
// binding sends its command to the control socket like any other client, so
// hotkey presses are ordered with every other sender.
package hotkeys

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/1broseidon/splitd/internal/config"
	"github.com/1broseidon/splitd/internal/split"
	"github.com/1broseidon/splitd/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Sender delivers a command to the daemon. *ipc.Client satisfies it.
type Sender interface {
	Send(cmd split.Command) error
}

// Handler manages global keyboard shortcuts on its own X connection.
type Handler struct {
	conn   *x11.Connection
	sender Sender
	logger *slog.Logger
}

var ignoreModsOnce sync.Once

// NewHandler prepares conn for key grabs. The handler takes ownership of conn.
func NewHandler(conn *x11.Connection, sender Sender, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	conn.EnableKeybindings()
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(conn.XUtil)
	})
	return &Handler{
		conn:   conn,
		sender: sender,
		logger: logger,
	}
}

// Register grabs every binding. The first failure is returned and leaves
// earlier grabs in place; callers treat it as fatal.
func (h *Handler) Register(bindings []config.Binding) error {
	for _, b := range bindings {
		if err := h.RegisterFunc(b.Keys, h.trigger(b.Command)); err != nil {
			return fmt.Errorf("failed to register hotkey %s for %s: %w", b.Keys, b.Command, err)
		}
		h.logger.Info("hotkey registered", "command", b.Command.String(), "keys", b.Keys)
	}
	return nil
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.conn.XUtil, h.conn.Root, keySequence, true)
}

// Start runs the X event loop in a new goroutine.
func (h *Handler) Start() {
	go h.conn.EventLoop()
}

// Stop asks the event loop to return after the next X event. The connection
// is not closed here: xevent treats a closed connection inside a blocking
// read as fatal, so it is released at process exit.
func (h *Handler) Stop() {
	h.conn.QuitEventLoop()
}

func (h *Handler) trigger(cmd split.Command) func() {
	return func() {
		h.logger.Debug("hotkey pressed", "command", cmd.String())
		if err := h.sender.Send(cmd); err != nil {
			h.logger.Error("hotkey send failed", "command", cmd.String(), "error", err)
		}
	}
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")
	xevent.IgnoreMods = ignoreMasks(numLock, scrollLock)
}

// ignoreMasks returns every combination of CapsLock and the given lock
// modifiers, including the empty mask, so grabs fire regardless of lock state.
func ignoreMasks(numLock, scrollLock uint16) []uint16 {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}
	sort.Slice(ignore, func(i, j int) bool { return ignore[i] < ignore[j] })
	return ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
