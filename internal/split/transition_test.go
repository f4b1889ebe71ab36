package split

import (
	"errors"
	"testing"
)

var fullHD = Dimensions{X: 0, Y: 0, Width: 1920, Height: 1080}

func props(state State, d Dimensions) *Properties {
	return &Properties{State: state, Dimensions: d}
}

func TestHalves(t *testing.T) {
	if got, want := LeftHalf(fullHD), (Dimensions{0, 0, 960, 1080}); got != want {
		t.Errorf("LeftHalf = %v, want %v", got, want)
	}
	if got, want := RightHalf(fullHD), (Dimensions{960, 0, 960, 1080}); got != want {
		t.Errorf("RightHalf = %v, want %v", got, want)
	}

	// Odd widths truncate.
	odd := Dimensions{X: 0, Y: 30, Width: 1921, Height: 1050}
	if got, want := LeftHalf(odd), (Dimensions{0, 30, 960, 1050}); got != want {
		t.Errorf("LeftHalf(odd) = %v, want %v", got, want)
	}
}

func TestRightHalf_IgnoresWorkAreaXOrigin(t *testing.T) {
	// Work area on a second head starting at x=1920. The right half lands at
	// x=half width, not 1920+half width.
	work := Dimensions{X: 1920, Y: 0, Width: 1280, Height: 1024}
	want := Dimensions{X: 640, Y: 0, Width: 640, Height: 1024}
	if got := RightHalf(work); got != want {
		t.Fatalf("RightHalf = %v, want %v", got, want)
	}
	if got := LeftHalf(work); got.X != 1920 {
		t.Fatalf("LeftHalf.X = %d, want work area origin 1920", got.X)
	}
}

func TestTransition_Scenario1_SplitLeftUntracked(t *testing.T) {
	current := Dimensions{X: 100, Y: 100, Width: 800, Height: 600}

	next, action, err := Transition(nil, current, fullHD, CommandSplitLeft)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if want := (Properties{State: SplitLeft, Dimensions: current}); next != want {
		t.Fatalf("next = %+v, want %+v", next, want)
	}
	if !action.Unmaximize || action.Maximize {
		t.Fatalf("unexpected hint flags: %+v", action)
	}
	if action.Resize == nil || *action.Resize != (Dimensions{0, 0, 960, 1080}) {
		t.Fatalf("resize = %v, want 960x1080+0+0", action.Resize)
	}
}

func TestTransition_Scenario2_RestoreAfterDrift(t *testing.T) {
	prior := props(SplitLeft, Dimensions{X: 100, Y: 100, Width: 800, Height: 600})
	drifted := Dimensions{X: 0, Y: 0, Width: 500, Height: 1080}

	next, action, err := Transition(prior, drifted, fullHD, CommandRestore)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	// The drifted geometry becomes the new Windowed baseline; restoring to it
	// needs no resize.
	if want := (Properties{State: Windowed, Dimensions: drifted}); next != want {
		t.Fatalf("next = %+v, want %+v", next, want)
	}
	if action.Resize != nil {
		t.Fatalf("expected no resize, got %v", *action.Resize)
	}
	if !action.Unmaximize {
		t.Fatal("expected maximize hint to be cleared")
	}
}

func TestTransition_Scenario3_MaximizeUntracked(t *testing.T) {
	current := Dimensions{X: 10, Y: 10, Width: 300, Height: 200}
	_, _, err := Transition(nil, current, fullHD, CommandMaximize)
	if !errors.Is(err, ErrWindowNotTracked) {
		t.Fatalf("err = %v, want ErrWindowNotTracked", err)
	}
}

func TestTransition_RestoreUntracked(t *testing.T) {
	_, _, err := Transition(nil, fullHD, fullHD, CommandRestore)
	if !errors.Is(err, ErrWindowNotTracked) {
		t.Fatalf("err = %v, want ErrWindowNotTracked", err)
	}
}

func TestTransition_RestoreFromSplitUsesPreSplitGeometry(t *testing.T) {
	original := Dimensions{X: 100, Y: 100, Width: 800, Height: 600}
	for _, tc := range []struct {
		state   State
		current Dimensions
	}{
		{SplitLeft, LeftHalf(fullHD)},
		{SplitRight, RightHalf(fullHD)},
		{Maximized, fullHD},
	} {
		t.Run(tc.state.String(), func(t *testing.T) {
			next, action, err := Transition(props(tc.state, original), tc.current, fullHD, CommandRestore)
			if err != nil {
				t.Fatalf("Transition: %v", err)
			}
			if want := (Properties{State: Windowed, Dimensions: original}); next != want {
				t.Fatalf("next = %+v, want %+v", next, want)
			}
			if action.Resize == nil || *action.Resize != original {
				t.Fatalf("resize = %v, want %v", action.Resize, original)
			}
		})
	}
}

func TestTransition_SplitToSplitKeepsRestoreTarget(t *testing.T) {
	original := Dimensions{X: 100, Y: 100, Width: 800, Height: 600}

	next, action, err := Transition(props(SplitLeft, original), LeftHalf(fullHD), fullHD, CommandSplitRight)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if want := (Properties{State: SplitRight, Dimensions: original}); next != want {
		t.Fatalf("next = %+v, want %+v", next, want)
	}
	if action.Resize == nil || *action.Resize != RightHalf(fullHD) {
		t.Fatalf("resize = %v, want right half", action.Resize)
	}
}

func TestTransition_DriftDemotesSplitRight(t *testing.T) {
	original := Dimensions{X: 100, Y: 100, Width: 800, Height: 600}
	drifted := Dimensions{X: 960, Y: 0, Width: 700, Height: 1080}

	next, _, err := Transition(props(SplitRight, original), drifted, fullHD, CommandSplitLeft)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	// Demoted to Windowed at the drifted geometry, then split again.
	if want := (Properties{State: SplitLeft, Dimensions: drifted}); next != want {
		t.Fatalf("next = %+v, want %+v", next, want)
	}
}

func TestTransition_MaximizedIsNotDriftChecked(t *testing.T) {
	original := Dimensions{X: 100, Y: 100, Width: 800, Height: 600}
	odd := Dimensions{X: 5, Y: 5, Width: 1000, Height: 900}

	next, _, err := Transition(props(Maximized, original), odd, fullHD, CommandSplitLeft)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if want := (Properties{State: SplitLeft, Dimensions: original}); next != want {
		t.Fatalf("next = %+v, want %+v", next, want)
	}
}

func TestTransition_RestoreAlwaysResizesWithoutDrift(t *testing.T) {
	at := Dimensions{X: 300, Y: 200, Width: 640, Height: 480}

	tests := []struct {
		name    string
		prior   *Properties
		current Dimensions
	}{
		{"windowed at stored geometry", props(Windowed, at), at},
		{"maximized at stored geometry", props(Maximized, at), at},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, action, err := Transition(tc.prior, tc.current, fullHD, CommandRestore)
			if err != nil {
				t.Fatalf("Transition: %v", err)
			}
			if action.Resize == nil || *action.Resize != at {
				t.Fatalf("resize = %v, want %v", action.Resize, at)
			}
		})
	}
}

func TestTransition_WindowedRefreshesBaseline(t *testing.T) {
	old := Dimensions{X: 1, Y: 2, Width: 3, Height: 4}
	current := Dimensions{X: 50, Y: 60, Width: 700, Height: 500}

	next, action, err := Transition(props(Windowed, old), current, fullHD, CommandMaximize)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if want := (Properties{State: Maximized, Dimensions: current}); next != want {
		t.Fatalf("next = %+v, want %+v", next, want)
	}
	if !action.Maximize || action.Unmaximize || action.Resize != nil {
		t.Fatalf("maximize should only set the hint, got %+v", action)
	}
}

func TestTransition_SaveOverwritesUnconditionally(t *testing.T) {
	original := Dimensions{X: 100, Y: 100, Width: 800, Height: 600}
	current := LeftHalf(fullHD)

	for _, prior := range []*Properties{nil, props(SplitLeft, original), props(Maximized, original)} {
		next, action, err := Transition(prior, current, fullHD, CommandSave)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if want := (Properties{State: Windowed, Dimensions: current}); next != want {
			t.Fatalf("next = %+v, want %+v", next, want)
		}
		if action != (Action{}) {
			t.Fatalf("save must not touch geometry, got %+v", action)
		}
	}
}

func TestTransition_SaveThenRestoreRoundTrip(t *testing.T) {
	saved := Dimensions{X: 200, Y: 150, Width: 640, Height: 480}

	afterSave, _, err := Transition(nil, saved, fullHD, CommandSave)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	afterSplit, _, err := Transition(&afterSave, saved, fullHD, CommandSplitRight)
	if err != nil {
		t.Fatalf("splitright: %v", err)
	}
	afterRestore, action, err := Transition(&afterSplit, RightHalf(fullHD), fullHD, CommandRestore)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if afterRestore.Dimensions != saved || afterRestore.State != Windowed {
		t.Fatalf("restore = %+v, want windowed at %v", afterRestore, saved)
	}
	if action.Resize == nil || *action.Resize != saved {
		t.Fatalf("resize = %v, want %v", action.Resize, saved)
	}
}

func TestTransition_UnsupportedCommands(t *testing.T) {
	for _, cmd := range []Command{CommandRestart, CommandQuit, Command(0), Command(42)} {
		_, _, err := Transition(props(Windowed, fullHD), fullHD, fullHD, cmd)
		if !errors.Is(err, ErrUnsupportedCommand) {
			t.Errorf("Transition(%s) err = %v, want ErrUnsupportedCommand", cmd, err)
		}
	}
}

func TestTransition_IsPure(t *testing.T) {
	prior := props(SplitLeft, Dimensions{X: 100, Y: 100, Width: 800, Height: 600})
	before := *prior
	current := Dimensions{X: 0, Y: 0, Width: 500, Height: 1080}

	first, firstAction, err1 := Transition(prior, current, fullHD, CommandSplitRight)
	second, secondAction, err2 := Transition(prior, current, fullHD, CommandSplitRight)
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if *prior != before {
		t.Fatalf("prior mutated: %+v", *prior)
	}
	if first != second || *firstAction.Resize != *secondAction.Resize {
		t.Fatalf("results differ: %+v/%+v vs %+v/%+v", first, firstAction, second, secondAction)
	}
}
