package core

import "testing"

func TestActionSet(t *testing.T) {
	s := NewActionSet(ActionLeft, ActionHold)

	if !s.Has(ActionLeft) || !s.Has(ActionHold) {
		t.Errorf("set %b should contain Left and Hold", s)
	}
	if s.Has(ActionRight) {
		t.Error("set should not contain Right")
	}
	if s.Has(ActionNone) {
		t.Error("ActionNone is never a member")
	}

	s = s.Without(ActionLeft)
	if s.Has(ActionLeft) {
		t.Error("Without(Left) should remove it")
	}
	if NewActionSet().Empty() != true {
		t.Error("empty set should report Empty")
	}
}

func TestInputFramePressRelease(t *testing.T) {
	var f InputFrame
	f.Press(ActionHardDrop)

	if !f.IsPressed(ActionHardDrop) || !f.IsDown(ActionHardDrop) {
		t.Error("Press should set both pressed and down")
	}

	f.Release(ActionHardDrop)
	if f.IsDown(ActionHardDrop) || !f.IsReleased(ActionHardDrop) {
		t.Error("Release should clear down and set released")
	}
}

func TestKeyTrackerSampleEdges(t *testing.T) {
	kt := NewKeyTracker(1)

	f := kt.Sample(NewActionSet(ActionLeft))
	if !f.IsPressed(ActionLeft) || !f.IsDown(ActionLeft) {
		t.Fatalf("first sample should press Left, got %+v", f)
	}

	f = kt.Sample(NewActionSet(ActionLeft))
	if f.IsPressed(ActionLeft) || !f.IsDown(ActionLeft) {
		t.Fatalf("held key should be down without a new press, got %+v", f)
	}

	f = kt.Sample(NewActionSet())
	if !f.IsReleased(ActionLeft) || f.IsDown(ActionLeft) {
		t.Fatalf("released key should report a release edge, got %+v", f)
	}
}

func TestKeyTrackerTouchHoldWindow(t *testing.T) {
	kt := NewKeyTracker(3)

	kt.Touch(ActionSoftDrop)
	f := kt.Frame()
	if !f.IsPressed(ActionSoftDrop) {
		t.Fatal("touch should produce a press on the next frame")
	}

	// Still within the hold window
	for i := 0; i < 2; i++ {
		f = kt.Frame()
		if !f.IsDown(ActionSoftDrop) || f.IsPressed(ActionSoftDrop) {
			t.Fatalf("frame %d: key should stay held, got %+v", i, f)
		}
	}

	// Window expired without a repeat
	f = kt.Frame()
	if f.IsDown(ActionSoftDrop) || !f.IsReleased(ActionSoftDrop) {
		t.Fatalf("key should be released after the hold window, got %+v", f)
	}
}

func TestKeyTrackerRepeatKeepsKeyHeld(t *testing.T) {
	kt := NewKeyTracker(2)

	kt.Touch(ActionRight)
	kt.Frame()
	for i := 0; i < 10; i++ {
		kt.Touch(ActionRight) // auto-repeat
		f := kt.Frame()
		if !f.IsDown(ActionRight) || f.IsPressed(ActionRight) {
			t.Fatalf("repeat %d should keep the key held without a new press, got %+v", i, f)
		}
	}
}

func TestKeyTrackerRetapIsNewPress(t *testing.T) {
	kt := NewKeyTracker(10).WithTapGap(3)

	kt.Touch(ActionRotate)
	if f := kt.Frame(); !f.IsPressed(ActionRotate) {
		t.Fatal("first tap should press")
	}
	kt.Frame()
	kt.Frame()

	kt.Touch(ActionRotate)
	f := kt.Frame()
	if !f.IsPressed(ActionRotate) || !f.IsDown(ActionRotate) {
		t.Fatalf("second tap inside the hold window should press again, got %+v", f)
	}
	if f := kt.Frame(); f.IsPressed(ActionRotate) {
		t.Fatalf("re-tap should press only once, got %+v", f)
	}
}

func TestKeyTrackerFastRepeatIsNotRetap(t *testing.T) {
	kt := NewKeyTracker(10).WithTapGap(3)

	kt.Touch(ActionLeft)
	kt.Frame()
	for i := 0; i < 12; i++ {
		kt.Touch(ActionLeft)
		if f := kt.Frame(); f.IsPressed(ActionLeft) {
			t.Fatalf("repeat %d one tick apart should not press, got %+v", i, f)
		}
	}
}
