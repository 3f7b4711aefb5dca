package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionCharge)
	if !f.Has(ActionUp) || !f.Has(ActionCharge) {
		t.Error("Set actions not reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear left actions behind")
	}
	if !clone.Has(ActionCharge) {
		t.Error("Clone shares state with the original")
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionCharge)

	for i := 0; i <= 3; i++ {
		if !h.Held(ActionCharge) {
			t.Fatalf("tick %d: charge released inside the window", i)
		}
		h.Advance()
	}
	if h.Held(ActionCharge) {
		t.Error("charge still held after the window expired")
	}
}

func TestHoldTrackerRepeatsExtend(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(ActionRight)
	for i := 0; i < 10; i++ {
		h.Advance()
		if i%2 == 0 {
			h.Press(ActionRight) // key auto-repeat
		}
		if !h.Held(ActionRight) {
			t.Fatalf("tick %d: repeated key dropped", i)
		}
	}
}

func TestHoldTrackerOppositeCancels(t *testing.T) {
	h := NewHoldTracker(30)
	h.Press(ActionLeft)
	h.Press(ActionUp)
	h.Press(ActionRight)

	if h.Held(ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !h.Held(ActionRight) || !h.Held(ActionUp) {
		t.Error("right and up should both be held")
	}

	frame := NewInputFrame()
	h.Apply(&frame)
	if !frame.Has(ActionRight) || !frame.Has(ActionUp) || frame.Has(ActionLeft) {
		t.Errorf("Apply produced %v", frame.Actions)
	}
}

func TestHoldTrackerIgnoresOneShots(t *testing.T) {
	h := NewHoldTracker(30)
	h.Press(ActionPause)
	if h.Held(ActionPause) {
		t.Error("pause is a one-shot action and must not latch")
	}

	h.Press(ActionDown)
	h.Reset()
	if h.Held(ActionDown) {
		t.Error("Reset should release everything")
	}
}

func TestEffectiveHoldTicks(t *testing.T) {
	tests := []struct {
		cfg  RuntimeConfig
		want int
	}{
		{RuntimeConfig{TickRate: 60}, 33},
		{RuntimeConfig{TickRate: 30}, 16},
		{RuntimeConfig{TickRate: 0}, 33},
		{RuntimeConfig{TickRate: 60, HoldTicks: 5}, 5},
	}
	for _, tt := range tests {
		if got := tt.cfg.EffectiveHoldTicks(); got != tt.want {
			t.Errorf("EffectiveHoldTicks(%+v) = %d, want %d", tt.cfg, got, tt.want)
		}
	}
}
