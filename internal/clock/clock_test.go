// internal/clock/clock_test.go
package clock

import "testing"

func TestTickAdvancesBothTimelines(t *testing.T) {
	c := New()
	if dt := c.Tick(0.5); dt != 0.5 {
		t.Fatalf("dt: got %v want 0.5", dt)
	}
	c.SetScale(2)
	if dt := c.Tick(0.25); dt != 0.5 {
		t.Fatalf("scaled dt: got %v want 0.5", dt)
	}
	if c.Now() != 1 || c.Unscaled() != 0.75 {
		t.Fatalf("now/unscaled: got %v/%v want 1/0.75", c.Now(), c.Unscaled())
	}
}

func TestPauseReasonsAreIndependent(t *testing.T) {
	c := New()
	c.Pause(ReasonUser)
	c.Pause(ReasonUpgrade)
	c.Resume(ReasonUser)
	if !c.Paused() {
		t.Fatal("upgrade pause released by user resume")
	}
	if dt := c.Tick(1); dt != 0 {
		t.Fatalf("paused dt: got %v want 0", dt)
	}
	if c.Unscaled() != 1 || c.PausedTotal() != 1 {
		t.Fatalf("unscaled/paused: got %v/%v want 1/1", c.Unscaled(), c.PausedTotal())
	}
	c.Resume(ReasonUpgrade)
	if c.Paused() {
		t.Fatal("clock still paused after all reasons resumed")
	}
}

func TestZeroScaleStopsSimulation(t *testing.T) {
	c := New()
	c.SetScale(0)
	c.Tick(1)
	if c.Now() != 0 {
		t.Fatalf("now: got %v want 0", c.Now())
	}
	c.Reset()
	if c.Paused() || c.Unscaled() != 0 {
		t.Fatal("Reset did not restore defaults")
	}
}
