package dungeon

import (
	"strings"
	"testing"
)

func TestClockAfter(t *testing.T) {
	c := NewClock()
	fired := 0
	timer := c.After(100, func() { fired++ })

	c.Advance(60)
	if fired != 0 {
		t.Fatal("fired early")
	}
	c.Advance(60)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	c.Advance(500)
	if fired != 1 || timer.Active() || c.Len() != 0 {
		t.Errorf("one-shot timer repeated: fired=%d active=%v len=%d", fired, timer.Active(), c.Len())
	}
	if c.Now() != 620 {
		t.Errorf("now = %v, want 620", c.Now())
	}
}

func TestClockEveryAndStop(t *testing.T) {
	c := NewClock()
	fired := 0
	timer := c.Every(50, func() { fired++ })

	c.Advance(175)
	if fired != 3 {
		t.Errorf("fired = %d after 175ms, want 3", fired)
	}

	timer.Stop()
	timer.Stop()
	c.Advance(500)
	if fired != 3 {
		t.Errorf("stopped timer fired: %d", fired)
	}

	var nilTimer *Timer
	nilTimer.Stop()
	if nilTimer.Active() {
		t.Error("nil timer reports active")
	}
}

func TestClockOrderAndNestedTimers(t *testing.T) {
	c := NewClock()
	var order []string
	c.After(10, func() {
		order = append(order, "a")
		c.After(0, func() { order = append(order, "nested") })
	})
	c.After(10, func() { order = append(order, "b") })

	c.Advance(10)
	if strings.Join(order, ",") != "a,b" {
		t.Fatalf("order = %v, want [a b]", order)
	}

	c.Advance(1)
	if strings.Join(order, ",") != "a,b,nested" {
		t.Errorf("order = %v, nested timer should fire on the next advance", order)
	}
}

func TestClockClear(t *testing.T) {
	c := NewClock()
	fired := false
	c.Every(10, func() { fired = true })
	c.Clear()
	c.Advance(100)
	if fired || c.Len() != 0 {
		t.Error("cleared timers still running")
	}
}
