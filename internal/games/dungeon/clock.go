package dungeon

// Timer is a scheduled callback on a Clock.
type Timer struct {
	delay   float64
	elapsed float64
	loop    bool
	fn      func()
	stopped bool
}

// Stop cancels the timer. Stopping twice is a no-op.
func (t *Timer) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Clock runs delayed and looping callbacks in scene time (milliseconds).
type Clock struct {
	now    float64
	timers []*Timer
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed scene time in milliseconds.
func (c *Clock) Now() float64 {
	return c.now
}

// After runs fn once, delay milliseconds from now.
func (c *Clock) After(delay float64, fn func()) *Timer {
	return c.add(&Timer{delay: delay, fn: fn})
}

// Every runs fn every delay milliseconds until the timer is stopped.
func (c *Clock) Every(delay float64, fn func()) *Timer {
	if delay <= 0 {
		delay = 1
	}
	return c.add(&Timer{delay: delay, fn: fn, loop: true})
}

func (c *Clock) add(t *Timer) *Timer {
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by dt milliseconds and fires due timers in the
// order they were scheduled. Timers created by callbacks start counting on
// the next Advance.
func (c *Clock) Advance(dt float64) {
	c.now += dt

	pending := c.timers
	for _, t := range pending {
		if t.stopped {
			continue
		}
		t.elapsed += dt
		for t.elapsed >= t.delay && !t.stopped {
			t.elapsed -= t.delay
			t.fn()
			if !t.loop {
				t.stopped = true
			}
		}
	}

	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	// Drop references held past the new length
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}

// Len returns the number of live timers.
func (c *Clock) Len() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Clear stops every timer.
func (c *Clock) Clear() {
	for _, t := range c.timers {
		t.stopped = true
	}
	c.timers = nil
}
