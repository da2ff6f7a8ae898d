package hud

import "time"

const historyLen = 60

// frameStats keeps the last update/render durations and a rolling render history.
type frameStats struct {
	update, render time.Duration

	history       []time.Duration
	avg, min, max time.Duration
}

// ProfilingSetUpdateDuration stores the update phase duration for this frame.
func (h *HUD) ProfilingSetUpdateDuration(d time.Duration) {
	h.stats.update = d
}

// ProfilingSetRenderDuration stores the render() call duration for this frame
func (h *HUD) ProfilingSetRenderDuration(d time.Duration) {
	s := &h.stats
	s.render = d
	if len(s.history) >= historyLen {
		s.history = s.history[1:]
	}
	s.history = append(s.history, d)

	var total time.Duration
	s.min, s.max = d, d
	for _, v := range s.history {
		total += v
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	s.avg = total / time.Duration(len(s.history))
}

// fpsCounter counts rendered frames per wall-clock second.
type fpsCounter struct {
	now     func() time.Time
	frames  int
	last    time.Time
	current int
}

func (c *fpsCounter) tick() {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
	}
	c.frames++
	if t.Sub(c.last) >= time.Second {
		c.current = c.frames
		c.frames = 0
		c.last = t
	}
}
