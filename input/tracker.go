package input

import "math"

// Deltas feed camera.Orbit.Update.
type Deltas struct {
	Phi, Theta, Radius float32
}

func (d Deltas) IsZero() bool {
	return d.Phi == 0 && d.Theta == 0 && d.Radius == 0
}

// Frame is what the render loop needs from one input snapshot.
type Frame struct {
	Camera  Deltas
	Light   Deltas
	Pressed map[Key]bool
	Quit    bool
}

// Tracker turns consecutive snapshots into per-frame deltas. A full drag
// across the window width is one full turn in azimuth; a full drag across
// the height is half a turn in elevation.
type Tracker struct {
	ZoomScale  float32
	ScrollStep float32

	started bool
	last    State
}

func NewTracker(zoomScale, scrollStep float32) *Tracker {
	return &Tracker{ZoomScale: zoomScale, ScrollStep: scrollStep}
}

func (t *Tracker) Next(s State) Frame {
	f := Frame{Pressed: map[Key]bool{}}
	for k, down := range s.Keys {
		if down && !t.last.Keys[k] {
			f.Pressed[k] = true
		}
	}
	f.Quit = f.Pressed[KeyEscape]

	if !t.started {
		t.started = true
		t.last = s
		return f
	}

	var dx, dy float64
	if s.Width > 0 {
		dx = (s.CursorX - t.last.CursorX) / float64(s.Width)
	}
	if s.Height > 0 {
		dy = (s.CursorY - t.last.CursorY) / float64(s.Height)
	}
	t.last = s

	var d Deltas
	if s.Left {
		d.Phi = float32(-dx * 2 * math.Pi)
		d.Theta = float32(-dy * math.Pi)
	}
	if s.Right {
		d.Radius += float32(dy) * t.ZoomScale
	}
	d.Radius -= float32(s.ScrollY) * t.ScrollStep

	if s.Ctrl {
		f.Light = d
	} else {
		f.Camera = d
	}
	return f
}
