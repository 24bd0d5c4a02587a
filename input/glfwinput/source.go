package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"orbitview/input"
)

var glfwKeys = map[input.Key]glfw.Key{
	input.KeyEscape: glfw.KeyEscape,
	input.KeySpace:  glfw.KeySpace,
	input.KeyF5:     glfw.KeyF5,
	input.KeyF6:     glfw.KeyF6,
	input.KeyF9:     glfw.KeyF9,
	input.KeyH:      glfw.KeyH,
}

// Source polls a glfw window. Must be used from the thread that owns the
// window.
type Source struct {
	window *glfw.Window
	scroll float64
}

func NewSource(window *glfw.Window) *Source {
	s := &Source{window: window}
	// glfw has no polling API for the wheel, so it is accumulated here and
	// handed out by the next Poll.
	window.SetScrollCallback(func(w *glfw.Window, xoff float64, yoff float64) {
		s.scroll += yoff
	})
	return s
}

func (s *Source) Poll() input.State {
	w := s.window
	x, y := w.GetCursorPos()
	width, height := w.GetSize()
	st := input.State{
		CursorX: x,
		CursorY: y,
		Left:    w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		Right:   w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press,
		Ctrl:    w.GetKey(glfw.KeyLeftControl) == glfw.Press || w.GetKey(glfw.KeyRightControl) == glfw.Press,
		ScrollY: s.scroll,
		Keys:    make(map[input.Key]bool, len(glfwKeys)),
		Width:   width,
		Height:  height,
	}
	s.scroll = 0
	for k, gk := range glfwKeys {
		st.Keys[k] = w.GetKey(gk) == glfw.Press
	}
	return st
}

var _ input.Source = (*Source)(nil)
