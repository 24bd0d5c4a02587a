package input

// Key identifies a key the viewer reacts to, independent of the window
// library.
type Key int

const (
	KeyEscape Key = iota
	KeySpace
	KeyF5
	KeyF6
	KeyF9
	KeyH
)

var keyNames = map[Key]string{
	KeyEscape: "Escape",
	KeySpace:  "Space",
	KeyF5:     "F5",
	KeyF6:     "F6",
	KeyF9:     "F9",
	KeyH:      "H",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "Unknown"
}

// State is one snapshot of the pointer and keyboard, taken once per frame.
type State struct {
	CursorX, CursorY float64
	Left, Right      bool
	Ctrl             bool
	// ScrollY is the wheel movement accumulated since the previous snapshot.
	ScrollY float64
	Keys    map[Key]bool
	// Width and Height of the window, used to normalize cursor movement.
	Width, Height int
}

// Source hides the window library from the camera and render logic.
type Source interface {
	Poll() State
}
