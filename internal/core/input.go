package core

// Direction is the horizontal intent derived from an input snapshot.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Input is the directional state read once per simulation tick.
// Left and Right may both be set; Left wins.
type Input struct {
	Left  bool
	Right bool
}

// Direction resolves the flags to a single direction.
func (in Input) Direction() Direction {
	switch {
	case in.Left:
		return DirLeft
	case in.Right:
		return DirRight
	default:
		return DirNone
	}
}

// InputFor returns the Input that produces d.
func InputFor(d Direction) Input {
	return Input{Left: d == DirLeft, Right: d == DirRight}
}

// InputSource supplies the input snapshot for the next tick.
// Hosts poll it exactly once per simulated frame.
type InputSource interface {
	Input() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

// Input calls f.
func (f InputFunc) Input() Input {
	return f()
}
