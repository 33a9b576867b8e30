package core

// Direction names the side a rectangle was pushed toward by Pushout.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Vertical reports whether the direction resolves along the Y axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Horizontal reports whether the direction resolves along the X axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Vec returns the unit vector pointing in this direction.
func (d Direction) Vec() Vec2 {
	switch d {
	case DirUp:
		return Up
	case DirDown:
		return Down
	case DirLeft:
		return Left
	case DirRight:
		return Right
	default:
		return Vec2{}
	}
}
