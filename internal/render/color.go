package render

// Color is the role a cell plays on screen. The terminal layer decides the
// actual ANSI color for each role.
type Color uint8

const (
	ColorDefault Color = iota
	ColorStatic
	ColorPlayer
	ColorWalker
	ColorCrate
	ColorCrateFalling
	ColorMover
	ColorProjectile
	ColorUnknown
)
