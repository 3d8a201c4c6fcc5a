package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette for the refinery scene.
const (
	ColorDefault Color = iota
	ColorDrone
	ColorPropeller
	ColorChimney
	ColorChimneyCap
	ColorFlare
	ColorGround
	ColorSkyline
	ColorHUD
	ColorHighlight
	ColorWarning
	ColorDim
)
