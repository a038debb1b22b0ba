package core

// Color is the role a screen cell plays. Games paint roles; the platform
// decides what each role looks like in a terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorHazard
	ColorGoal
	ColorBall
	ColorText    // HUD values
	ColorAccent  // level number
	ColorTilt    // tilt indicator
	ColorWarning // timer about to run out
	ColorTitle   // overlay headings
	ColorBorder  // overlay boxes
	ColorMuted   // hints, field outline, variant tag
)
