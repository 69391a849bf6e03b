package core

// Color is a foreground color for a screen cell, written as a hex RGB
// string ("#FF0000"). The empty string means the terminal default.
type Color string

// Colors used for non-brick game elements.
const (
	ColorDefault   Color = ""
	ColorBall      Color = "#FF0000"
	ColorPaddle    Color = "#808080"
	ColorPaddleCap Color = "#FF0000"
	ColorHUD       Color = "#5F87FF"
	ColorBorder    Color = "#AFAFAF"
)
