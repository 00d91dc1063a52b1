// Package ansi holds the terminal escape codes used by the console printer.
package ansi

// SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)

// ClearScreen moves the cursor home and erases the display.
const ClearScreen = "\033[H\033[2J"
