package main

import (
	"os"

	"github.com/fatih/color"
)

var (
	green     = color.New(color.FgGreen).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	gray      = color.New(color.FgHiBlack).SprintFunc()
	boldCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
	boldGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	boldRed   = color.New(color.FgRed, color.Bold).SprintFunc()
)

// colorMode is the value of the --color flag.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// configureColors applies the flag, then NO_COLOR / FORCE_COLOR. In auto mode
// fatih/color's own terminal detection stands.
func configureColors(mode colorMode) {
	switch {
	case mode == colorNever || os.Getenv("NO_COLOR") != "":
		color.NoColor = true
	case mode == colorAlways || os.Getenv("FORCE_COLOR") != "":
		color.NoColor = false
	}
}
