// Package formatter renders reports and trees for the terminal.
package formatter

import "github.com/fatih/color"

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	indexStyle  = color.New(color.FgBlue, color.Bold)
	printStyle  = color.New(color.FgGreen)
	emptyStyle  = color.New(color.FgYellow)
	mixedStyle  = color.New(color.FgMagenta)
)
