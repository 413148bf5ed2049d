package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintError writes a red "Error:" line for err
func PrintError(w io.Writer, err error, noColor bool) {
	red := color.New(color.FgRed, color.Bold)
	if noColor {
		red.DisableColor()
	}
	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
}

// PrintSuccess writes a green check line
func PrintSuccess(w io.Writer, msg string, noColor bool) {
	green := color.New(color.FgGreen)
	if noColor {
		green.DisableColor()
	}
	green.Fprintf(w, "✓ %s\n", msg)
}
