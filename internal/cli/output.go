package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	statusColor = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed, color.Bold)
)

// statusf reports progress the way the original tool's status bar did.
func statusf(w io.Writer, format string, args ...any) {
	statusColor.Fprintf(w, format+"\n", args...)
}

func warnf(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "WARNING! "+format+"\n", args...)
}

func errorf(w io.Writer, format string, args ...any) {
	errColor.Fprintf(w, "ERROR! "+format+"\n", args...)
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
