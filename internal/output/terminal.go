package output

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ANSI control sequences used by watch mode.
const (
	ansiClearScreen = "\x1b[2J\x1b[H"
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
)

// ClearScreen wipes the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	_, _ = fmt.Fprint(w, ansiClearScreen)
}

// HideCursor hides the terminal cursor for the duration of a watch loop.
func HideCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, ansiHideCursor)
}

// ShowCursor restores the terminal cursor.
func ShowCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, ansiShowCursor)
}

// SetupSignalHandler returns a channel that receives SIGINT and SIGTERM,
// so watch mode can restore the terminal before exiting.
func SetupSignalHandler() chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return sigChan
}
