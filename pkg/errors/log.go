package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including the error kind and timestamp.
	Verbose bool
}

// HandleError logs an OpError to stderr.
func (h *LogHandler) HandleError(err *OpError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[hooks error] %s [%s] at %s: %v\n",
			err.Op, err.Kind, err.Timestamp.Format("15:04:05.000"), err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[hooks error] %s: %v\n", err.Op, err.Err)
	}
}
