package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a stderr-style logger for diagnostics. Console status lines go
// through internal/ui; this logger only carries debug detail.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "rskeys",
	})
}

