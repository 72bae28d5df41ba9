package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// WebLogger implements core.Logger by writing tagged lines to the server log
type WebLogger struct {
	renderID string
	out      *log.Logger
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, out *log.Logger) core.Logger {
	return &WebLogger{
		renderID: renderID,
		out:      out,
	}
}

// Printf implements core.Logger interface. Carriage returns used for terminal
// progress are stripped and blank messages are dropped.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimSpace(strings.ReplaceAll(fmt.Sprintf(format, args...), "\r", ""))
	if message == "" {
		return
	}
	wl.out.Printf("[%s] %s", wl.renderID, message)
}
