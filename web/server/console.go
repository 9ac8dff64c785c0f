package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-raycast/pkg/core"
)

// consoleBuffer is the number of messages kept per cast request
const consoleBuffer = 32

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RequestID string    `json:"requestId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	requestID   string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific cast request
func NewWebLogger(requestID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		requestID:   requestID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Printf("[%s] %s", wl.requestID, message)

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RequestID: wl.requestID,
		Message:   strings.TrimRight(message, "\n"),
		Timestamp: time.Now(),
		Level:     "info",
	}:
	default:
		// Channel full, skip (don't block)
	}
}
