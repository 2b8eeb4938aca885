package server

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// RequestLogger implements core.Logger by prefixing every message with the
// ID of the request that produced it
type RequestLogger struct {
	requestID string
	base      core.Logger
}

// NewRequestLogger creates a logger for a single request
func NewRequestLogger(requestID string, base core.Logger) *RequestLogger {
	if base == nil {
		base = core.NopLogger{}
	}
	return &RequestLogger{
		requestID: requestID,
		base:      base,
	}
}

// Printf implements core.Logger interface
func (rl *RequestLogger) Printf(format string, args ...interface{}) {
	rl.base.Printf("[%s] %s", rl.requestID, fmt.Sprintf(format, args...))
}
