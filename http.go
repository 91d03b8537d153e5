package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// loggerTransport logs every gateway request and response at debug
// level, with timing.
type loggerTransport struct {
	transport http.RoundTripper
	logger    *log.Logger
}

func (l *loggerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	l.logger.Debug("gateway request",
		"method", req.Method,
		"url", req.URL.String(),
	)

	startTime := time.Now()
	resp, err := l.transport.RoundTrip(req)
	if err != nil {
		l.logger.Error("gateway request failed", "error", err)
		return nil, err
	}

	l.logger.Debug("gateway response",
		"status", resp.Status,
		"duration", time.Since(startTime),
		"url", req.URL.String(),
		"method", req.Method,
	)

	return resp, nil
}

func newLoggingTransport(transport http.RoundTripper, logger *log.Logger) http.RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &loggerTransport{transport: transport, logger: logger}
}
