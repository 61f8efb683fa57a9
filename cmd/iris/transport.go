package main

import (
	"log/slog"
	"net/http"
)

// logTransport logs every request and response. The bearer token is never
// written out.
type logTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func newLogTransport(logger *slog.Logger) http.RoundTripper {
	return &logTransport{
		base:   http.DefaultTransport,
		logger: logger,
	}
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	attrs := []any{
		"method", req.Method,
		"url", req.URL.String(),
	}

	if req.Header.Get("Authorization") != "" {
		attrs = append(attrs, "authorization", "Bearer ***")
	}

	if req.ContentLength > 0 {
		attrs = append(attrs, "bytes", req.ContentLength)
	}

	t.logger.Info("request", attrs...)

	resp, err := t.base.RoundTrip(req)

	if err != nil {
		t.logger.Error("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return nil, err
	}

	t.logger.Info("response", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)

	return resp, nil
}
