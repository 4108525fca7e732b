// Package api contains helpers to write json responses.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

// Error is a response of failed request.
type Error struct {
	Error string `json:"error"`
}

// WithLogger puts request's logger into context.
func WithLogger(ctx context.Context, l logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger returns request's logger or the standard one with request id.
func GetLogger(ctx context.Context) logrus.FieldLogger {
	if l, ok := ctx.Value(loggerKey{}).(logrus.FieldLogger); ok {
		return l
	}

	return logrus.WithField("request_id", middleware.GetReqID(ctx))
}

// WriteOK writes v as json with status.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal response")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// WriteError writes error with message.
func WriteError(w http.ResponseWriter, status int, message string) {
	data, _ := json.Marshal(Error{Error: message}) // nolint:errchkjson

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// WriteInternalErrorf logs the error and writes a generic message with 500 status.
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	GetLogger(ctx).Error(fmt.Sprintf(format, args...))

	WriteError(w, http.StatusInternalServerError, "internal error")
}
