// Package util provides common utilities including logging helpers,
// file system paths, and small numeric helpers.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(logger *log.Logger, context string, err error) {
	if err != nil && logger != nil {
		logger.Printf("%s: %v", context, err)
	}
}

// NewLogger returns a logger writing to w, or a discarding one when w is nil.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.New(w, prefix, log.LstdFlags)
}

// Discard is a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
