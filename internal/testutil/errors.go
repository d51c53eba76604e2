// Package testutil provides testing utilities for rcli.
//
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for simulating failures in tests.
var (
	// ErrMockRead simulates a failing input or key source.
	ErrMockRead = errors.New("mock read failure")

	// ErrMockWrite simulates a failing output sink.
	ErrMockWrite = errors.New("mock write failure")

	// ErrMockEntropy simulates an exhausted random source.
	ErrMockEntropy = errors.New("mock entropy failure")
)

// FailingReader returns Err from every Read call.
type FailingReader struct {
	Err error
}

// Read implements io.Reader.
func (r FailingReader) Read([]byte) (int, error) {
	if r.Err == nil {
		return 0, ErrMockRead
	}
	return 0, r.Err
}

// FailingWriter returns Err from every Write call.
type FailingWriter struct {
	Err error
}

// Write implements io.Writer.
func (w FailingWriter) Write([]byte) (int, error) {
	if w.Err == nil {
		return 0, ErrMockWrite
	}
	return 0, w.Err
}
