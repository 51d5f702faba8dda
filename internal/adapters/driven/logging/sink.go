// Package logging provides EventSink adapters. Core services emit events
// through an injected driven.EventSink; this package supplies a writer-backed
// sink for verbose diagnostics and a no-op sink for silent operation.
package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/passim-labs/passim-cli/internal/core/ports/driven"
)

// Ensure the adapters implement the interface.
var (
	_ driven.EventSink = (*WriterSink)(nil)
	_ driven.EventSink = (*NopSink)(nil)
)

// WriterSink writes level-tagged event lines to an io.Writer, typically
// stderr. When verbose is false only warnings are written.
type WriterSink struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// NewWriterSink creates a sink writing to out.
func NewWriterSink(out io.Writer, verbose bool) *WriterSink {
	return &WriterSink{out: out, verbose: verbose}
}

// Debug writes a debug event when verbose mode is enabled.
func (s *WriterSink) Debug(format string, args ...any) {
	if s.verbose {
		s.write("[DEBUG] ", format, args...)
	}
}

// Info writes an informational event when verbose mode is enabled.
func (s *WriterSink) Info(format string, args ...any) {
	if s.verbose {
		s.write("[INFO] ", format, args...)
	}
}

// Warn writes a warning event regardless of verbosity.
func (s *WriterSink) Warn(format string, args ...any) {
	s.write("[WARN] ", format, args...)
}

func (s *WriterSink) write(prefix, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, prefix+format+"\n", args...)
}

// NopSink discards all events.
type NopSink struct{}

// Debug discards the event.
func (NopSink) Debug(string, ...any) {}

// Info discards the event.
func (NopSink) Info(string, ...any) {}

// Warn discards the event.
func (NopSink) Warn(string, ...any) {}
