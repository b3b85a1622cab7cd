// Package ingestion produces a Profile from one of three mock input paths:
// an uploaded resume file, a LinkedIn URL, or pasted free text.
//
// No real parsing happens here. Each path validates its input, waits out a
// fixed-duration simulated processing delay, and returns canned profile data.
// A real backend would replace the delay with an actual parse call.
package ingestion

import (
	"context"
	"time"
)

// Default simulated processing delays
const (
	DefaultFileDelay     = 2000 * time.Millisecond
	DefaultLinkedInDelay = 1500 * time.Millisecond
	DefaultTextDelay     = 1000 * time.Millisecond
)

// Config holds the simulated processing delays for each ingestion path.
// Tests set these to zero.
type Config struct {
	FileDelay     time.Duration
	LinkedInDelay time.Duration
	TextDelay     time.Duration
}

// DefaultConfig returns the production delays
func DefaultConfig() Config {
	return Config{
		FileDelay:     DefaultFileDelay,
		LinkedInDelay: DefaultLinkedInDelay,
		TextDelay:     DefaultTextDelay,
	}
}

// Ingestor runs the mock ingestion paths
type Ingestor struct {
	cfg Config
}

// New creates an Ingestor with the given delay configuration
func New(cfg Config) *Ingestor {
	return &Ingestor{cfg: cfg}
}

// simulateProcessing stands in for the backend call that would do real work.
// It only fails when the context is cancelled; the processing itself cannot
// fail, which makes the callers' retry paths unreachable in practice.
func simulateProcessing(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
