// Package report renders validation diagnostics and carries success confirmations to a configurable sink.
package report

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// DisplayCap is the maximum number of offending values rendered by InvalidValues. Longer inputs are silently
// truncated; this is a display cap, not an error.
const DisplayCap = 10

// indexWidth is the column width the 1-based index is left-aligned to.
const indexWidth = 12

// InvalidValues renders the provided offending values as a numbered, newline-separated block, one value per line in
// input order. At most DisplayCap values are rendered. An empty input yields the empty string.
func InvalidValues[T any](invalid []T) string {
	var b strings.Builder
	for i, val := range invalid {
		if i == DisplayCap {
			break
		}
		fmt.Fprintf(&b, "%-*d %v\n", indexWidth, i+1, val)
	}
	return b.String()
}

// Shown returns the number of values InvalidValues would render for an input of length n.
func Shown(n int) int {
	return min(n, DisplayCap)
}

// A Reporter receives human-readable confirmations for checks that passed. Implementations must be safe for
// concurrent use.
type Reporter interface {
	Confirmf(format string, args ...any)
}

// LogReporter is a Reporter which writes confirmations through a logrus logger at Info level.
type LogReporter struct {
	// Log is the destination logger. A nil Log falls back to the logrus standard logger.
	Log *logrus.Logger
}

// Confirmf logs a single confirmation message.
func (r LogReporter) Confirmf(format string, args ...any) {
	log := r.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.Infof(format, args...)
}

// Discard is a Reporter which drops all confirmations.
type Discard struct{}

// Confirmf does nothing.
func (Discard) Confirmf(string, ...any) {}
