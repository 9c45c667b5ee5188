// Package verify provides validation helpers for the collection inputs of downstream image-analysis tools. Each
// helper checks that its inputs satisfy a relationship and, when they do not, returns an error explaining why in a
// truncated, readable report which echoes the caller-supplied argument names.
//
// Arguments are passed as named values built with List or Value, so that diagnostics can name the offending input:
//
//	err := verify.InList(
//		verify.List("channel_names", chans...),
//		verify.List("valid_channels", valid...),
//	)
//
// Helpers confirm passing checks through a report.Reporter, by default a logrus-backed logger. Use SetReporter to
// inject a different sink.
package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quantimg/go-verify/report"
	"github.com/quantimg/go-verify/sets"
	"github.com/quantimg/go-verify/tsync"
)

var (
	// ErrArgCount reports a usage error: a helper was called with a number of arguments other than two.
	ErrArgCount = errors.New("verify: exactly two named arguments required")
	// ErrNotList reports a usage error: an argument required to be a list was a single value.
	ErrNotList = errors.New("verify: both arguments must be lists or list types")
	// ErrNotInList reports a validation failure: candidate values were absent from the reference list.
	ErrNotInList = errors.New("verify: values not found in reference list")
	// ErrElementsDiffer reports a validation failure: two lists do not contain the same distinct elements.
	ErrElementsDiffer = errors.New("verify: lists do not contain the same elements")
)

// errScalar is the cause chained into ErrNotList usage errors.
var errScalar = errors.New("a single value cannot be converted to a list")

// An Arg is a named argument to a validation helper: the caller-supplied name alongside a value or collection of
// values. Names appear in diagnostics and confirmations, with underscores rendered as spaces.
type Arg[T comparable] struct {
	name   string
	values []T
	scalar bool
}

// List constructs a collection-valued Arg.
func List[T comparable](name string, values ...T) Arg[T] {
	return Arg[T]{name: name, values: values}
}

// Value constructs a scalar-valued Arg. Helpers which accept collections treat it as a collection of one element;
// helpers which require a list reject it with ErrNotList.
func Value[T comparable](name string, value T) Arg[T] {
	return Arg[T]{name: name, values: []T{value}, scalar: true}
}

// Name returns the argument's name as supplied by the caller.
func (a Arg[T]) Name() string {
	return a.name
}

// DisplayName returns the argument's name with underscores rendered as spaces, as used in human-readable messages.
func (a Arg[T]) DisplayName() string {
	return strings.ReplaceAll(a.name, "_", " ")
}

var reporter tsync.Value[report.Reporter]

// SetReporter replaces the sink which receives success confirmations for the whole package. It is safe to call
// concurrently with running checks.
func SetReporter(r report.Reporter) {
	reporter.Store(r)
}

func confirmf(format string, args ...any) {
	r, ok := reporter.Load()
	if !ok {
		r = report.LogReporter{}
	}
	r.Confirmf(format, args...)
}

// InList verifies that every value of the first argument exists in the second. A scalar Arg on either side is treated
// as a collection of one element.
//
// Exactly two arguments must be provided; otherwise an error wrapping ErrArgCount is returned before any comparison
// runs. If any candidate value is absent from the reference, InList returns an error wrapping ErrNotInList whose
// message reports how many of the offending values are displayed, names the candidate argument, and lists up to the
// first report.DisplayCap offenders in their original order, duplicates included. Every candidate value is tested, so
// the report is complete rather than stopping at the first miss. On success a confirmation naming both arguments is
// sent to the package reporter and nil is returned.
func InList[T comparable](args ...Arg[T]) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: got %d", ErrArgCount, len(args))
	}
	candidate, reference := args[0], args[1]

	ref := sets.New(reference.values...)
	var invalid []T
	for _, val := range candidate.values {
		if !ref.Contains(val) {
			invalid = append(invalid, val)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: displaying %d of %d invalid value(s) provided for list %s\n%s",
			ErrNotInList, report.Shown(len(invalid)), len(invalid),
			candidate.DisplayName(), report.InvalidValues(invalid))
	}

	confirmf("all values in list %s exist in list %s", candidate.DisplayName(), reference.DisplayName())
	return nil
}

// SameElements verifies that two lists contain the same distinct elements, ignoring order and duplicate counts.
//
// Exactly two arguments must be provided, and both must be lists: a scalar Arg is rejected with an error wrapping
// ErrNotList and its underlying cause, distinct from a mismatch. Both preconditions are checked before any comparison
// runs. When the element sets differ, SameElements returns an error wrapping ErrElementsDiffer which reports the
// total number of elements found in only one of the two lists, then for each direction independently a count of
// missing values displayed versus missing overall followed by up to the first report.DisplayCap of them. Both
// directions are always rendered; a direction with nothing missing renders an empty block. On success a confirmation
// naming both arguments is sent to the package reporter and nil is returned.
func SameElements[T comparable](args ...Arg[T]) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: got %d", ErrArgCount, len(args))
	}
	first, second := args[0], args[1]
	for _, arg := range []Arg[T]{first, second} {
		if arg.scalar {
			return fmt.Errorf("%w: argument %s: %w", ErrNotList, arg.name, errScalar)
		}
	}

	setA, setB := sets.New(first.values...), sets.New(second.values...)
	if setA.Equals(setB) {
		confirmf("list %s and list %s contain the same elements", first.DisplayName(), second.DisplayName())
		return nil
	}

	onlyA := sets.Difference(setA, setB).Items()
	onlyB := sets.Difference(setB, setA).Items()
	total := sets.SymmetricDiff(setA, setB).Len()

	var b strings.Builder
	fmt.Fprintf(&b, "%d value(s) provided for list %s and list %s are not found in both lists\n",
		total, first.DisplayName(), second.DisplayName())
	writeMissing(&b, first.DisplayName(), onlyA)
	writeMissing(&b, second.DisplayName(), onlyB)
	return fmt.Errorf("%w: %s", ErrElementsDiffer, b.String())
}

func writeMissing[T comparable](b *strings.Builder, name string, missing []T) {
	fmt.Fprintf(b, "displaying %d of %d missing value(s) for list %s\n%s\n",
		report.Shown(len(missing)), len(missing), name, report.InvalidValues(missing))
}
