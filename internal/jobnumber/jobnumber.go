// Package jobnumber derives fiscally-sequenced job numbers of the form
// "YY-YY_0000001". The fiscal year runs April through March; sequence
// numbers restart at 1 on rollover. The latest previously issued
// number is supplied by an injected lookup, so the generator itself
// never touches storage.
package jobnumber

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SequenceDigits is the zero-padded width of the sequence part.
const SequenceDigits = 7

// ErrMalformed is returned when a previously issued identifier cannot
// be parsed back into a fiscal year and sequence number.
var ErrMalformed = errors.New("malformed job number")

var labelPattern = regexp.MustCompile(`^\d{2}-\d{2}$`)

// FiscalYearLabel returns the "YY-YY" label of the fiscal year the
// given date belongs to. April starts a new fiscal year.
func FiscalYearLabel(t time.Time) string {
	year := t.Year()
	if t.Month() >= time.April {
		return fmt.Sprintf("%02d-%02d", year%100, (year+1)%100)
	}
	return fmt.Sprintf("%02d-%02d", (year-1)%100, year%100)
}

// Parse splits a job number into its fiscal year label and sequence.
func Parse(number string) (label string, sequence int, err error) {
	label, seq, ok := strings.Cut(number, "_")
	if !ok || !labelPattern.MatchString(label) {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformed, number)
	}
	sequence, err = strconv.Atoi(seq)
	if err != nil || sequence < 1 {
		return "", 0, fmt.Errorf("%w: bad sequence in %q", ErrMalformed, number)
	}
	return label, sequence, nil
}

// Format renders a fiscal year label and sequence as a job number.
func Format(label string, sequence int) string {
	return fmt.Sprintf("%s_%0*d", label, SequenceDigits, sequence)
}

// LatestFunc returns the most recently issued job number, or ok=false
// when none has been issued yet.
type LatestFunc func() (number string, ok bool, err error)

// Generator issues the next job number for the current fiscal year.
// It is not safe for concurrent use against a shared store: two
// generators observing the same latest number will issue the same next
// number. Callers serialize generate-then-persist.
type Generator struct {
	Latest LatestFunc
}

// Next returns the job number that follows the latest issued one at
// the given date: sequence+1 within the same fiscal year, 1 after a
// rollover or on an empty store.
func (g Generator) Next(now time.Time) (string, error) {
	fiscal := FiscalYearLabel(now)

	latest, ok, err := g.Latest()
	if err != nil {
		return "", fmt.Errorf("looking up latest job number: %w", err)
	}
	if !ok {
		return Format(fiscal, 1), nil
	}

	label, sequence, err := Parse(latest)
	if err != nil {
		return "", err
	}
	if label != fiscal {
		return Format(fiscal, 1), nil
	}
	return Format(fiscal, sequence+1), nil
}
