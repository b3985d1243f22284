// SPDX-License-Identifier: MPL-2.0

package theme

import (
	"errors"
	"fmt"
	"unicode"
)

const (
	// StatusGood means the entry's letter count is within the profile bounds.
	StatusGood Status = "good"
	// StatusTooShort means the entry has fewer letters than the profile minimum.
	StatusTooShort Status = "too_short"
	// StatusTooLong means the entry has more letters than the profile maximum.
	StatusTooLong Status = "too_long"
)

var (
	// ErrEmptyInput is the sentinel error wrapped by EmptyInputError.
	ErrEmptyInput = errors.New("no theme entries provided")
	// ErrInvalidProfile is the sentinel error wrapped by InvalidProfileError.
	ErrInvalidProfile = errors.New("invalid puzzle profile")
	// ErrInvalidStatus is returned when a Status value is not recognized.
	ErrInvalidStatus = errors.New("invalid verdict status")
)

type (
	// Status classifies an entry's letter count against a profile's bounds.
	// It is a closed set: StatusGood, StatusTooShort, StatusTooLong.
	Status string

	// Entry is a candidate theme answer with its derived letter count.
	// Letters counts Unicode letters only (unicode.IsLetter); spaces,
	// punctuation, and digits are excluded. Entries are never mutated
	// after construction.
	Entry struct {
		// Raw is the entry text exactly as supplied.
		Raw string
		// Letters is the normalized letter count of Raw.
		Letters int
	}

	// Verdict is the per-entry classification result. Message states the
	// letter count and, for out-of-range statuses, the violated bound.
	Verdict struct {
		Entry   Entry
		Status  Status
		Message string
	}

	// Report is the aggregate result of analyzing a batch of entries.
	// Verdicts preserves input order; Suggestions are derived
	// deterministically from the verdicts and the profile.
	Report struct {
		EntryCount   int
		TotalLetters int
		Verdicts     []Verdict
		Suggestions  []string
	}

	// EmptyInputError is returned by Analyze when no entries are supplied.
	// It wraps ErrEmptyInput for errors.Is() compatibility.
	EmptyInputError struct{}

	// InvalidProfileError is returned when a profile selector is not recognized.
	// It wraps ErrInvalidProfile for errors.Is() compatibility.
	InvalidProfileError struct {
		Name string
	}
)

// IsValid reports whether s is one of the recognized statuses.
func (s Status) IsValid() error {
	switch s {
	case StatusGood, StatusTooShort, StatusTooLong:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

// String returns the status as a string.
func (s Status) String() string {
	return string(s)
}

// NewEntry derives an Entry from raw text, counting Unicode letters and
// ignoring everything else. "BREAK-THE ICE!" yields 11 letters.
func NewEntry(raw string) Entry {
	count := 0
	for _, r := range raw {
		if unicode.IsLetter(r) {
			count++
		}
	}
	return Entry{Raw: raw, Letters: count}
}

// Error implements the error interface.
func (e *EmptyInputError) Error() string {
	return "no theme entries provided: at least one entry is required"
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *EmptyInputError) Unwrap() error {
	return ErrEmptyInput
}

// Error implements the error interface.
func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid puzzle profile %q: expected %q or %q", e.Name, ProfileStandard, ProfileMini)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *InvalidProfileError) Unwrap() error {
	return ErrInvalidProfile
}
