// SPDX-License-Identifier: MPL-2.0

package theme

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		wantLetters int
	}{
		{name: "plain word", raw: "PUZZLE", wantLetters: 6},
		{name: "phrase with spaces", raw: "BREAK THE ICE", wantLetters: 11},
		{name: "mixed case and punctuation", raw: "Break-The Ice!", wantLetters: 11},
		{name: "digits excluded", raw: "CATCH 22", wantLetters: 5},
		{name: "only non-letters", raw: "123 -- !!", wantLetters: 0},
		{name: "empty string", raw: "", wantLetters: 0},
		{name: "unicode letters counted", raw: "CAFÉ AU LAIT", wantLetters: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := NewEntry(tt.raw)
			if entry.Letters != tt.wantLetters {
				t.Errorf("NewEntry(%q).Letters = %d, want %d", tt.raw, entry.Letters, tt.wantLetters)
			}
			if entry.Raw != tt.raw {
				t.Errorf("NewEntry(%q).Raw = %q, want the input preserved", tt.raw, entry.Raw)
			}
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	t.Parallel()

	p := StandardProfile()

	tests := []struct {
		name       string
		letters    int
		wantStatus Status
	}{
		{name: "exactly min", letters: p.MinLetters, wantStatus: StatusGood},
		{name: "one below min", letters: p.MinLetters - 1, wantStatus: StatusTooShort},
		{name: "exactly max", letters: p.MaxLetters, wantStatus: StatusGood},
		{name: "one above max", letters: p.MaxLetters + 1, wantStatus: StatusTooLong},
		{name: "zero letters", letters: 0, wantStatus: StatusTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := NewEntry(strings.Repeat("A", tt.letters))
			verdict := Classify(entry, p)
			if verdict.Status != tt.wantStatus {
				t.Errorf("Classify(%d letters) status = %q, want %q", tt.letters, verdict.Status, tt.wantStatus)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	t.Parallel()

	entry := NewEntry("BREAK THE ICE")
	p := StandardProfile()

	first := Classify(entry, p)
	second := Classify(entry, p)

	if first != second {
		t.Errorf("Classify is not idempotent: %+v vs %+v", first, second)
	}
}

func TestClassifyMessages(t *testing.T) {
	t.Parallel()

	p := StandardProfile()

	tests := []struct {
		name     string
		raw      string
		wantSubs []string
	}{
		{name: "too short states count and minimum", raw: "PUZZLE", wantSubs: []string{"6 letters", "8-letter minimum"}},
		{name: "too long states count and maximum", raw: strings.Repeat("A", 16), wantSubs: []string{"16 letters", "15-letter maximum"}},
		{name: "good states count", raw: "BREAK THE ICE", wantSubs: []string{"11 letters"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verdict := CheckSingle(tt.raw, p)
			for _, sub := range tt.wantSubs {
				if !strings.Contains(verdict.Message, sub) {
					t.Errorf("CheckSingle(%q) message = %q, want it to contain %q", tt.raw, verdict.Message, sub)
				}
			}
		})
	}
}

func TestCheckSingleTooShort(t *testing.T) {
	t.Parallel()

	verdict := CheckSingle("PUZZLE", StandardProfile())

	if verdict.Status != StatusTooShort {
		t.Errorf("status = %q, want %q", verdict.Status, StatusTooShort)
	}
	if verdict.Entry.Letters != 6 {
		t.Errorf("letters = %d, want 6", verdict.Entry.Letters)
	}
}

func TestAnalyzeStandard(t *testing.T) {
	t.Parallel()

	entries := []string{"BREAK THE ICE", "BREAK A LEG", "BREAK THE BANK"}

	report, err := Analyze(entries, StandardProfile())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if report.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", report.EntryCount)
	}
	if report.TotalLetters != 32 {
		t.Errorf("TotalLetters = %d, want 32", report.TotalLetters)
	}

	wantLetters := []int{11, 9, 12}
	for i, verdict := range report.Verdicts {
		if verdict.Status != StatusGood {
			t.Errorf("verdict[%d] status = %q, want %q", i, verdict.Status, StatusGood)
		}
		if verdict.Entry.Letters != wantLetters[i] {
			t.Errorf("verdict[%d] letters = %d, want %d", i, verdict.Entry.Letters, wantLetters[i])
		}
	}

	if !containsSubstring(report.Suggestions, "different lengths") {
		t.Errorf("suggestions = %q, want a different-lengths note", report.Suggestions)
	}
}

func TestAnalyzeMini(t *testing.T) {
	t.Parallel()

	report, err := Analyze([]string{"CAT", "DOG", "BAT"}, MiniProfile())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if report.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", report.EntryCount)
	}
	if report.TotalLetters != 9 {
		t.Errorf("TotalLetters = %d, want 9", report.TotalLetters)
	}
	for i, verdict := range report.Verdicts {
		if verdict.Status != StatusGood {
			t.Errorf("verdict[%d] status = %q, want %q", i, verdict.Status, StatusGood)
		}
	}

	if !containsSubstring(report.Suggestions, "same length") {
		t.Errorf("suggestions = %q, want a same-length note", report.Suggestions)
	}
	if !containsSubstring(report.Suggestions, "5x5") {
		t.Errorf("suggestions = %q, want the 5x5 grid hint", report.Suggestions)
	}
	if !containsSubstring(report.Suggestions, "10 words") {
		t.Errorf("suggestions = %q, want the expected word count hint", report.Suggestions)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Analyze(nil, StandardProfile())
	if err == nil {
		t.Fatal("Analyze(nil) returned nil error")
	}

	var emptyErr *EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Errorf("error = %v, want *EmptyInputError", err)
	}
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("errors.Is(err, ErrEmptyInput) = false for %v", err)
	}
}

func TestAnalyzeCountRangeSuggestions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []string
		wantSub string
	}{
		{
			name:    "too few entries",
			entries: []string{"BREAK THE ICE"},
			wantSub: "adding more theme entries",
		},
		{
			name: "too many entries",
			entries: []string{
				"BREAK THE ICE", "BREAK A LEG", "BREAK THE BANK",
				"BREAK THE MOLD", "BREAKING POINT", "BREAK OF DAWN",
			},
			wantSub: "many theme entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report, err := Analyze(tt.entries, StandardProfile())
			if err != nil {
				t.Fatalf("Analyze returned error: %v", err)
			}
			if !containsSubstring(report.Suggestions, tt.wantSub) {
				t.Errorf("suggestions = %q, want one containing %q", report.Suggestions, tt.wantSub)
			}
		})
	}
}

// Count-out-of-range and inconsistent lengths must both be reported when both
// conditions hold; neither suppresses the other.
func TestAnalyzeEmitsCountAndConsistencyTogether(t *testing.T) {
	t.Parallel()

	report, err := Analyze([]string{"BREAK THE ICE", "BREAK A LEG"}, StandardProfile())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if !containsSubstring(report.Suggestions, "adding more theme entries") {
		t.Errorf("suggestions = %q, missing the count-range note", report.Suggestions)
	}
	if !containsSubstring(report.Suggestions, "different lengths") {
		t.Errorf("suggestions = %q, missing the consistency note", report.Suggestions)
	}
}

func TestAnalyzeIdealTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []string
		wantSub string
	}{
		{
			name:    "below ideal total",
			entries: []string{"BREAK THE ICE", "BREAK A LEG", "BREAK THE BANK"}, // 32 letters
			wantSub: "Aim for 40-45 letters",
		},
		{
			name: "within ideal total",
			entries: []string{
				"BREAK THE ICEBOX",  // 14
				"BREAKING THE LAW",  // 14
				"BREAK THE SILENCE", // 15
			},
			wantSub: "ideal range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report, err := Analyze(tt.entries, StandardProfile())
			if err != nil {
				t.Fatalf("Analyze returned error: %v", err)
			}
			if !containsSubstring(report.Suggestions, tt.wantSub) {
				t.Errorf("suggestions = %q, want one containing %q", report.Suggestions, tt.wantSub)
			}
		})
	}
}

func TestAnalyzeMiniSkipsIdealTotal(t *testing.T) {
	t.Parallel()

	report, err := Analyze([]string{"CAT", "DOG"}, MiniProfile())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if containsSubstring(report.Suggestions, "Total theme length") {
		t.Errorf("suggestions = %q, mini profile must not report a total-length target", report.Suggestions)
	}
}

func TestAnalyzeDegenerateEntriesStillGetVerdicts(t *testing.T) {
	t.Parallel()

	report, err := Analyze([]string{"", "123!!", "BREAK THE ICE"}, StandardProfile())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if len(report.Verdicts) != 3 {
		t.Fatalf("got %d verdicts, want 3", len(report.Verdicts))
	}
	if report.Verdicts[0].Status != StatusTooShort || report.Verdicts[1].Status != StatusTooShort {
		t.Errorf("degenerate entries must classify TooShort, got %q and %q",
			report.Verdicts[0].Status, report.Verdicts[1].Status)
	}
}

func TestAnalyzePreservesOrder(t *testing.T) {
	t.Parallel()

	entries := []string{"BREAK THE BANK", "BREAK A LEG", "BREAK THE ICE"}

	report, err := Analyze(entries, StandardProfile())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	for i, verdict := range report.Verdicts {
		if verdict.Entry.Raw != entries[i] {
			t.Errorf("verdict[%d].Entry.Raw = %q, want %q", i, verdict.Entry.Raw, entries[i])
		}
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
