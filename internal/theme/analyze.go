// SPDX-License-Identifier: MPL-2.0

package theme

import "fmt"

// Classify compares an entry's letter count to the profile's inclusive
// [MinLetters, MaxLetters] range. An entry with no letters at all is
// classified TooShort like any other undersized entry.
func Classify(entry Entry, p Profile) Verdict {
	switch {
	case entry.Letters < p.MinLetters:
		return Verdict{
			Entry:   entry,
			Status:  StatusTooShort,
			Message: fmt.Sprintf("too short (%d letters): below the %d-letter minimum", entry.Letters, p.MinLetters),
		}
	case entry.Letters > p.MaxLetters:
		return Verdict{
			Entry:   entry,
			Status:  StatusTooLong,
			Message: fmt.Sprintf("too long (%d letters): above the %d-letter maximum", entry.Letters, p.MaxLetters),
		}
	default:
		return Verdict{
			Entry:   entry,
			Status:  StatusGood,
			Message: fmt.Sprintf("good length (%d letters)", entry.Letters),
		}
	}
}

// CheckSingle classifies one raw entry string against the profile.
func CheckSingle(raw string, p Profile) Verdict {
	return Classify(NewEntry(raw), p)
}

// Analyze classifies every entry in order and derives aggregate suggestions.
// It fails with EmptyInputError when raws is empty; individual entries never
// abort the batch, however degenerate, each yields a verdict.
func Analyze(raws []string, p Profile) (*Report, error) {
	if len(raws) == 0 {
		return nil, &EmptyInputError{}
	}

	report := &Report{
		EntryCount: len(raws),
		Verdicts:   make([]Verdict, 0, len(raws)),
	}

	for _, raw := range raws {
		verdict := Classify(NewEntry(raw), p)
		report.Verdicts = append(report.Verdicts, verdict)
		report.TotalLetters += verdict.Entry.Letters
	}

	report.Suggestions = suggest(report, p)

	return report, nil
}

// suggest derives the aggregate suggestion list. Ordering is fixed: entry
// count range, combined length (when the profile defines an ideal range),
// length consistency, then mini-specific grid hints. Count-range and
// consistency notes never suppress each other. Per-entry bound violations
// are carried by the verdict messages and not repeated here.
func suggest(report *Report, p Profile) []string {
	var suggestions []string

	switch {
	case report.EntryCount < p.MinEntries:
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding more theme entries: %s puzzles typically have %d-%d.",
			p.Name, p.MinEntries, p.MaxEntries))
	case report.EntryCount > p.MaxEntries:
		suggestions = append(suggestions, fmt.Sprintf(
			"You have many theme entries (%d): %s puzzles typically have %d-%d.",
			report.EntryCount, p.Name, p.MinEntries, p.MaxEntries))
	}

	if p.IdealTotalMax > 0 {
		switch {
		case report.TotalLetters < p.IdealTotalMin:
			suggestions = append(suggestions, fmt.Sprintf(
				"Total theme length is %d letters. Aim for %d-%d letters on a %dx%d grid.",
				report.TotalLetters, p.IdealTotalMin, p.IdealTotalMax, p.GridSize, p.GridSize))
		case report.TotalLetters > p.IdealTotalMax:
			suggestions = append(suggestions, fmt.Sprintf(
				"Total theme length is %d letters. That may be too much for a %dx%d grid (ideal: %d-%d letters).",
				report.TotalLetters, p.GridSize, p.GridSize, p.IdealTotalMin, p.IdealTotalMax))
		default:
			suggestions = append(suggestions, fmt.Sprintf(
				"Total theme length (%d letters) is in the ideal range.", report.TotalLetters))
		}
	}

	if sameLetterCount(report.Verdicts) {
		suggestions = append(suggestions,
			"All theme entries have the same length, which makes symmetric placement easy.")
	} else {
		suggestions = append(suggestions,
			"Theme entries have different lengths. Matching lengths make symmetric placement easier.")
	}

	if p.Name == ProfileMini {
		suggestions = append(suggestions,
			fmt.Sprintf("Mini grids are %dx%d.", p.GridSize, p.GridSize),
			fmt.Sprintf("Expect about %d words in the finished fill.", p.ExpectedWordCount))
	}

	return suggestions
}

// sameLetterCount reports whether every verdict shares one letter count.
// Callers guarantee at least one verdict.
func sameLetterCount(verdicts []Verdict) bool {
	first := verdicts[0].Entry.Letters
	for _, v := range verdicts[1:] {
		if v.Entry.Letters != first {
			return false
		}
	}
	return true
}
