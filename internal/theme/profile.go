// SPDX-License-Identifier: MPL-2.0

package theme

const (
	// ProfileStandard selects the standard 15x15 daily puzzle guidelines.
	ProfileStandard ProfileName = "standard"
	// ProfileMini selects the mini 5x5 puzzle guidelines.
	ProfileMini ProfileName = "mini"
)

type (
	// ProfileName selects one of the fixed puzzle profiles.
	ProfileName string

	// Profile holds the numeric guidelines for one puzzle size class.
	// Profiles are immutable values constructed at startup; the two fixed
	// instances come from StandardProfile and MiniProfile.
	Profile struct {
		Name ProfileName
		// MinEntries and MaxEntries bound the recommended theme entry count.
		MinEntries int
		MaxEntries int
		// MinLetters and MaxLetters bound each entry's letter count (inclusive).
		MinLetters int
		MaxLetters int
		// GridSize is the side length of the square grid.
		GridSize int
		// ExpectedWordCount is the typical total word count of the fill.
		ExpectedWordCount int
		// IdealTotalMin and IdealTotalMax bound the combined letter count of
		// all theme entries. A zero IdealTotalMax disables the check.
		IdealTotalMin int
		IdealTotalMax int
	}
)

// IsValid reports whether n is a recognized profile name.
func (n ProfileName) IsValid() error {
	switch n {
	case ProfileStandard, ProfileMini:
		return nil
	}
	return &InvalidProfileError{Name: string(n)}
}

// String returns the profile name as a string.
func (n ProfileName) String() string {
	return string(n)
}

// StandardProfile returns the guidelines for a standard 15x15 daily puzzle:
// 3-5 theme entries of 8-15 letters each, ideally 40-45 letters combined.
func StandardProfile() Profile {
	return Profile{
		Name:              ProfileStandard,
		MinEntries:        3,
		MaxEntries:        5,
		MinLetters:        8,
		MaxLetters:        15,
		GridSize:          15,
		ExpectedWordCount: 78,
		IdealTotalMin:     40,
		IdealTotalMax:     45,
	}
}

// MiniProfile returns the guidelines for a mini 5x5 puzzle:
// 2-3 theme entries of 3-5 letters each. Minis are too small for a
// meaningful combined-length target, so the ideal-total check is disabled.
func MiniProfile() Profile {
	return Profile{
		Name:              ProfileMini,
		MinEntries:        2,
		MaxEntries:        3,
		MinLetters:        3,
		MaxLetters:        5,
		GridSize:          5,
		ExpectedWordCount: 10,
	}
}

// ProfileByName maps a selector string to its fixed profile.
// Unknown selectors fail with InvalidProfileError.
func ProfileByName(name string) (Profile, error) {
	switch ProfileName(name) {
	case ProfileStandard:
		return StandardProfile(), nil
	case ProfileMini:
		return MiniProfile(), nil
	}
	return Profile{}, &InvalidProfileError{Name: name}
}
