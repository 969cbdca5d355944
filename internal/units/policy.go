// Package units decides, for each unit of measure a benchmark reports,
// whether a larger value is an improvement.
package units

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownUnit is returned for a unit the policy has no entry for. Adding
// support for a unit means extending the tables below.
var ErrUnknownUnit = errors.New("unknown unit")

// Profile selects which historical variant of the unit table is in effect.
type Profile string

const (
	// ProfileCurrent accepts the "score (bigger is better)" alias.
	ProfileCurrent Profile = "current"
	// ProfileLegacy predates the alias.
	ProfileLegacy Profile = "legacy"
)

// ScoreAlias is the verbose spelling of "score" emitted by newer benchmark harnesses.
const ScoreAlias = "score (bigger is better)"

var (
	biggerIsBetter  = []string{"fps", "runs/s", "score"}
	smallerIsBetter = []string{"ms", "%", "count", "kb", "percent", "mWh"}
)

// ParseProfile validates a profile name. An empty name selects ProfileCurrent.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case "", ProfileCurrent:
		return ProfileCurrent, nil
	case ProfileLegacy:
		return ProfileLegacy, nil
	default:
		return "", fmt.Errorf("unsupported unit profile %q: must be %s or %s", s, ProfileCurrent, ProfileLegacy)
	}
}

// Policy maps units to their improvement direction.
type Policy struct {
	profile Profile
}

// NewPolicy returns the unit policy for the given profile.
func NewPolicy(profile Profile) *Policy {
	return &Policy{profile: profile}
}

// Profile returns the profile the policy was built with.
func (p *Policy) Profile() Profile {
	return p.profile
}

// BiggerIsBetter reports whether an increase in unit is an improvement.
// It returns an error wrapping ErrUnknownUnit for units outside the table.
func (p *Policy) BiggerIsBetter(unit string) (bool, error) {
	if slices.Contains(biggerIsBetter, unit) {
		return true, nil
	}
	if p.profile != ProfileLegacy && unit == ScoreAlias {
		return true, nil
	}
	if slices.Contains(smallerIsBetter, unit) {
		return false, nil
	}
	return false, fmt.Errorf("%w %q: add it to the unit policy", ErrUnknownUnit, unit)
}

// Entry is one row of the policy table.
type Entry struct {
	Unit           string `json:"unit"`
	BiggerIsBetter bool   `json:"bigger_is_better"`
}

// Entries lists every unit the policy knows, bigger-is-better units first.
func (p *Policy) Entries() []Entry {
	entries := make([]Entry, 0, len(biggerIsBetter)+len(smallerIsBetter)+1)
	for _, u := range biggerIsBetter {
		entries = append(entries, Entry{Unit: u, BiggerIsBetter: true})
	}
	if p.profile != ProfileLegacy {
		entries = append(entries, Entry{Unit: ScoreAlias, BiggerIsBetter: true})
	}
	for _, u := range smallerIsBetter {
		entries = append(entries, Entry{Unit: u, BiggerIsBetter: false})
	}
	return entries
}
