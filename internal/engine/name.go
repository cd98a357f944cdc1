package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/nhle/notebook/internal/model"
)

// Canonicalize derives the comparison key for a user-entered name: trimmed,
// internal whitespace runs collapsed to single spaces, lowercased. The key
// is used only for duplicate detection and is never stored or displayed.
// Idempotent: Canonicalize(Canonicalize(x)) == Canonicalize(x).
func Canonicalize(raw string) string {
	return strings.ToLower(PrepareDisplay(raw))
}

// PrepareDisplay normalizes a name for storage and display: trimmed and
// whitespace-collapsed, case preserved.
func PrepareDisplay(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// NameRules bounds validated names. The zero value accepts nothing; use
// DefaultNameRules or build one from EngineConfig.
type NameRules struct {
	MaxLength int
}

// DefaultNameRules returns the rules used when no config overrides them.
func DefaultNameRules() NameRules {
	return NameRules{MaxLength: model.DefaultMaxNameLength}
}

// Validate checks a raw name without touching storage. It returns a
// ValidationError with CodeEmptyName or CodeNameTooLong on failure.
func (r NameRules) Validate(raw string) error {
	return r.ValidateField(raw, "name")
}

// ValidateField is Validate with the reported field name chosen by the
// caller, so editors can refocus the offending input.
func (r NameRules) ValidateField(raw, field string) error {
	display := PrepareDisplay(raw)
	if display == "" {
		return &ValidationError{
			Field:   field,
			Code:    CodeEmptyName,
			Message: field + " must not be empty",
		}
	}
	if utf8.RuneCountInString(display) > r.MaxLength {
		return &ValidationError{
			Field:   field,
			Code:    CodeNameTooLong,
			Message: field + " is too long",
		}
	}
	return nil
}

// IsDuplicateName reports whether candidate collides with an existing
// collection name under canonical comparison. The collection whose ID
// equals excludeID is skipped, so a rename never collides with itself.
func IsDuplicateName(candidate string, existing []model.Collection, excludeID string) bool {
	key := Canonicalize(candidate)
	for _, c := range existing {
		if excludeID != "" && c.ID == excludeID {
			continue
		}
		if Canonicalize(c.Name) == key {
			return true
		}
	}
	return false
}

// ResolveForSave composes Validate and IsDuplicateName into the single
// contract shared by create (excludeID == "") and rename flows, and returns
// the display form to persist.
func (r NameRules) ResolveForSave(raw string, existing []model.Collection, excludeID string) (string, error) {
	if err := r.Validate(raw); err != nil {
		return "", err
	}
	display := PrepareDisplay(raw)
	if IsDuplicateName(display, existing, excludeID) {
		return "", &ValidationError{
			Field:   "name",
			Code:    CodeDuplicateName,
			Message: "a collection with this name already exists",
		}
	}
	return display, nil
}
