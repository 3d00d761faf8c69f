// Package question provides the core data model for quiz questions.
// It defines the question variants (free-response and multiple-choices),
// construction-time validation, kind-discriminated equality, and an
// insertion-ordered registry that tracks every question created through
// the factory. The types are designed for deterministic, auditable
// question handling without any persistence or transport concerns.
package question

import (
	"crypto/sha256"
	"encoding/hex"
)

// Kind identifies a question variant.
// Using typed constants instead of raw strings provides compile-time safety
// and enables exhaustive switch statements over the known variants.
type Kind string

const (
	// KindFreeResponse identifies questions answered with a single free-form string.
	KindFreeResponse Kind = "FREE_RESPONSE"

	// KindMultipleChoices identifies questions answered by choosing among
	// a fixed list of candidate answers.
	KindMultipleChoices Kind = "MULTIPLE_CHOICES"
)

// Valid reports whether k is one of the defined question kinds.
func (k Kind) Valid() bool {
	return k == KindFreeResponse || k == KindMultipleChoices
}

// String returns the string representation of the kind.
func (k Kind) String() string { return string(k) }

// Question is the capability shared by all question variants.
// Implementations must be immutable after construction.
type Question interface {
	// Kind returns the variant discriminant.
	Kind() Kind

	// Formulation returns the question text shown to a respondent.
	Formulation() string
}

// Equal reports whether a and b are the same question: same kind and equal
// formulation (case-sensitive, exact match). Two variants of different kinds
// are never equal, even with identical formulations. The correct answers do
// not participate in equality. Nil questions, including nil variant pointers
// wrapped in the interface, are equal only to each other.
func Equal(a, b Question) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return a.Kind() == b.Kind() && a.Formulation() == b.Formulation()
}

// isNil reports whether q is nil, covering nil variant pointers that would
// pass an interface-nil comparison.
func isNil(q Question) bool {
	switch v := q.(type) {
	case *FreeResponse:
		return v == nil
	case *MultipleChoices:
		return v == nil
	default:
		return q == nil
	}
}

// Fingerprint returns a deterministic SHA-256 hex digest of the question
// formulation. Equal questions always share a fingerprint; so do questions
// of different kinds with identical formulations, since the digest is
// derived from the formulation alone.
func Fingerprint(q Question) string {
	hasher := sha256.New()
	hasher.Write([]byte(q.Formulation()))
	return hex.EncodeToString(hasher.Sum(nil))
}
