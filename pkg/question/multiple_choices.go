package question

import "fmt"

// MultipleChoices is a question answered by choosing among a fixed,
// ordered list of correct answers. Construct instances with
// NewMultipleChoices or Factory.MultipleChoices so the validation and
// immutability guarantees hold.
type MultipleChoices struct {
	// Text is the question formulation shown to a respondent.
	Text string `json:"formulation" validate:"required"`

	// Answers is the ordered list of correct answers.
	// The list must be non-empty; individual entries are not constrained.
	Answers []string `json:"answers" validate:"required,min=1"`
}

// NewMultipleChoices creates a validated multiple-choices question.
// The answers slice is cloned to prevent aliasing, so later mutation of the
// caller's slice does not affect the question.
// Returns an error wrapping ErrInvalidQuestion if the formulation is empty
// or the answer list is nil or empty.
func NewMultipleChoices(formulation string, answers []string) (*MultipleChoices, error) {
	q := &MultipleChoices{
		Text:    formulation,
		Answers: cloneStringSlice(answers),
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Kind returns KindMultipleChoices.
func (q *MultipleChoices) Kind() Kind { return KindMultipleChoices }

// Formulation returns the question text.
func (q *MultipleChoices) Formulation() string { return q.Text }

// CorrectAnswers returns a copy of the ordered answer list, preserving the
// immutability of the question.
func (q *MultipleChoices) CorrectAnswers() []string {
	return cloneStringSlice(q.Answers)
}

// AnswerCount returns the number of correct answers.
func (q *MultipleChoices) AnswerCount() int { return len(q.Answers) }

// Validate checks if the question meets all requirements.
// Returns nil if valid, or an error wrapping ErrInvalidQuestion describing
// the first constraint violation.
func (q *MultipleChoices) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuestion, err)
	}
	return nil
}
