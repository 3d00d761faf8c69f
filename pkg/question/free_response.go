package question

import "fmt"

// FreeResponse is a question answered with a single free-form string.
// Construct instances with NewFreeResponse or Factory.FreeResponse so the
// validation and immutability guarantees hold.
type FreeResponse struct {
	// Text is the question formulation shown to a respondent.
	Text string `json:"formulation" validate:"required"`

	// Answer is the single correct answer.
	Answer string `json:"answer" validate:"required"`
}

// NewFreeResponse creates a validated free-response question.
// Returns an error wrapping ErrInvalidQuestion if the formulation or the
// answer is empty.
func NewFreeResponse(formulation, answer string) (*FreeResponse, error) {
	q := &FreeResponse{
		Text:   formulation,
		Answer: answer,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Kind returns KindFreeResponse.
func (q *FreeResponse) Kind() Kind { return KindFreeResponse }

// Formulation returns the question text.
func (q *FreeResponse) Formulation() string { return q.Text }

// CorrectAnswer returns the expected answer.
func (q *FreeResponse) CorrectAnswer() string { return q.Answer }

// Validate checks if the question meets all requirements.
// Returns nil if valid, or an error wrapping ErrInvalidQuestion describing
// the first constraint violation.
func (q *FreeResponse) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuestion, err)
	}
	return nil
}
