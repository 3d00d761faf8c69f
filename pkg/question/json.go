package question

import (
	"encoding/json"
	"fmt"
)

// envelope wraps a serialized question with its kind discriminant so the
// concrete variant can be reconstructed on decode.
type envelope struct {
	// Kind identifies the variant stored in Question.
	Kind Kind `json:"kind"`

	// Question contains the variant-specific data as JSON.
	Question json.RawMessage `json:"question"`
}

// MarshalQuestion serializes a question together with its kind discriminant.
// The output can be reconstructed with UnmarshalQuestion.
func MarshalQuestion(q Question) ([]byte, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: nil question", ErrInvalidQuestion)
	}

	payload, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal %s question: %w", q.Kind(), err)
	}

	return json.Marshal(envelope{Kind: q.Kind(), Question: payload})
}

// UnmarshalQuestion reconstructs a question from data produced by
// MarshalQuestion. The decoded variant is validated before being returned,
// so data that decodes structurally but violates the question invariants
// fails with an error wrapping ErrInvalidQuestion.
func UnmarshalQuestion(data []byte) (Question, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal question envelope: %w", err)
	}

	switch env.Kind {
	case KindFreeResponse:
		var q FreeResponse
		if err := json.Unmarshal(env.Question, &q); err != nil {
			return nil, fmt.Errorf("unmarshal %s question: %w", env.Kind, err)
		}
		if err := q.Validate(); err != nil {
			return nil, err
		}
		return &q, nil

	case KindMultipleChoices:
		var q MultipleChoices
		if err := json.Unmarshal(env.Question, &q); err != nil {
			return nil, fmt.Errorf("unmarshal %s question: %w", env.Kind, err)
		}
		if err := q.Validate(); err != nil {
			return nil, err
		}
		return &q, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Kind)
	}
}
