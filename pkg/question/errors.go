package question

import "errors"

// ErrInvalidQuestion indicates that question construction input failed
// validation: an empty formulation, an empty free-response answer, or a
// nil/empty multiple-choices answer list.
var ErrInvalidQuestion = errors.New("invalid question")

// ErrUnknownKind indicates that a question kind is not one of the defined
// variants.
var ErrUnknownKind = errors.New("unknown question kind")
