package question

// Factory constructs question variants and registers each successfully
// constructed question in its registry. Construction is validated before
// registration, so a failed construction never leaves a partial entry
// behind.
//
// A Factory is safe for concurrent use when its registry is.
type Factory struct {
	registry *Registry
}

// NewFactory creates a factory bound to registry.
// A nil registry provisions a fresh one, reachable through Registry.
func NewFactory(registry *Registry) *Factory {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Factory{registry: registry}
}

// Registry returns the registry this factory registers questions into.
func (f *Factory) Registry() *Registry { return f.registry }

// FreeResponse creates a validated free-response question and registers it
// under KindFreeResponse. Returns an error wrapping ErrInvalidQuestion if
// the formulation or the answer is empty; nothing is registered on failure.
func (f *Factory) FreeResponse(formulation, answer string) (*FreeResponse, error) {
	q, err := NewFreeResponse(formulation, answer)
	if err != nil {
		return nil, err
	}

	if _, err := f.registry.Register(q); err != nil {
		return nil, err
	}
	return q, nil
}

// MultipleChoices creates a validated multiple-choices question and
// registers it under KindMultipleChoices. Returns an error wrapping
// ErrInvalidQuestion if the formulation is empty or the answer list is nil
// or empty; nothing is registered on failure.
func (f *Factory) MultipleChoices(formulation string, answers []string) (*MultipleChoices, error) {
	q, err := NewMultipleChoices(formulation, answers)
	if err != nil {
		return nil, err
	}

	if _, err := f.registry.Register(q); err != nil {
		return nil, err
	}
	return q, nil
}
