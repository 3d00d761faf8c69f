package question

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry records a single question registration.
// Entries form the registry's audit trail: each carries a unique ID and the
// registration timestamp alongside the question itself.
type Entry struct {
	// ID uniquely identifies this registration using UUID format.
	ID string `json:"id"`

	// RegisteredAt records when the question was registered.
	RegisteredAt time.Time `json:"registered_at"`

	// Question is the registered question.
	Question Question `json:"question"`
}

// Registry tracks every question registered with it, partitioned by kind and
// ordered by registration. It is append-only: entries are never removed for
// the lifetime of the registry.
//
// A Registry is safe for concurrent use. Registrations under the same kind
// are serialized, so per-kind ordering always matches registration order.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind][]Entry
}

// NewRegistry creates an empty registry with every known kind present.
// Construct one registry per scope that needs isolated tracking (a process,
// a test) and pass it by reference to consumers.
func NewRegistry() *Registry {
	return &Registry{
		entries: map[Kind][]Entry{
			KindFreeResponse:    {},
			KindMultipleChoices: {},
		},
	}
}

// Register appends a question to the sequence for its kind and returns the
// resulting entry. Fails with ErrInvalidQuestion for a nil question and
// ErrUnknownKind for a question whose kind is not a defined variant; the
// registry is left unchanged on failure.
func (r *Registry) Register(q Question) (Entry, error) {
	if q == nil {
		return Entry{}, fmt.Errorf("%w: nil question", ErrInvalidQuestion)
	}
	if !q.Kind().Valid() {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownKind, q.Kind())
	}

	entry := Entry{
		ID:           uuid.New().String(),
		RegisteredAt: time.Now(),
		Question:     q,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[q.Kind()] = append(r.entries[q.Kind()], entry)
	return entry, nil
}

// Questions returns the questions registered under kind, in registration
// order. The returned slice is a copy; mutating it does not affect the
// registry.
func (r *Registry) Questions(kind Kind) []Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entries[kind]
	questions := make([]Question, len(entries))
	for i, entry := range entries {
		questions[i] = entry.Question
	}
	return questions
}

// Entries returns the registration records for kind, in registration order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Entries(kind Kind) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries[kind]))
	copy(entries, r.entries[kind])
	return entries
}

// Len returns the number of questions registered under kind.
func (r *Registry) Len(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries[kind])
}

// Size returns the total number of registered questions across all kinds.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, entries := range r.entries {
		total += len(entries)
	}
	return total
}

// Snapshot returns the full kind-to-questions mapping at the time of the
// call. Every known kind is present, including kinds with no registrations.
// The returned map and slices are copies; mutating them does not affect the
// registry.
func (r *Registry) Snapshot() map[Kind][]Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[Kind][]Question, len(r.entries))
	for kind, entries := range r.entries {
		questions := make([]Question, len(entries))
		for i, entry := range entries {
			questions[i] = entry.Question
		}
		snapshot[kind] = questions
	}
	return snapshot
}
