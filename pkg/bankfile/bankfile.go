// Package bankfile loads question-bank files into the question model.
// A bank file is a YAML or JSON document listing questions by kind; every
// item goes through the question factory, so file-sourced questions get the
// same validation and registration as programmatically constructed ones.
package bankfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-quizbank/pkg/question"
)

// File is the question-bank document schema.
type File struct {
	Version   int    `json:"version" yaml:"version"`
	Questions []Item `json:"questions" yaml:"questions"`
}

// Item declares a single question. Answer is used by free-response items,
// Answers by multiple-choices items; the factory rejects items whose
// populated fields do not satisfy the kind's invariants.
type Item struct {
	Kind        question.Kind `json:"kind" yaml:"kind"`
	Formulation string        `json:"formulation" yaml:"formulation"`
	Answer      string        `json:"answer,omitempty" yaml:"answer,omitempty"`
	Answers     []string      `json:"answers,omitempty" yaml:"answers,omitempty"`
}

// Load reads and parses a question-bank file. Files ending in .json are
// parsed as JSON; anything else is parsed as YAML. Unknown fields and
// multi-document inputs are rejected.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read question bank: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJSON(data)
	}
	return parseYAML(data)
}

// Build constructs and registers every item in the file through factory,
// returning the questions in file order. The first invalid item aborts the
// build; its error carries the item index. Items before the failing one
// remain registered.
func Build(f File, factory *question.Factory) ([]question.Question, error) {
	questions := make([]question.Question, 0, len(f.Questions))

	for i, item := range f.Questions {
		q, err := buildItem(item, factory)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func buildItem(item Item, factory *question.Factory) (question.Question, error) {
	switch item.Kind {
	case question.KindFreeResponse:
		return factory.FreeResponse(item.Formulation, item.Answer)
	case question.KindMultipleChoices:
		return factory.MultipleChoices(item.Formulation, item.Answers)
	default:
		return nil, fmt.Errorf("%w: %q", question.ErrUnknownKind, item.Kind)
	}
}

func parseJSON(data []byte) (File, error) {
	var f File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	// Probe for trailing content with a permissive target; strict-field
	// checking would otherwise reject the extra document before it can be
	// reported as such.
	if err := decoder.Decode(new(json.RawMessage)); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	return f, nil
}

func parseYAML(data []byte) (File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	// Probe for a second document with a permissive target; KnownFields
	// would otherwise reject it before it can be reported as such.
	if err := decoder.Decode(new(yaml.Node)); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}
