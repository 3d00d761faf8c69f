package question

import "testing"

func FuzzUnmarshalQuestion(f *testing.F) {
	// Seed corpus with valid envelopes and structural edge cases.
	f.Add(`{"kind":"FREE_RESPONSE","question":{"formulation":"2+2?","answer":"4"}}`)
	f.Add(`{"kind":"MULTIPLE_CHOICES","question":{"formulation":"2+2?","answers":["4","four"]}}`)
	f.Add(`{"kind":"FREE_RESPONSE","question":{"formulation":"","answer":""}}`)
	f.Add(`{"kind":"MULTIPLE_CHOICES","question":{"formulation":"Q","answers":[]}}`)
	f.Add(`{"kind":"TRUE_FALSE","question":{}}`)
	f.Add(`{"kind":"","question":null}`)
	f.Add(`{"kind":"FREE_RESPONSE"}`)
	f.Add(`{"kind":"FREE_RESPONSE","question":{"formulation":"文档?","answer":"答案"}}`)
	f.Add(`null`)
	f.Add(`{}`)
	f.Add(`[]`)

	f.Fuzz(func(t *testing.T, input string) {
		q, err := UnmarshalQuestion([]byte(input))
		if err != nil {
			// Invalid input must fail cleanly, never panic.
			return
		}

		// Successfully decoded questions must satisfy their own invariants
		// and survive a marshal/unmarshal round trip.
		if !q.Kind().Valid() {
			t.Errorf("decoded question has invalid kind %q", q.Kind())
		}
		if q.Formulation() == "" {
			t.Error("decoded question has empty formulation")
		}

		data, err := MarshalQuestion(q)
		if err != nil {
			t.Errorf("failed to marshal decoded question: %v", err)
			return
		}

		q2, err := UnmarshalQuestion(data)
		if err != nil {
			t.Errorf("round-trip unmarshal failed: %v", err)
			return
		}

		if !Equal(q, q2) {
			t.Errorf("round-trip mismatch: %+v != %+v", q, q2)
		}
	})
}
