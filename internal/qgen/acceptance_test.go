package qgen

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/abhisek/conjugo/internal/llm"
	"github.com/abhisek/conjugo/internal/store"
)

func testVerb() *store.Verb {
	return &store.Verb{
		ID:               1,
		Infinitive:       "hablar",
		Meaning:          "to speak",
		ConjugationClass: 1,
		Transitive:       true,
	}
}

func plainTarget() Target {
	return Target{
		Kind:   KindSentence,
		Mood:   "indicativo",
		Tense:  "presente",
		Person: "yo",
		Answer: "hablo",
	}
}

type fakeBank struct {
	inserted []*store.Question
	nextID   int
}

func (b *fakeBank) Insert(_ context.Context, q *store.Question) (int, error) {
	// Same (verb, sentence) pair reuses the stored identity.
	for i, prev := range b.inserted {
		if prev.VerbID == q.VerbID && prev.Sentence == q.Sentence {
			return i + 1, nil
		}
	}
	b.inserted = append(b.inserted, q)
	b.nextID++
	return b.nextID, nil
}

func draftJSON(t *testing.T, sentence string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"cue_strategy":    "A",
		"sentence":        sentence,
		"answer_variants": []string{"hablo"},
		"answer":          "hablo",
		"translation":     "I speak with my neighbor even though we disagree.",
		"hint":            "present indicative + first person singular",
	})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func verdictJSON(t *testing.T, valid, unique bool, reason string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"isValid":         valid,
		"hasUniqueAnswer": unique,
		"reason":          reason,
		"failure_tags":    []string{},
		"alternatives":    []any{},
		"rewrite_advice":  []string{},
	})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func revisionJSON(t *testing.T, sentence string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"sentence":       sentence,
		"translation":    "Although it is late, I still speak with my neighbor.",
		"revisor_reason": "added a concessive clause to pin the slot",
	})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

const goodSentence = "Aunque no estemos de acuerdo, __?__ con mi vecino cada tarde."

func newTestMachine(mock *llm.MockProvider, bank Inserter) *Machine {
	return NewMachine(NewStages(mock), bank, Config{MaxRetries: 3, Backoff: 0})
}

func TestAcceptOnFirstValidation(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: draftJSON(t, goodSentence)},
		llm.MockResponse{Content: verdictJSON(t, true, true, "")},
	)
	bank := &fakeBank{}

	out, err := newTestMachine(mock, bank).Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !out.Accepted {
		t.Fatalf("expected acceptance, got reason %q", out.LastReason)
	}
	if out.UsedRevisor {
		t.Error("revisor must not run when the first validation passes")
	}
	if out.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", out.Attempts)
	}
	if mock.CallCount() != 2 {
		t.Errorf("backend calls = %d, want 2 (generate + validate)", mock.CallCount())
	}
	if len(bank.inserted) != 1 {
		t.Fatalf("inserted = %d questions, want 1", len(bank.inserted))
	}
	if got := bank.inserted[0]; got.Confidence != 50 || got.Kind != "sentence" {
		t.Errorf("stored question = %+v", got)
	}
	if out.QuestionID == 0 {
		t.Error("expected the stored question id on the outcome")
	}
}

func TestTwoBlankDraftRegeneratedWithoutValidatorCall(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: draftJSON(t, "Dos huecos __?__ y __?__ aquí.")},
		llm.MockResponse{Content: draftJSON(t, goodSentence)},
		llm.MockResponse{Content: verdictJSON(t, true, true, "")},
	)

	out, err := newTestMachine(mock, &fakeBank{}).Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !out.Accepted {
		t.Fatalf("expected acceptance, got reason %q", out.LastReason)
	}
	if out.Attempts != 1 {
		t.Errorf("attempts = %d, want 1: structural redraws stay inside the attempt", out.Attempts)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("backend calls = %d, want 3", mock.CallCount())
	}
	// The second call must be a regenerate, not a validate.
	if sys := mock.Calls[1].System; sys != mock.Calls[0].System {
		t.Error("bad draft consumed a validator call instead of regenerating")
	}
}

func TestRevisePathAcceptsOnSecondValidation(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: draftJSON(t, goodSentence)},
		llm.MockResponse{Content: verdictJSON(t, true, false, "another tense also fits")},
		llm.MockResponse{Content: revisionJSON(t, "Aunque sea tarde, todavía __?__ con mi vecino.")},
		llm.MockResponse{Content: verdictJSON(t, true, true, "")},
	)
	bank := &fakeBank{}

	out, err := newTestMachine(mock, bank).Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !out.Accepted {
		t.Fatalf("expected acceptance, got reason %q", out.LastReason)
	}
	if !out.UsedRevisor {
		t.Error("expected usedRevisor flag after second-validation acceptance")
	}
	if mock.CallCount() != 4 {
		t.Errorf("backend calls = %d, want 4", mock.CallCount())
	}
	if got := bank.inserted[0].Sentence; got != "Aunque sea tarde, todavía __?__ con mi vecino." {
		t.Errorf("stored sentence = %q, want the revised one", got)
	}
}

func TestRejectedAttemptsExhaustRetries(t *testing.T) {
	mock := llm.NewMockProvider()
	// Each attempt: draft is fine, both validations reject, one revise.
	for i := 0; i < 3; i++ {
		mock.AddResponse(llm.MockResponse{Content: draftJSON(t, goodSentence)})
		mock.AddResponse(llm.MockResponse{Content: verdictJSON(t, false, false, "ungrammatical")})
		mock.AddResponse(llm.MockResponse{Content: revisionJSON(t, goodSentence)})
		mock.AddResponse(llm.MockResponse{Content: verdictJSON(t, false, false, "still ungrammatical")})
	}
	bank := &fakeBank{}

	out, err := newTestMachine(mock, bank).Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Accepted {
		t.Fatal("expected rejection after exhausting retries")
	}
	if out.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", out.Attempts)
	}
	if out.LastReason != "still ungrammatical" {
		t.Errorf("last reason = %q", out.LastReason)
	}
	if len(bank.inserted) != 0 {
		t.Error("rejected run must not write to the bank")
	}
	// Per attempt: 1 generate + 2 validates + 1 revise.
	if mock.CallCount() != 12 {
		t.Errorf("backend calls = %d, want 12", mock.CallCount())
	}
}

func TestBackendFailureConsumesDraftBudgetNotValidator(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("connection refused")}},
		llm.MockResponse{Content: draftJSON(t, goodSentence)},
		llm.MockResponse{Content: verdictJSON(t, true, true, "")},
	)

	out, err := newTestMachine(mock, &fakeBank{}).Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !out.Accepted {
		t.Fatalf("expected acceptance after transient backend failure, got %q", out.LastReason)
	}
	if out.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", out.Attempts)
	}
}

func TestExhaustedDraftBudgetFailsAttempt(t *testing.T) {
	mock := llm.NewMockProvider()
	// Every generate call yields a structurally broken draft: 3 draws
	// per attempt, 3 attempts, no validator calls at all.
	for i := 0; i < 9; i++ {
		mock.AddResponse(llm.MockResponse{Content: draftJSON(t, "sin hueco alguno")})
	}

	out, err := newTestMachine(mock, &fakeBank{}).Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Accepted {
		t.Fatal("expected rejection")
	}
	if mock.CallCount() != 9 {
		t.Errorf("backend calls = %d, want 9 generates", mock.CallCount())
	}
	if out.LastReason == "" {
		t.Error("expected a structural rejection reason")
	}
}

func TestPronounDraftMustEchoTarget(t *testing.T) {
	target := Target{
		Kind:     KindPronoun,
		Mood:     "imperativo",
		Tense:    "presente",
		Person:   "tú",
		HostForm: HostImperative,
		BaseForm: "da",
	}

	pronounDraft := func(hostForm string) json.RawMessage {
		raw, _ := json.Marshal(map[string]any{
			"host_form":       hostForm,
			"pronoun_pattern": "DO_IO",
			"mood":            "imperativo",
			"tense":           "presente",
			"person":          "tú",
			"io_pronoun":      "me",
			"do_pronoun":      "lo",
			"sentence":        "Si ya terminaste con el libro, __?__ ahora mismo.",
			"answer":          "dámelo",
			"translation":     "If you're done with the book, give it to me right now.",
			"hint":            "affirmative imperative with both clitics attached",
		})
		return raw
	}

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: pronounDraft("gerund")}, // wrong echo, redrawn
		llm.MockResponse{Content: pronounDraft("imperative")},
		llm.MockResponse{Content: verdictJSON(t, true, true, "")},
	)
	bank := &fakeBank{}

	out, err := newTestMachine(mock, bank).Run(context.Background(), testVerb(), target)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !out.Accepted {
		t.Fatalf("expected acceptance, got %q", out.LastReason)
	}
	q := bank.inserted[0]
	if q.HostForm != HostImperative || q.CliticPattern != "DO_IO" {
		t.Errorf("stored host/pattern = %s/%s", q.HostForm, q.CliticPattern)
	}
	if q.IOClitic != "me" || q.DOClitic != "lo" {
		t.Errorf("stored clitics = %q/%q", q.IOClitic, q.DOClitic)
	}
}

func TestDuplicateInsertReusesIdentity(t *testing.T) {
	bank := &fakeBank{}
	respond := func(m *llm.MockProvider) {
		m.AddResponse(llm.MockResponse{Content: draftJSON(t, goodSentence)})
		m.AddResponse(llm.MockResponse{Content: verdictJSON(t, true, true, "")})
	}

	mock := llm.NewMockProvider()
	respond(mock)
	respond(mock)
	machine := newTestMachine(mock, bank)

	first, err := machine.Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := machine.Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.QuestionID != second.QuestionID {
		t.Errorf("duplicate sentence produced ids %d and %d", first.QuestionID, second.QuestionID)
	}
	if len(bank.inserted) != 1 {
		t.Errorf("bank rows = %d, want 1", len(bank.inserted))
	}
}

func TestNilBankSkipsPersistence(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: draftJSON(t, goodSentence)},
		llm.MockResponse{Content: verdictJSON(t, true, true, "")},
	)

	out, err := newTestMachine(mock, nil).Run(context.Background(), testVerb(), plainTarget())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !out.Accepted || out.QuestionID != 0 {
		t.Errorf("outcome = %+v, want accepted without a stored id", out)
	}
}
