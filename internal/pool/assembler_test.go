package pool

import (
	"context"
	"testing"

	"github.com/abhisek/conjugo/internal/qgen"
	"github.com/abhisek/conjugo/internal/selector"
	"github.com/abhisek/conjugo/internal/store"
)

type fakeSelector struct {
	byKind map[string][]store.Question
}

func (f *fakeSelector) Select(_ context.Context, _ string, kind string, _ selector.Criteria, count int) ([]store.Question, error) {
	qs := f.byKind[kind]
	if len(qs) > count {
		qs = qs[:count]
	}
	return qs, nil
}

type fakeVerbs struct {
	verbs []store.Verb
	cells []store.Conjugation
}

func (f *fakeVerbs) Random(_ context.Context, n int, _ store.VerbFilter) ([]store.Verb, error) {
	if len(f.verbs) > n {
		return f.verbs[:n], nil
	}
	return f.verbs, nil
}

func (f *fakeVerbs) Conjugations(_ context.Context, _ int) ([]store.Conjugation, error) {
	return f.cells, nil
}

func bankQuestions(kind string, n int) []store.Question {
	out := make([]store.Question, n)
	for i := range out {
		out[i] = store.Question{ID: i + 1, Kind: kind, Person: "yo", Confidence: 50}
	}
	return out
}

func testCells() []store.Conjugation {
	return []store.Conjugation{
		{ID: 1, VerbID: 1, Mood: "indicativo", Tense: "presente", Person: "yo", Form: "hablo"},
		{ID: 2, VerbID: 1, Mood: "indicativo", Tense: "presente", Person: "vosotros", Form: "habláis"},
		{ID: 3, VerbID: 1, Mood: "subjuntivo", Tense: "presente", Person: "tú", Form: "hables"},
	}
}

func newTestAssembler(sel SelectorSource, verbs VerbSource) *Assembler {
	a := New(sel, verbs)
	a.shuffle = func(int, func(i, j int)) {}
	a.intn = func(int) int { return 0 }
	return a
}

func TestBuildFullyServedFromBank(t *testing.T) {
	sel := &fakeSelector{byKind: map[string][]store.Question{
		"sentence": bankQuestions("sentence", 30),
	}}

	plan, err := newTestAssembler(sel, &fakeVerbs{}).Build(context.Background(), "u1", BatchSpec{
		Kinds: []string{"sentence"},
		Count: 10,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !plan.HasEnoughInBank {
		t.Error("expected HasEnoughInBank")
	}
	if got := len(plan.Main) + len(plan.Backup); got != 10 {
		t.Errorf("main+backup = %d, want 10", got)
	}
	if len(plan.Main) != 8 || len(plan.Backup) != 2 {
		t.Errorf("split = %d/%d, want 8/2", len(plan.Main), len(plan.Backup))
	}
	if len(plan.Deferred) != 0 {
		t.Errorf("deferred = %d, want 0", len(plan.Deferred))
	}
	if plan.ID == "" {
		t.Error("expected a plan id")
	}
}

func TestBuildEmptyBankDefersEverything(t *testing.T) {
	sel := &fakeSelector{byKind: map[string][]store.Question{}}
	verbs := &fakeVerbs{
		verbs: []store.Verb{{ID: 1, Infinitive: "hablar", ConjugationClass: 1}},
		cells: testCells(),
	}

	plan, err := newTestAssembler(sel, verbs).Build(context.Background(), "u1", BatchSpec{
		Kinds: []string{"sentence"},
		Count: 5,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if plan.HasEnoughInBank {
		t.Error("expected shortfall flag")
	}
	if len(plan.Main) != 0 {
		t.Errorf("main = %d, want 0", len(plan.Main))
	}
	if len(plan.Deferred) != 5 {
		t.Fatalf("deferred = %d, want 5", len(plan.Deferred))
	}
	for _, job := range plan.Deferred {
		if job.Target.Kind != qgen.KindSentence {
			t.Errorf("job kind = %q", job.Target.Kind)
		}
		if job.Target.Answer == "" {
			t.Error("job target needs the expected answer from the conjugation table")
		}
	}
}

func TestBuildPartialBankTopsUpWithJobs(t *testing.T) {
	sel := &fakeSelector{byKind: map[string][]store.Question{
		"sentence": bankQuestions("sentence", 3),
	}}
	verbs := &fakeVerbs{
		verbs: []store.Verb{{ID: 1, Infinitive: "hablar"}},
		cells: testCells(),
	}

	plan, err := newTestAssembler(sel, verbs).Build(context.Background(), "u1", BatchSpec{
		Kinds: []string{"sentence"},
		Count: 5,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(plan.Main) != 3 {
		t.Errorf("main = %d, want 3: partial hits all ship as main", len(plan.Main))
	}
	if len(plan.Backup) != 0 {
		t.Errorf("backup = %d, want 0 on shortfall", len(plan.Backup))
	}
	if len(plan.Deferred) != 2 {
		t.Errorf("deferred = %d, want 2", len(plan.Deferred))
	}
}

func TestBuildMixedKindsSplitsHalfAndHalf(t *testing.T) {
	sel := &fakeSelector{byKind: map[string][]store.Question{
		"sentence": bankQuestions("sentence", 20),
		"pronoun":  bankQuestions("pronoun", 20),
	}}

	plan, err := newTestAssembler(sel, &fakeVerbs{}).Build(context.Background(), "u1", BatchSpec{
		Kinds: []string{"sentence", "pronoun"},
		Count: 9,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := len(plan.Main) + len(plan.Backup); got != 9 {
		t.Fatalf("main+backup = %d, want 9", got)
	}

	// Remainder goes to the first kind: 5 sentence, 4 pronoun.
	counts := map[string]int{}
	for _, q := range plan.Main {
		counts[q.Kind]++
	}
	for _, q := range plan.Backup {
		counts[q.Kind]++
	}
	if counts["sentence"] != 5 || counts["pronoun"] != 4 {
		t.Errorf("kind split = %v, want sentence:5 pronoun:4", counts)
	}
}

func TestPlanJobsRespectsPersonPolicy(t *testing.T) {
	verbs := &fakeVerbs{
		verbs: []store.Verb{{ID: 1, Infinitive: "hablar"}},
		cells: []store.Conjugation{
			{VerbID: 1, Mood: "indicativo", Tense: "presente", Person: "vosotros", Form: "habláis"},
		},
	}

	plan, err := newTestAssembler(&fakeSelector{}, verbs).Build(context.Background(), "u1", BatchSpec{
		Kinds: []string{"sentence"},
		Count: 2,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// The only matching cell is vosotros and the default policy
	// excludes it, so no job can be described.
	if len(plan.Deferred) != 0 {
		t.Errorf("deferred = %d, want 0", len(plan.Deferred))
	}
	if plan.HasEnoughInBank {
		t.Error("expected shortfall flag")
	}
}

func TestPronounJobsCarryHostForm(t *testing.T) {
	verbs := &fakeVerbs{
		verbs: []store.Verb{{ID: 1, Infinitive: "dar", Gerund: "dando"}},
		cells: testCells(),
	}

	plan, err := newTestAssembler(&fakeSelector{}, verbs).Build(context.Background(), "u1", BatchSpec{
		Kinds:    []string{"pronoun"},
		Criteria: selector.Criteria{QuestionFilter: store.QuestionFilter{HostForms: []string{qgen.HostGerund}}},
		Count:    2,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(plan.Deferred) != 2 {
		t.Fatalf("deferred = %d, want 2", len(plan.Deferred))
	}
	for _, job := range plan.Deferred {
		if job.Target.HostForm != qgen.HostGerund {
			t.Errorf("host form = %q, want gerund", job.Target.HostForm)
		}
		if job.Target.BaseForm != "dando" {
			t.Errorf("base form = %q, want dando", job.Target.BaseForm)
		}
	}
}
