package selector

import (
	"context"
	"testing"

	"github.com/abhisek/conjugo/internal/store"
)

type fakeQuestions struct {
	rows      []store.Question
	lastLimit int
}

func (f *fakeQuestions) RandomByKind(_ context.Context, kind string, _ store.QuestionFilter, limit int) ([]store.Question, error) {
	f.lastLimit = limit
	out := make([]store.Question, 0, len(f.rows))
	for _, q := range f.rows {
		if q.Kind == kind {
			out = append(out, q)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeStats struct {
	rows map[int]store.PracticeStat
}

func (f *fakeStats) For(_ context.Context, _ string, ids []int) (map[int]store.PracticeStat, error) {
	out := map[int]store.PracticeStat{}
	for _, id := range ids {
		if st, ok := f.rows[id]; ok {
			out[id] = st
		}
	}
	return out, nil
}

func question(id, confidence int, person string) store.Question {
	return store.Question{ID: id, Kind: "sentence", Person: person, Confidence: confidence}
}

func newTestSelector(qs *fakeQuestions, st *fakeStats) *Selector {
	s := New(qs, st)
	s.jitter = func() float64 { return 0 }
	return s
}

func TestSelectRanksByScore(t *testing.T) {
	qs := &fakeQuestions{rows: []store.Question{
		question(1, 50, "yo"),
		question(2, 90, "tú"),
		question(3, 70, "yo"),
	}}
	st := &fakeStats{rows: map[int]store.PracticeStat{
		// id 2: heavily practiced and disliked, should sink.
		2: {QuestionID: 2, PracticeCount: 10, Rating: -1},
		// id 1: favorited history, rated good, should rise.
		1: {QuestionID: 1, PracticeCount: 0, Rating: 1},
	}}

	got, err := newTestSelector(qs, st).Select(context.Background(), "u1", "sentence", Criteria{IncludeVos: true, IncludeVosotros: true}, 2)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	// Scores: id1 = 50+10 = 60, id3 = 70, id2 = 90-50-10 = 30.
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Errorf("ranking = [%d %d], want [3 1]", got[0].ID, got[1].ID)
	}
}

func TestSelectOversamples(t *testing.T) {
	qs := &fakeQuestions{}
	_, err := newTestSelector(qs, &fakeStats{}).Select(context.Background(), "u1", "sentence", Criteria{}, 4)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if qs.lastLimit != 12 {
		t.Errorf("draw limit = %d, want 12 (3x oversample)", qs.lastLimit)
	}
}

func TestSelectFiltersRegionalPersons(t *testing.T) {
	qs := &fakeQuestions{rows: []store.Question{
		question(1, 80, "vos"),
		question(2, 80, "vosotros"),
		question(3, 80, "vosotros/vosotras"),
		question(4, 40, "tú"),
		question(5, 40, "yo"),
	}}

	got, err := newTestSelector(qs, &fakeStats{}).Select(context.Background(), "u1", "sentence", Criteria{}, 5)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	for _, q := range got {
		if q.Person == "vos" || q.Person == "vosotros" || q.Person == "vosotros/vosotras" {
			t.Errorf("disallowed person %q returned", q.Person)
		}
	}
	if len(got) != 2 {
		t.Errorf("got %d questions, want 2", len(got))
	}

	withVos, err := newTestSelector(qs, &fakeStats{}).Select(context.Background(), "u1", "sentence", Criteria{IncludeVos: true}, 5)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(withVos) != 3 {
		t.Errorf("got %d questions with vos allowed, want 3", len(withVos))
	}
}

func TestSelectDeduplicatesByIdentity(t *testing.T) {
	q := question(7, 60, "yo")
	qs := &fakeQuestions{rows: []store.Question{q, q, q}}

	got, err := newTestSelector(qs, &fakeStats{}).Select(context.Background(), "u1", "sentence", Criteria{}, 3)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d questions, want 1 after dedup", len(got))
	}
}

func TestSelectZeroCount(t *testing.T) {
	got, err := newTestSelector(&fakeQuestions{}, &fakeStats{}).Select(context.Background(), "u1", "sentence", Criteria{}, 0)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
