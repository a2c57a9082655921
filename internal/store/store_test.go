package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedVerb(t *testing.T, s *Store, infinitive string, class int, irregular bool) int {
	t.Helper()
	id, err := s.VerbRepo().Create(context.Background(), &Verb{
		Infinitive:       infinitive,
		Meaning:          "to " + infinitive,
		ConjugationClass: class,
		Irregular:        irregular,
		Gerund:           infinitive + "ndo",
		Participle:       infinitive + "do",
	})
	if err != nil {
		t.Fatalf("seed verb %s: %v", infinitive, err)
	}
	return id
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestVerbCreateReusesInfinitive(t *testing.T) {
	s := openTestStore(t)

	first := seedVerb(t, s, "hablar", 1, false)
	second := seedVerb(t, s, "hablar", 1, false)
	if first != second {
		t.Errorf("duplicate infinitive created new verb: %d != %d", first, second)
	}
}

func TestVerbRandomFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedVerb(t, s, "hablar", 1, false)
	seedVerb(t, s, "comer", 2, false)
	irregularID := seedVerb(t, s, "ser", 2, true)

	vs, err := s.VerbRepo().Random(ctx, 10, VerbFilter{Classes: []int{2}, OnlyRegular: true})
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if len(vs) != 1 {
		t.Fatalf("got %d verbs, want 1", len(vs))
	}
	if vs[0].Infinitive != "comer" {
		t.Errorf("infinitive = %q, want comer", vs[0].Infinitive)
	}
	if vs[0].ID == irregularID {
		t.Error("irregular verb passed OnlyRegular filter")
	}
}

func TestConjugationUpsertReplacesForm(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	vid := seedVerb(t, s, "hablar", 1, false)
	repo := s.VerbRepo()

	cell := &Conjugation{VerbID: vid, Mood: "indicativo", Tense: "presente", Person: "yo", Form: "hablo"}
	if err := repo.AddConjugation(ctx, cell); err != nil {
		t.Fatalf("add conjugation: %v", err)
	}
	cell.Form = "hablo | hablo"
	if err := repo.AddConjugation(ctx, cell); err != nil {
		t.Fatalf("re-add conjugation: %v", err)
	}

	cs, err := repo.Conjugations(ctx, vid)
	if err != nil {
		t.Fatalf("conjugations: %v", err)
	}
	if len(cs) != 1 {
		t.Fatalf("got %d cells, want 1", len(cs))
	}
	if cs[0].Form != "hablo | hablo" {
		t.Errorf("form = %q, want replacement", cs[0].Form)
	}
}

func TestQuestionInsertDedup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	vid := seedVerb(t, s, "hablar", 1, false)
	repo := s.QuestionRepo()

	q := &Question{
		VerbID:   vid,
		Kind:     "sentence",
		Mood:     "indicativo",
		Tense:    "presente",
		Person:   "yo",
		Sentence: "Todos los días __?__ con mi madre.",
		Answer:   "hablo",
	}
	first, err := repo.Insert(ctx, q)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := repo.Insert(ctx, q)
	if err != nil {
		t.Fatalf("re-insert: %v", err)
	}
	if first != second {
		t.Errorf("duplicate sentence created new row: %d != %d", first, second)
	}

	n, err := repo.CountByKind(ctx, "sentence", QuestionFilter{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestQuestionDefaultConfidence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	vid := seedVerb(t, s, "comer", 2, false)
	repo := s.QuestionRepo()

	id, err := repo.Insert(ctx, &Question{
		VerbID:   vid,
		Kind:     "sentence",
		Mood:     "indicativo",
		Tense:    "presente",
		Person:   "yo",
		Sentence: "Al mediodía __?__ en casa.",
		Answer:   "como",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Confidence != 50 {
		t.Errorf("confidence = %d, want 50", got.Confidence)
	}
	if got.Infinitive != "comer" {
		t.Errorf("verb annotation = %q, want comer", got.Infinitive)
	}
}

func TestAdjustConfidenceClamps(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	vid := seedVerb(t, s, "vivir", 3, false)
	repo := s.QuestionRepo()

	id, err := repo.Insert(ctx, &Question{
		VerbID:   vid,
		Kind:     "sentence",
		Mood:     "indicativo",
		Tense:    "presente",
		Person:   "yo",
		Sentence: "Desde niño __?__ en Madrid.",
		Answer:   "vivo",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Push past the ceiling, then past the floor.
	for i := 0; i < 30; i++ {
		if _, err := repo.AdjustConfidence(ctx, id, 2); err != nil {
			t.Fatalf("adjust up: %v", err)
		}
	}
	got, _ := repo.Get(ctx, id)
	if got.Confidence != 100 {
		t.Errorf("confidence after raises = %d, want 100", got.Confidence)
	}

	for i := 0; i < 40; i++ {
		if _, err := repo.AdjustConfidence(ctx, id, -3); err != nil {
			t.Fatalf("adjust down: %v", err)
		}
	}
	got, _ = repo.Get(ctx, id)
	if got.Confidence != 0 {
		t.Errorf("confidence after penalties = %d, want 0", got.Confidence)
	}
}

func TestAdjustConfidenceMissingRow(t *testing.T) {
	s := openTestStore(t)

	ok, err := s.QuestionRepo().AdjustConfidence(context.Background(), 9999, 2)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if ok {
		t.Error("expected false for a question that does not exist")
	}
}

func TestRandomByKindFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.QuestionRepo()

	regular := seedVerb(t, s, "hablar", 1, false)
	irregular := seedVerb(t, s, "ser", 2, true)

	mustInsert := func(vid int, kind, tense, sentence, answer string) {
		t.Helper()
		_, err := repo.Insert(ctx, &Question{
			VerbID: vid, Kind: kind, Mood: "indicativo", Tense: tense,
			Person: "yo", Sentence: sentence, Answer: answer,
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	mustInsert(regular, "sentence", "presente", "Cada día __?__ español.", "hablo")
	mustInsert(regular, "sentence", "pretérito", "Ayer __?__ con Juan.", "hablé")
	mustInsert(irregular, "sentence", "presente", "Yo __?__ profesor.", "soy")
	mustInsert(regular, "pronoun", "presente", "Mi hermana me pide el libro y yo __?__ presto.", "se lo presto")

	got, err := repo.RandomByKind(ctx, "sentence", QuestionFilter{
		Tenses:      []string{"presente"},
		OnlyRegular: true,
	}, 10)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}
	if got[0].Answer != "hablo" {
		t.Errorf("answer = %q, want hablo", got[0].Answer)
	}
	if got[0].Infinitive != "hablar" {
		t.Errorf("verb annotation = %q, want hablar", got[0].Infinitive)
	}
}

func TestBankStatsGroupsByKind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.QuestionRepo()
	vid := seedVerb(t, s, "hablar", 1, false)

	for i, sentence := range []string{
		"Cada día __?__ español.",
		"Ayer __?__ con Juan.",
	} {
		if _, err := repo.Insert(ctx, &Question{
			VerbID: vid, Kind: "sentence", Mood: "indicativo",
			Tense: "presente", Person: "yo",
			Sentence: sentence, Answer: "hablo", Confidence: 40 + 20*i,
		}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d stat rows, want 1", len(stats))
	}
	if stats[0].Kind != "sentence" || stats[0].Count != 2 {
		t.Errorf("stats = %+v, want kind=sentence count=2", stats[0])
	}
	if stats[0].AvgConfidence != 50 {
		t.Errorf("avg = %v, want 50", stats[0].AvgConfidence)
	}
	if stats[0].MinConfidence != 40 || stats[0].MaxConfidence != 60 {
		t.Errorf("min/max = %d/%d, want 40/60", stats[0].MinConfidence, stats[0].MaxConfidence)
	}
}

func TestPracticeStatUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	vid := seedVerb(t, s, "hablar", 1, false)

	qid, err := s.QuestionRepo().Insert(ctx, &Question{
		VerbID: vid, Kind: "sentence", Mood: "indicativo",
		Tense: "presente", Person: "yo",
		Sentence: "Cada día __?__ español.", Answer: "hablo",
	})
	if err != nil {
		t.Fatalf("insert question: %v", err)
	}

	repo := s.StatRepo()
	if err := repo.RecordPractice(ctx, "u1", qid); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.RecordPractice(ctx, "u1", qid); err != nil {
		t.Fatalf("record again: %v", err)
	}
	if err := repo.SetRating(ctx, "u1", qid, 1); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if err := repo.SetFavorite(ctx, "u1", qid, true); err != nil {
		t.Fatalf("favorite: %v", err)
	}

	stats, err := repo.For(ctx, "u1", []int{qid})
	if err != nil {
		t.Fatalf("for: %v", err)
	}
	st, ok := stats[qid]
	if !ok {
		t.Fatal("expected stat row for question")
	}
	if st.PracticeCount != 2 {
		t.Errorf("practice count = %d, want 2", st.PracticeCount)
	}
	if st.Rating != 1 {
		t.Errorf("rating = %d, want 1", st.Rating)
	}
	if !st.Favorite {
		t.Error("expected favorite = true")
	}

	// Another user sees no history.
	other, err := repo.For(ctx, "u2", []int{qid})
	if err != nil {
		t.Fatalf("for u2: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("u2 stats = %d rows, want 0", len(other))
	}
}

func TestSetRatingRejectsOutOfRange(t *testing.T) {
	s := openTestStore(t)
	if err := s.StatRepo().SetRating(context.Background(), "u1", 1, 2); err == nil {
		t.Error("expected error for rating outside [-1,1]")
	}
}

func TestDeleteOlderThanSweepsOrphans(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	vid := seedVerb(t, s, "hablar", 1, false)
	qrepo := s.QuestionRepo()

	qid, err := qrepo.Insert(ctx, &Question{
		VerbID: vid, Kind: "sentence", Mood: "indicativo",
		Tense: "presente", Person: "yo",
		Sentence: "Cada día __?__ español.", Answer: "hablo",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.StatRepo().RecordPractice(ctx, "u1", qid); err != nil {
		t.Fatalf("record: %v", err)
	}

	n, err := qrepo.DeleteOlderThan(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	stats, err := s.StatRepo().For(ctx, "u1", []int{qid})
	if err != nil {
		t.Fatalf("for: %v", err)
	}
	if len(stats) != 0 {
		t.Error("expected orphaned practice stat to be swept")
	}

	// Nothing younger than a past cutoff.
	n, err = qrepo.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("delete (noop): %v", err)
	}
	if n != 0 {
		t.Errorf("deleted = %d, want 0", n)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "generate", InputTokens: 900, OutputTokens: 400, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "validate", InputTokens: 700, OutputTokens: 200, LatencyMs: 800, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "validate", InputTokens: 650, OutputTokens: 0, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for _, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	// Newest first.
	if got[0].Provider != "openai" {
		t.Errorf("first event provider = %q, want openai", got[0].Provider)
	}

	validates, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "validate"})
	if err != nil {
		t.Fatalf("query validate: %v", err)
	}
	if len(validates) != 2 {
		t.Errorf("got %d validate events, want 2", len(validates))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose rows, want 2", len(byPurpose))
	}
	// Sorted: generate before validate.
	if byPurpose[0].Purpose != "generate" || byPurpose[0].Calls != 1 {
		t.Errorf("generate usage = %+v", byPurpose[0])
	}
	if byPurpose[1].Purpose != "validate" || byPurpose[1].InputTokens != 1350 {
		t.Errorf("validate usage = %+v", byPurpose[1])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d model rows, want 2", len(byModel))
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)
	ev, err := s.EventRepo().GetLLMEvent(context.Background(), 123)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ev != nil {
		t.Error("expected nil for missing event")
	}
}
