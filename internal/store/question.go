package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/conjugo/ent"
	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/practicestat"
	"github.com/abhisek/conjugo/ent/predicate"
	"github.com/abhisek/conjugo/ent/verb"
)

// questionRepo implements QuestionRepo using the ent client. Aggregate
// reporting goes through raw SQL on the shared *sql.DB.
type questionRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *questionRepo) Insert(ctx context.Context, q *Question) (int, error) {
	// The bank never holds two questions with the same sentence for the
	// same verb; an accepted duplicate reuses the existing identity.
	existing, err := r.client.BankQuestion.Query().
		Where(bankquestion.VerbID(q.VerbID), bankquestion.Sentence(q.Sentence)).
		First(ctx)
	if err == nil {
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return 0, fmt.Errorf("dedup lookup: %w", err)
	}

	confidence := q.Confidence
	if confidence == 0 {
		confidence = 50
	}

	created, err := r.client.BankQuestion.Create().
		SetVerbID(q.VerbID).
		SetKind(q.Kind).
		SetMood(q.Mood).
		SetTense(q.Tense).
		SetPerson(q.Person).
		SetHostForm(q.HostForm).
		SetCliticPattern(q.CliticPattern).
		SetIoClitic(q.IOClitic).
		SetDoClitic(q.DOClitic).
		SetSentence(q.Sentence).
		SetAnswer(q.Answer).
		SetTranslation(q.Translation).
		SetHint(q.Hint).
		SetConfidence(confidence).
		Save(ctx)
	if err != nil {
		// Lost a race on the (verb, sentence) unique index: another
		// writer inserted the same question first. Reuse its identity.
		if ent.IsConstraintError(err) {
			raced, qerr := r.client.BankQuestion.Query().
				Where(bankquestion.VerbID(q.VerbID), bankquestion.Sentence(q.Sentence)).
				First(ctx)
			if qerr == nil {
				return raced.ID, nil
			}
		}
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return created.ID, nil
}

func (r *questionRepo) Get(ctx context.Context, id int) (*Question, error) {
	q, err := r.client.BankQuestion.Query().
		Where(bankquestion.ID(id)).
		WithVerb().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return entQuestionToQuestion(q), nil
}

func (r *questionRepo) RandomByKind(ctx context.Context, kind string, f QuestionFilter, limit int) ([]Question, error) {
	q := r.client.BankQuestion.Query().
		Where(bankquestion.Kind(kind))

	if len(f.Moods) > 0 {
		q = q.Where(bankquestion.MoodIn(f.Moods...))
	}
	if len(f.Tenses) > 0 {
		q = q.Where(bankquestion.TenseIn(f.Tenses...))
	}
	if len(f.VerbIDs) > 0 {
		q = q.Where(bankquestion.VerbIDIn(f.VerbIDs...))
	}
	if len(f.HostForms) > 0 {
		q = q.Where(bankquestion.HostFormIn(f.HostForms...))
	}

	var verbPreds []predicate.Verb
	if len(f.Classes) > 0 {
		verbPreds = append(verbPreds, verb.ConjugationClassIn(f.Classes...))
	}
	if f.OnlyRegular {
		verbPreds = append(verbPreds, verb.Irregular(false))
	}
	if len(verbPreds) > 0 {
		q = q.Where(bankquestion.HasVerbWith(verbPreds...))
	}

	rows, err := q.WithVerb().Order(orderByRandom).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample bank questions: %w", err)
	}

	out := make([]Question, len(rows))
	for i, row := range rows {
		out[i] = *entQuestionToQuestion(row)
	}
	return out, nil
}

func (r *questionRepo) AdjustConfidence(ctx context.Context, id, delta int) (bool, error) {
	n, err := r.client.BankQuestion.Update().
		Where(bankquestion.ID(id)).
		AddConfidence(delta).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("adjust confidence of %d: %w", id, err)
	}
	if n == 0 {
		return false, nil
	}

	// Clamp to [0,100] with guarded follow-up writes so concurrent
	// deltas stay commutative.
	if _, err := r.client.BankQuestion.Update().
		Where(bankquestion.ID(id), bankquestion.ConfidenceGT(100)).
		SetConfidence(100).
		Save(ctx); err != nil {
		return false, fmt.Errorf("clamp confidence of %d: %w", id, err)
	}
	if _, err := r.client.BankQuestion.Update().
		Where(bankquestion.ID(id), bankquestion.ConfidenceLT(0)).
		SetConfidence(0).
		Save(ctx); err != nil {
		return false, fmt.Errorf("clamp confidence of %d: %w", id, err)
	}
	return true, nil
}

func (r *questionRepo) CountByKind(ctx context.Context, kind string, f QuestionFilter) (int, error) {
	q := r.client.BankQuestion.Query().
		Where(bankquestion.Kind(kind))
	if len(f.Moods) > 0 {
		q = q.Where(bankquestion.MoodIn(f.Moods...))
	}
	if len(f.Tenses) > 0 {
		q = q.Where(bankquestion.TenseIn(f.Tenses...))
	}
	if len(f.VerbIDs) > 0 {
		q = q.Where(bankquestion.VerbIDIn(f.VerbIDs...))
	}
	if len(f.HostForms) > 0 {
		q = q.Where(bankquestion.HostFormIn(f.HostForms...))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s bank: %w", kind, err)
	}
	return n, nil
}

func (r *questionRepo) Stats(ctx context.Context) ([]BankStats, error) {
	query := fmt.Sprintf(
		`SELECT kind, COUNT(*), AVG(confidence), MIN(confidence), MAX(confidence)
		 FROM %s GROUP BY kind ORDER BY kind`, bankquestion.Table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("bank stats: %w", err)
	}
	defer rows.Close()

	var out []BankStats
	for rows.Next() {
		var s BankStats
		if err := rows.Scan(&s.Kind, &s.Count, &s.AvgConfidence, &s.MinConfidence, &s.MaxConfidence); err != nil {
			return nil, fmt.Errorf("scan bank stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *questionRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.client.BankQuestion.Delete().
		Where(bankquestion.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete aged questions: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	// Practice stats reference questions by plain id; sweep the orphans.
	orphanSQL := fmt.Sprintf(
		`DELETE FROM %s WHERE question_id NOT IN (SELECT id FROM %s)`,
		practicestat.Table, bankquestion.Table)
	if _, err := r.db.ExecContext(ctx, orphanSQL); err != nil {
		return n, fmt.Errorf("sweep orphaned stats: %w", err)
	}
	return n, nil
}

func entQuestionToQuestion(q *ent.BankQuestion) *Question {
	out := &Question{
		ID:            q.ID,
		VerbID:        q.VerbID,
		Kind:          q.Kind,
		Mood:          q.Mood,
		Tense:         q.Tense,
		Person:        q.Person,
		HostForm:      q.HostForm,
		CliticPattern: q.CliticPattern,
		IOClitic:      q.IoClitic,
		DOClitic:      q.DoClitic,
		Sentence:      q.Sentence,
		Answer:        q.Answer,
		Translation:   q.Translation,
		Hint:          q.Hint,
		Confidence:    q.Confidence,
		CreatedAt:     q.CreatedAt,
	}
	if v := q.Edges.Verb; v != nil {
		out.Infinitive = v.Infinitive
		out.Meaning = v.Meaning
		out.ConjugationClass = v.ConjugationClass
		out.Irregular = v.Irregular
	}
	return out
}
