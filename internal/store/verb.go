package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/conjugo/ent"
	"github.com/abhisek/conjugo/ent/conjugation"
	"github.com/abhisek/conjugo/ent/verb"
)

// verbRepo implements VerbRepo using the ent client.
type verbRepo struct {
	client *ent.Client
}

func (r *verbRepo) Get(ctx context.Context, id int) (*Verb, error) {
	v, err := r.client.Verb.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get verb %d: %w", id, err)
	}
	return entVerbToVerb(v), nil
}

func (r *verbRepo) Random(ctx context.Context, n int, f VerbFilter) ([]Verb, error) {
	q := r.client.Verb.Query()

	if len(f.Classes) > 0 {
		q = q.Where(verb.ConjugationClassIn(f.Classes...))
	}
	if f.OnlyRegular {
		q = q.Where(verb.Irregular(false))
	}
	if f.Reflexive != nil {
		q = q.Where(verb.Reflexive(*f.Reflexive))
	}
	if len(f.IDs) > 0 {
		q = q.Where(verb.IDIn(f.IDs...))
	}

	vs, err := q.Order(orderByRandom).Limit(n).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample verbs: %w", err)
	}

	out := make([]Verb, len(vs))
	for i, v := range vs {
		out[i] = *entVerbToVerb(v)
	}
	return out, nil
}

func (r *verbRepo) Conjugations(ctx context.Context, verbID int) ([]Conjugation, error) {
	cs, err := r.client.Conjugation.Query().
		Where(conjugation.VerbID(verbID)).
		Order(ent.Asc(conjugation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("conjugations for verb %d: %w", verbID, err)
	}

	out := make([]Conjugation, len(cs))
	for i, c := range cs {
		out[i] = Conjugation{
			ID:     c.ID,
			VerbID: c.VerbID,
			Mood:   c.Mood,
			Tense:  c.Tense,
			Person: c.Person,
			Form:   c.Form,
		}
	}
	return out, nil
}

func (r *verbRepo) Create(ctx context.Context, v *Verb) (int, error) {
	existing, err := r.client.Verb.Query().
		Where(verb.Infinitive(v.Infinitive)).
		First(ctx)
	if err == nil {
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return 0, fmt.Errorf("look up verb %q: %w", v.Infinitive, err)
	}

	created, err := r.client.Verb.Create().
		SetInfinitive(v.Infinitive).
		SetMeaning(v.Meaning).
		SetConjugationClass(v.ConjugationClass).
		SetIrregular(v.Irregular).
		SetReflexive(v.Reflexive).
		SetTransitive(v.Transitive).
		SetGerund(v.Gerund).
		SetParticiple(v.Participle).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create verb %q: %w", v.Infinitive, err)
	}
	return created.ID, nil
}

func (r *verbRepo) AddConjugation(ctx context.Context, c *Conjugation) error {
	err := r.client.Conjugation.Create().
		SetVerbID(c.VerbID).
		SetMood(c.Mood).
		SetTense(c.Tense).
		SetPerson(c.Person).
		SetForm(c.Form).
		OnConflictColumns(
			conjugation.FieldVerbID,
			conjugation.FieldMood,
			conjugation.FieldTense,
			conjugation.FieldPerson,
		).
		Update(func(u *ent.ConjugationUpsert) {
			u.SetForm(c.Form)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert conjugation: %w", err)
	}
	return nil
}

// orderByRandom shuffles a query at the database level, the SQLite
// equivalent of the original ORDER BY RANDOM() sampling.
func orderByRandom(s *entsql.Selector) {
	s.OrderExpr(entsql.Expr("RANDOM()"))
}

func entVerbToVerb(v *ent.Verb) *Verb {
	return &Verb{
		ID:               v.ID,
		Infinitive:       v.Infinitive,
		Meaning:          v.Meaning,
		ConjugationClass: v.ConjugationClass,
		Irregular:        v.Irregular,
		Reflexive:        v.Reflexive,
		Transitive:       v.Transitive,
		Gerund:           v.Gerund,
		Participle:       v.Participle,
	}
}
