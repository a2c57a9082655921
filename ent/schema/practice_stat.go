package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeStat tracks one user's history with one bank question: how
// often they have practiced it and how they rated it. It feeds the
// selector's per-user score terms.
type PracticeStat struct {
	ent.Schema
}

func (PracticeStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.Int("question_id"),
		field.Int("practice_count").
			Default(0),
		field.Int("rating").
			Range(-1, 1).
			Default(0).
			Comment("-1 bad, 0 unrated, 1 good"),
		field.Bool("favorite").
			Default(false),
		field.Time("last_practiced").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PracticeStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").
			Unique(),
		index.Fields("question_id"),
	}
}
