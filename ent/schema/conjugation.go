package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conjugation is one cell of a verb's conjugation table: the surface
// form for a (mood, tense, person) slot. Forms with several accepted
// spellings keep all of them in one row, separated by " | ".
type Conjugation struct {
	ent.Schema
}

func (Conjugation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("verb_id"),
		field.String("mood"),
		field.String("tense"),
		field.String("person"),
		field.String("form").
			Comment("Conjugated surface form(s), \" | \"-separated when interchangeable"),
	}
}

func (Conjugation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("verb", Verb.Type).
			Ref("conjugations").
			Field("verb_id").
			Unique().
			Required(),
	}
}

func (Conjugation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("verb_id"),
		index.Fields("verb_id", "mood", "tense", "person").
			Unique(),
	}
}
