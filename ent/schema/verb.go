package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Verb is a dictionary entry: one Spanish verb with its display fields
// and the non-finite forms needed as clitic hosts.
type Verb struct {
	ent.Schema
}

func (Verb) Fields() []ent.Field {
	return []ent.Field{
		field.String("infinitive").
			Unique().
			Comment("Dictionary form, e.g. \"comer\""),
		field.String("meaning").
			Comment("Native-language gloss shown to the learner"),
		field.Int("conjugation_class").
			Range(1, 3).
			Comment("1 = -ar, 2 = -er, 3 = -ir"),
		field.Bool("irregular").
			Default(false),
		field.Bool("reflexive").
			Default(false).
			Comment("Whether the verb has a pronominal (se) form"),
		field.Bool("transitive").
			Default(true).
			Comment("Whether the verb takes a direct object in common use"),
		field.String("gerund").
			Default("").
			Comment("Gerund form, host for post-attached clitics"),
		field.String("participle").
			Default(""),
	}
}

func (Verb) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conjugations", Conjugation.Type),
		edge.To("questions", BankQuestion.Type),
	}
}

func (Verb) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conjugation_class"),
		index.Fields("irregular"),
	}
}
