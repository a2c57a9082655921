package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BankQuestion is an accepted fill-in-the-blank question in the shared
// bank. The grammatical target fields are immutable after creation;
// only the confidence score is ever updated.
type BankQuestion struct {
	ent.Schema
}

func (BankQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("verb_id").
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("Bank kind: \"sentence\" (plain conjugation) or \"pronoun\" (clitic)"),
		field.String("mood").
			Immutable(),
		field.String("tense").
			Immutable(),
		field.String("person").
			Immutable(),
		field.String("host_form").
			Default("").
			Immutable().
			Comment("Pronoun bank only: finite, imperative, infinitive, gerund, prnl"),
		field.String("clitic_pattern").
			Default("").
			Immutable().
			Comment("Pronoun bank only: DO, IO or DO_IO; empty for prnl"),
		field.String("io_clitic").
			Default("").
			Immutable(),
		field.String("do_clitic").
			Default("").
			Immutable(),
		field.String("sentence").
			Immutable().
			Comment("Rendered sentence containing exactly one __?__ blank"),
		field.String("answer").
			Immutable().
			Comment("Accepted answer; interchangeable forms \" | \"-separated"),
		field.String("translation").
			Immutable(),
		field.String("hint").
			Default("").
			Immutable(),
		field.Int("confidence").
			Default(50).
			Comment("Quality score, clamped to [0,100]"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (BankQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("verb", Verb.Type).
			Ref("questions").
			Field("verb_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (BankQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("verb_id", "sentence").
			Unique(),
		index.Fields("kind", "tense"),
		index.Fields("created_at"),
	}
}
