// Code generated by ent, DO NOT EDIT.

package verb

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/conjugo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldID, id))
}

// Infinitive applies equality check predicate on the "infinitive" field. It's identical to InfinitiveEQ.
func Infinitive(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldInfinitive, v))
}

// Meaning applies equality check predicate on the "meaning" field. It's identical to MeaningEQ.
func Meaning(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldMeaning, v))
}

// ConjugationClass applies equality check predicate on the "conjugation_class" field. It's identical to ConjugationClassEQ.
func ConjugationClass(v int) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldConjugationClass, v))
}

// Irregular applies equality check predicate on the "irregular" field. It's identical to IrregularEQ.
func Irregular(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldIrregular, v))
}

// Reflexive applies equality check predicate on the "reflexive" field. It's identical to ReflexiveEQ.
func Reflexive(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldReflexive, v))
}

// Transitive applies equality check predicate on the "transitive" field. It's identical to TransitiveEQ.
func Transitive(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldTransitive, v))
}

// Gerund applies equality check predicate on the "gerund" field. It's identical to GerundEQ.
func Gerund(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldGerund, v))
}

// Participle applies equality check predicate on the "participle" field. It's identical to ParticipleEQ.
func Participle(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldParticiple, v))
}

// InfinitiveEQ applies the EQ predicate on the "infinitive" field.
func InfinitiveEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldInfinitive, v))
}

// InfinitiveNEQ applies the NEQ predicate on the "infinitive" field.
func InfinitiveNEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldInfinitive, v))
}

// InfinitiveIn applies the In predicate on the "infinitive" field.
func InfinitiveIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldInfinitive, vs...))
}

// InfinitiveNotIn applies the NotIn predicate on the "infinitive" field.
func InfinitiveNotIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldInfinitive, vs...))
}

// InfinitiveGT applies the GT predicate on the "infinitive" field.
func InfinitiveGT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldInfinitive, v))
}

// InfinitiveGTE applies the GTE predicate on the "infinitive" field.
func InfinitiveGTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldInfinitive, v))
}

// InfinitiveLT applies the LT predicate on the "infinitive" field.
func InfinitiveLT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldInfinitive, v))
}

// InfinitiveLTE applies the LTE predicate on the "infinitive" field.
func InfinitiveLTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldInfinitive, v))
}

// InfinitiveContains applies the Contains predicate on the "infinitive" field.
func InfinitiveContains(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContains(FieldInfinitive, v))
}

// InfinitiveHasPrefix applies the HasPrefix predicate on the "infinitive" field.
func InfinitiveHasPrefix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasPrefix(FieldInfinitive, v))
}

// InfinitiveHasSuffix applies the HasSuffix predicate on the "infinitive" field.
func InfinitiveHasSuffix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasSuffix(FieldInfinitive, v))
}

// InfinitiveEqualFold applies the EqualFold predicate on the "infinitive" field.
func InfinitiveEqualFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEqualFold(FieldInfinitive, v))
}

// InfinitiveContainsFold applies the ContainsFold predicate on the "infinitive" field.
func InfinitiveContainsFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContainsFold(FieldInfinitive, v))
}

// MeaningEQ applies the EQ predicate on the "meaning" field.
func MeaningEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldMeaning, v))
}

// MeaningNEQ applies the NEQ predicate on the "meaning" field.
func MeaningNEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldMeaning, v))
}

// MeaningIn applies the In predicate on the "meaning" field.
func MeaningIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldMeaning, vs...))
}

// MeaningNotIn applies the NotIn predicate on the "meaning" field.
func MeaningNotIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldMeaning, vs...))
}

// MeaningGT applies the GT predicate on the "meaning" field.
func MeaningGT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldMeaning, v))
}

// MeaningGTE applies the GTE predicate on the "meaning" field.
func MeaningGTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldMeaning, v))
}

// MeaningLT applies the LT predicate on the "meaning" field.
func MeaningLT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldMeaning, v))
}

// MeaningLTE applies the LTE predicate on the "meaning" field.
func MeaningLTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldMeaning, v))
}

// MeaningContains applies the Contains predicate on the "meaning" field.
func MeaningContains(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContains(FieldMeaning, v))
}

// MeaningHasPrefix applies the HasPrefix predicate on the "meaning" field.
func MeaningHasPrefix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasPrefix(FieldMeaning, v))
}

// MeaningHasSuffix applies the HasSuffix predicate on the "meaning" field.
func MeaningHasSuffix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasSuffix(FieldMeaning, v))
}

// MeaningEqualFold applies the EqualFold predicate on the "meaning" field.
func MeaningEqualFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEqualFold(FieldMeaning, v))
}

// MeaningContainsFold applies the ContainsFold predicate on the "meaning" field.
func MeaningContainsFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContainsFold(FieldMeaning, v))
}

// ConjugationClassEQ applies the EQ predicate on the "conjugation_class" field.
func ConjugationClassEQ(v int) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldConjugationClass, v))
}

// ConjugationClassNEQ applies the NEQ predicate on the "conjugation_class" field.
func ConjugationClassNEQ(v int) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldConjugationClass, v))
}

// ConjugationClassIn applies the In predicate on the "conjugation_class" field.
func ConjugationClassIn(vs ...int) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldConjugationClass, vs...))
}

// ConjugationClassNotIn applies the NotIn predicate on the "conjugation_class" field.
func ConjugationClassNotIn(vs ...int) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldConjugationClass, vs...))
}

// ConjugationClassGT applies the GT predicate on the "conjugation_class" field.
func ConjugationClassGT(v int) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldConjugationClass, v))
}

// ConjugationClassGTE applies the GTE predicate on the "conjugation_class" field.
func ConjugationClassGTE(v int) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldConjugationClass, v))
}

// ConjugationClassLT applies the LT predicate on the "conjugation_class" field.
func ConjugationClassLT(v int) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldConjugationClass, v))
}

// ConjugationClassLTE applies the LTE predicate on the "conjugation_class" field.
func ConjugationClassLTE(v int) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldConjugationClass, v))
}

// IrregularEQ applies the EQ predicate on the "irregular" field.
func IrregularEQ(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldIrregular, v))
}

// IrregularNEQ applies the NEQ predicate on the "irregular" field.
func IrregularNEQ(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldIrregular, v))
}

// ReflexiveEQ applies the EQ predicate on the "reflexive" field.
func ReflexiveEQ(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldReflexive, v))
}

// ReflexiveNEQ applies the NEQ predicate on the "reflexive" field.
func ReflexiveNEQ(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldReflexive, v))
}

// TransitiveEQ applies the EQ predicate on the "transitive" field.
func TransitiveEQ(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldTransitive, v))
}

// TransitiveNEQ applies the NEQ predicate on the "transitive" field.
func TransitiveNEQ(v bool) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldTransitive, v))
}

// GerundEQ applies the EQ predicate on the "gerund" field.
func GerundEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldGerund, v))
}

// GerundNEQ applies the NEQ predicate on the "gerund" field.
func GerundNEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldGerund, v))
}

// GerundIn applies the In predicate on the "gerund" field.
func GerundIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldGerund, vs...))
}

// GerundNotIn applies the NotIn predicate on the "gerund" field.
func GerundNotIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldGerund, vs...))
}

// GerundGT applies the GT predicate on the "gerund" field.
func GerundGT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldGerund, v))
}

// GerundGTE applies the GTE predicate on the "gerund" field.
func GerundGTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldGerund, v))
}

// GerundLT applies the LT predicate on the "gerund" field.
func GerundLT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldGerund, v))
}

// GerundLTE applies the LTE predicate on the "gerund" field.
func GerundLTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldGerund, v))
}

// GerundContains applies the Contains predicate on the "gerund" field.
func GerundContains(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContains(FieldGerund, v))
}

// GerundHasPrefix applies the HasPrefix predicate on the "gerund" field.
func GerundHasPrefix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasPrefix(FieldGerund, v))
}

// GerundHasSuffix applies the HasSuffix predicate on the "gerund" field.
func GerundHasSuffix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasSuffix(FieldGerund, v))
}

// GerundEqualFold applies the EqualFold predicate on the "gerund" field.
func GerundEqualFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEqualFold(FieldGerund, v))
}

// GerundContainsFold applies the ContainsFold predicate on the "gerund" field.
func GerundContainsFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContainsFold(FieldGerund, v))
}

// ParticipleEQ applies the EQ predicate on the "participle" field.
func ParticipleEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldParticiple, v))
}

// ParticipleNEQ applies the NEQ predicate on the "participle" field.
func ParticipleNEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldParticiple, v))
}

// ParticipleIn applies the In predicate on the "participle" field.
func ParticipleIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldParticiple, vs...))
}

// ParticipleNotIn applies the NotIn predicate on the "participle" field.
func ParticipleNotIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldParticiple, vs...))
}

// ParticipleGT applies the GT predicate on the "participle" field.
func ParticipleGT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldParticiple, v))
}

// ParticipleGTE applies the GTE predicate on the "participle" field.
func ParticipleGTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldParticiple, v))
}

// ParticipleLT applies the LT predicate on the "participle" field.
func ParticipleLT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldParticiple, v))
}

// ParticipleLTE applies the LTE predicate on the "participle" field.
func ParticipleLTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldParticiple, v))
}

// ParticipleContains applies the Contains predicate on the "participle" field.
func ParticipleContains(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContains(FieldParticiple, v))
}

// ParticipleHasPrefix applies the HasPrefix predicate on the "participle" field.
func ParticipleHasPrefix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasPrefix(FieldParticiple, v))
}

// ParticipleHasSuffix applies the HasSuffix predicate on the "participle" field.
func ParticipleHasSuffix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasSuffix(FieldParticiple, v))
}

// ParticipleEqualFold applies the EqualFold predicate on the "participle" field.
func ParticipleEqualFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEqualFold(FieldParticiple, v))
}

// ParticipleContainsFold applies the ContainsFold predicate on the "participle" field.
func ParticipleContainsFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContainsFold(FieldParticiple, v))
}

// HasConjugations applies the HasEdge predicate on the "conjugations" edge.
func HasConjugations() predicate.Verb {
	return predicate.Verb(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConjugationsTable, ConjugationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConjugationsWith applies the HasEdge predicate on the "conjugations" edge with a given conditions (other predicates).
func HasConjugationsWith(preds ...predicate.Conjugation) predicate.Verb {
	return predicate.Verb(func(s *sql.Selector) {
		step := newConjugationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Verb {
	return predicate.Verb(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.BankQuestion) predicate.Verb {
	return predicate.Verb(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Verb) predicate.Verb {
	return predicate.Verb(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Verb) predicate.Verb {
	return predicate.Verb(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Verb) predicate.Verb {
	return predicate.Verb(sql.NotPredicates(p))
}
