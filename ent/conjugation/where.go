// Code generated by ent, DO NOT EDIT.

package conjugation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/conjugo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLTE(FieldID, id))
}

// VerbID applies equality check predicate on the "verb_id" field. It's identical to VerbIDEQ.
func VerbID(v int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldVerbID, v))
}

// Mood applies equality check predicate on the "mood" field. It's identical to MoodEQ.
func Mood(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldMood, v))
}

// Tense applies equality check predicate on the "tense" field. It's identical to TenseEQ.
func Tense(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldTense, v))
}

// Person applies equality check predicate on the "person" field. It's identical to PersonEQ.
func Person(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldPerson, v))
}

// Form applies equality check predicate on the "form" field. It's identical to FormEQ.
func Form(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldForm, v))
}

// VerbIDEQ applies the EQ predicate on the "verb_id" field.
func VerbIDEQ(v int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldVerbID, v))
}

// VerbIDNEQ applies the NEQ predicate on the "verb_id" field.
func VerbIDNEQ(v int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNEQ(FieldVerbID, v))
}

// VerbIDIn applies the In predicate on the "verb_id" field.
func VerbIDIn(vs ...int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldIn(FieldVerbID, vs...))
}

// VerbIDNotIn applies the NotIn predicate on the "verb_id" field.
func VerbIDNotIn(vs ...int) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNotIn(FieldVerbID, vs...))
}

// MoodEQ applies the EQ predicate on the "mood" field.
func MoodEQ(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldMood, v))
}

// MoodNEQ applies the NEQ predicate on the "mood" field.
func MoodNEQ(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNEQ(FieldMood, v))
}

// MoodIn applies the In predicate on the "mood" field.
func MoodIn(vs ...string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldIn(FieldMood, vs...))
}

// MoodNotIn applies the NotIn predicate on the "mood" field.
func MoodNotIn(vs ...string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNotIn(FieldMood, vs...))
}

// MoodGT applies the GT predicate on the "mood" field.
func MoodGT(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGT(FieldMood, v))
}

// MoodGTE applies the GTE predicate on the "mood" field.
func MoodGTE(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGTE(FieldMood, v))
}

// MoodLT applies the LT predicate on the "mood" field.
func MoodLT(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLT(FieldMood, v))
}

// MoodLTE applies the LTE predicate on the "mood" field.
func MoodLTE(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLTE(FieldMood, v))
}

// MoodContains applies the Contains predicate on the "mood" field.
func MoodContains(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldContains(FieldMood, v))
}

// MoodHasPrefix applies the HasPrefix predicate on the "mood" field.
func MoodHasPrefix(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldHasPrefix(FieldMood, v))
}

// MoodHasSuffix applies the HasSuffix predicate on the "mood" field.
func MoodHasSuffix(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldHasSuffix(FieldMood, v))
}

// MoodEqualFold applies the EqualFold predicate on the "mood" field.
func MoodEqualFold(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEqualFold(FieldMood, v))
}

// MoodContainsFold applies the ContainsFold predicate on the "mood" field.
func MoodContainsFold(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldContainsFold(FieldMood, v))
}

// TenseEQ applies the EQ predicate on the "tense" field.
func TenseEQ(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldTense, v))
}

// TenseNEQ applies the NEQ predicate on the "tense" field.
func TenseNEQ(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNEQ(FieldTense, v))
}

// TenseIn applies the In predicate on the "tense" field.
func TenseIn(vs ...string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldIn(FieldTense, vs...))
}

// TenseNotIn applies the NotIn predicate on the "tense" field.
func TenseNotIn(vs ...string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNotIn(FieldTense, vs...))
}

// TenseGT applies the GT predicate on the "tense" field.
func TenseGT(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGT(FieldTense, v))
}

// TenseGTE applies the GTE predicate on the "tense" field.
func TenseGTE(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGTE(FieldTense, v))
}

// TenseLT applies the LT predicate on the "tense" field.
func TenseLT(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLT(FieldTense, v))
}

// TenseLTE applies the LTE predicate on the "tense" field.
func TenseLTE(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLTE(FieldTense, v))
}

// TenseContains applies the Contains predicate on the "tense" field.
func TenseContains(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldContains(FieldTense, v))
}

// TenseHasPrefix applies the HasPrefix predicate on the "tense" field.
func TenseHasPrefix(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldHasPrefix(FieldTense, v))
}

// TenseHasSuffix applies the HasSuffix predicate on the "tense" field.
func TenseHasSuffix(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldHasSuffix(FieldTense, v))
}

// TenseEqualFold applies the EqualFold predicate on the "tense" field.
func TenseEqualFold(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEqualFold(FieldTense, v))
}

// TenseContainsFold applies the ContainsFold predicate on the "tense" field.
func TenseContainsFold(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldContainsFold(FieldTense, v))
}

// PersonEQ applies the EQ predicate on the "person" field.
func PersonEQ(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldPerson, v))
}

// PersonNEQ applies the NEQ predicate on the "person" field.
func PersonNEQ(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNEQ(FieldPerson, v))
}

// PersonIn applies the In predicate on the "person" field.
func PersonIn(vs ...string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldIn(FieldPerson, vs...))
}

// PersonNotIn applies the NotIn predicate on the "person" field.
func PersonNotIn(vs ...string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNotIn(FieldPerson, vs...))
}

// PersonGT applies the GT predicate on the "person" field.
func PersonGT(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGT(FieldPerson, v))
}

// PersonGTE applies the GTE predicate on the "person" field.
func PersonGTE(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGTE(FieldPerson, v))
}

// PersonLT applies the LT predicate on the "person" field.
func PersonLT(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLT(FieldPerson, v))
}

// PersonLTE applies the LTE predicate on the "person" field.
func PersonLTE(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLTE(FieldPerson, v))
}

// PersonContains applies the Contains predicate on the "person" field.
func PersonContains(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldContains(FieldPerson, v))
}

// PersonHasPrefix applies the HasPrefix predicate on the "person" field.
func PersonHasPrefix(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldHasPrefix(FieldPerson, v))
}

// PersonHasSuffix applies the HasSuffix predicate on the "person" field.
func PersonHasSuffix(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldHasSuffix(FieldPerson, v))
}

// PersonEqualFold applies the EqualFold predicate on the "person" field.
func PersonEqualFold(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEqualFold(FieldPerson, v))
}

// PersonContainsFold applies the ContainsFold predicate on the "person" field.
func PersonContainsFold(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldContainsFold(FieldPerson, v))
}

// FormEQ applies the EQ predicate on the "form" field.
func FormEQ(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEQ(FieldForm, v))
}

// FormNEQ applies the NEQ predicate on the "form" field.
func FormNEQ(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNEQ(FieldForm, v))
}

// FormIn applies the In predicate on the "form" field.
func FormIn(vs ...string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldIn(FieldForm, vs...))
}

// FormNotIn applies the NotIn predicate on the "form" field.
func FormNotIn(vs ...string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldNotIn(FieldForm, vs...))
}

// FormGT applies the GT predicate on the "form" field.
func FormGT(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGT(FieldForm, v))
}

// FormGTE applies the GTE predicate on the "form" field.
func FormGTE(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldGTE(FieldForm, v))
}

// FormLT applies the LT predicate on the "form" field.
func FormLT(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLT(FieldForm, v))
}

// FormLTE applies the LTE predicate on the "form" field.
func FormLTE(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldLTE(FieldForm, v))
}

// FormContains applies the Contains predicate on the "form" field.
func FormContains(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldContains(FieldForm, v))
}

// FormHasPrefix applies the HasPrefix predicate on the "form" field.
func FormHasPrefix(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldHasPrefix(FieldForm, v))
}

// FormHasSuffix applies the HasSuffix predicate on the "form" field.
func FormHasSuffix(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldHasSuffix(FieldForm, v))
}

// FormEqualFold applies the EqualFold predicate on the "form" field.
func FormEqualFold(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldEqualFold(FieldForm, v))
}

// FormContainsFold applies the ContainsFold predicate on the "form" field.
func FormContainsFold(v string) predicate.Conjugation {
	return predicate.Conjugation(sql.FieldContainsFold(FieldForm, v))
}

// HasVerb applies the HasEdge predicate on the "verb" edge.
func HasVerb() predicate.Conjugation {
	return predicate.Conjugation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VerbTable, VerbColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerbWith applies the HasEdge predicate on the "verb" edge with a given conditions (other predicates).
func HasVerbWith(preds ...predicate.Verb) predicate.Conjugation {
	return predicate.Conjugation(func(s *sql.Selector) {
		step := newVerbStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conjugation) predicate.Conjugation {
	return predicate.Conjugation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conjugation) predicate.Conjugation {
	return predicate.Conjugation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conjugation) predicate.Conjugation {
	return predicate.Conjugation(sql.NotPredicates(p))
}
