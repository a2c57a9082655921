// Code generated by ent, DO NOT EDIT.

package bankquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/conjugo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldID, id))
}

// VerbID applies equality check predicate on the "verb_id" field. It's identical to VerbIDEQ.
func VerbID(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldVerbID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldKind, v))
}

// Mood applies equality check predicate on the "mood" field. It's identical to MoodEQ.
func Mood(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldMood, v))
}

// Tense applies equality check predicate on the "tense" field. It's identical to TenseEQ.
func Tense(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldTense, v))
}

// Person applies equality check predicate on the "person" field. It's identical to PersonEQ.
func Person(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldPerson, v))
}

// HostForm applies equality check predicate on the "host_form" field. It's identical to HostFormEQ.
func HostForm(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldHostForm, v))
}

// CliticPattern applies equality check predicate on the "clitic_pattern" field. It's identical to CliticPatternEQ.
func CliticPattern(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldCliticPattern, v))
}

// IoClitic applies equality check predicate on the "io_clitic" field. It's identical to IoCliticEQ.
func IoClitic(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldIoClitic, v))
}

// DoClitic applies equality check predicate on the "do_clitic" field. It's identical to DoCliticEQ.
func DoClitic(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldDoClitic, v))
}

// Sentence applies equality check predicate on the "sentence" field. It's identical to SentenceEQ.
func Sentence(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldSentence, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldAnswer, v))
}

// Translation applies equality check predicate on the "translation" field. It's identical to TranslationEQ.
func Translation(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldTranslation, v))
}

// Hint applies equality check predicate on the "hint" field. It's identical to HintEQ.
func Hint(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldHint, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// VerbIDEQ applies the EQ predicate on the "verb_id" field.
func VerbIDEQ(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldVerbID, v))
}

// VerbIDNEQ applies the NEQ predicate on the "verb_id" field.
func VerbIDNEQ(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldVerbID, v))
}

// VerbIDIn applies the In predicate on the "verb_id" field.
func VerbIDIn(vs ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldVerbID, vs...))
}

// VerbIDNotIn applies the NotIn predicate on the "verb_id" field.
func VerbIDNotIn(vs ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldVerbID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldKind, v))
}

// MoodEQ applies the EQ predicate on the "mood" field.
func MoodEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldMood, v))
}

// MoodNEQ applies the NEQ predicate on the "mood" field.
func MoodNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldMood, v))
}

// MoodIn applies the In predicate on the "mood" field.
func MoodIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldMood, vs...))
}

// MoodNotIn applies the NotIn predicate on the "mood" field.
func MoodNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldMood, vs...))
}

// MoodGT applies the GT predicate on the "mood" field.
func MoodGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldMood, v))
}

// MoodGTE applies the GTE predicate on the "mood" field.
func MoodGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldMood, v))
}

// MoodLT applies the LT predicate on the "mood" field.
func MoodLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldMood, v))
}

// MoodLTE applies the LTE predicate on the "mood" field.
func MoodLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldMood, v))
}

// MoodContains applies the Contains predicate on the "mood" field.
func MoodContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldMood, v))
}

// MoodHasPrefix applies the HasPrefix predicate on the "mood" field.
func MoodHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldMood, v))
}

// MoodHasSuffix applies the HasSuffix predicate on the "mood" field.
func MoodHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldMood, v))
}

// MoodEqualFold applies the EqualFold predicate on the "mood" field.
func MoodEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldMood, v))
}

// MoodContainsFold applies the ContainsFold predicate on the "mood" field.
func MoodContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldMood, v))
}

// TenseEQ applies the EQ predicate on the "tense" field.
func TenseEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldTense, v))
}

// TenseNEQ applies the NEQ predicate on the "tense" field.
func TenseNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldTense, v))
}

// TenseIn applies the In predicate on the "tense" field.
func TenseIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldTense, vs...))
}

// TenseNotIn applies the NotIn predicate on the "tense" field.
func TenseNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldTense, vs...))
}

// TenseGT applies the GT predicate on the "tense" field.
func TenseGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldTense, v))
}

// TenseGTE applies the GTE predicate on the "tense" field.
func TenseGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldTense, v))
}

// TenseLT applies the LT predicate on the "tense" field.
func TenseLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldTense, v))
}

// TenseLTE applies the LTE predicate on the "tense" field.
func TenseLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldTense, v))
}

// TenseContains applies the Contains predicate on the "tense" field.
func TenseContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldTense, v))
}

// TenseHasPrefix applies the HasPrefix predicate on the "tense" field.
func TenseHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldTense, v))
}

// TenseHasSuffix applies the HasSuffix predicate on the "tense" field.
func TenseHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldTense, v))
}

// TenseEqualFold applies the EqualFold predicate on the "tense" field.
func TenseEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldTense, v))
}

// TenseContainsFold applies the ContainsFold predicate on the "tense" field.
func TenseContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldTense, v))
}

// PersonEQ applies the EQ predicate on the "person" field.
func PersonEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldPerson, v))
}

// PersonNEQ applies the NEQ predicate on the "person" field.
func PersonNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldPerson, v))
}

// PersonIn applies the In predicate on the "person" field.
func PersonIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldPerson, vs...))
}

// PersonNotIn applies the NotIn predicate on the "person" field.
func PersonNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldPerson, vs...))
}

// PersonGT applies the GT predicate on the "person" field.
func PersonGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldPerson, v))
}

// PersonGTE applies the GTE predicate on the "person" field.
func PersonGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldPerson, v))
}

// PersonLT applies the LT predicate on the "person" field.
func PersonLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldPerson, v))
}

// PersonLTE applies the LTE predicate on the "person" field.
func PersonLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldPerson, v))
}

// PersonContains applies the Contains predicate on the "person" field.
func PersonContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldPerson, v))
}

// PersonHasPrefix applies the HasPrefix predicate on the "person" field.
func PersonHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldPerson, v))
}

// PersonHasSuffix applies the HasSuffix predicate on the "person" field.
func PersonHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldPerson, v))
}

// PersonEqualFold applies the EqualFold predicate on the "person" field.
func PersonEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldPerson, v))
}

// PersonContainsFold applies the ContainsFold predicate on the "person" field.
func PersonContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldPerson, v))
}

// HostFormEQ applies the EQ predicate on the "host_form" field.
func HostFormEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldHostForm, v))
}

// HostFormNEQ applies the NEQ predicate on the "host_form" field.
func HostFormNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldHostForm, v))
}

// HostFormIn applies the In predicate on the "host_form" field.
func HostFormIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldHostForm, vs...))
}

// HostFormNotIn applies the NotIn predicate on the "host_form" field.
func HostFormNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldHostForm, vs...))
}

// HostFormGT applies the GT predicate on the "host_form" field.
func HostFormGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldHostForm, v))
}

// HostFormGTE applies the GTE predicate on the "host_form" field.
func HostFormGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldHostForm, v))
}

// HostFormLT applies the LT predicate on the "host_form" field.
func HostFormLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldHostForm, v))
}

// HostFormLTE applies the LTE predicate on the "host_form" field.
func HostFormLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldHostForm, v))
}

// HostFormContains applies the Contains predicate on the "host_form" field.
func HostFormContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldHostForm, v))
}

// HostFormHasPrefix applies the HasPrefix predicate on the "host_form" field.
func HostFormHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldHostForm, v))
}

// HostFormHasSuffix applies the HasSuffix predicate on the "host_form" field.
func HostFormHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldHostForm, v))
}

// HostFormEqualFold applies the EqualFold predicate on the "host_form" field.
func HostFormEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldHostForm, v))
}

// HostFormContainsFold applies the ContainsFold predicate on the "host_form" field.
func HostFormContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldHostForm, v))
}

// CliticPatternEQ applies the EQ predicate on the "clitic_pattern" field.
func CliticPatternEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldCliticPattern, v))
}

// CliticPatternNEQ applies the NEQ predicate on the "clitic_pattern" field.
func CliticPatternNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldCliticPattern, v))
}

// CliticPatternIn applies the In predicate on the "clitic_pattern" field.
func CliticPatternIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldCliticPattern, vs...))
}

// CliticPatternNotIn applies the NotIn predicate on the "clitic_pattern" field.
func CliticPatternNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldCliticPattern, vs...))
}

// CliticPatternGT applies the GT predicate on the "clitic_pattern" field.
func CliticPatternGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldCliticPattern, v))
}

// CliticPatternGTE applies the GTE predicate on the "clitic_pattern" field.
func CliticPatternGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldCliticPattern, v))
}

// CliticPatternLT applies the LT predicate on the "clitic_pattern" field.
func CliticPatternLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldCliticPattern, v))
}

// CliticPatternLTE applies the LTE predicate on the "clitic_pattern" field.
func CliticPatternLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldCliticPattern, v))
}

// CliticPatternContains applies the Contains predicate on the "clitic_pattern" field.
func CliticPatternContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldCliticPattern, v))
}

// CliticPatternHasPrefix applies the HasPrefix predicate on the "clitic_pattern" field.
func CliticPatternHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldCliticPattern, v))
}

// CliticPatternHasSuffix applies the HasSuffix predicate on the "clitic_pattern" field.
func CliticPatternHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldCliticPattern, v))
}

// CliticPatternEqualFold applies the EqualFold predicate on the "clitic_pattern" field.
func CliticPatternEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldCliticPattern, v))
}

// CliticPatternContainsFold applies the ContainsFold predicate on the "clitic_pattern" field.
func CliticPatternContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldCliticPattern, v))
}

// IoCliticEQ applies the EQ predicate on the "io_clitic" field.
func IoCliticEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldIoClitic, v))
}

// IoCliticNEQ applies the NEQ predicate on the "io_clitic" field.
func IoCliticNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldIoClitic, v))
}

// IoCliticIn applies the In predicate on the "io_clitic" field.
func IoCliticIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldIoClitic, vs...))
}

// IoCliticNotIn applies the NotIn predicate on the "io_clitic" field.
func IoCliticNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldIoClitic, vs...))
}

// IoCliticGT applies the GT predicate on the "io_clitic" field.
func IoCliticGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldIoClitic, v))
}

// IoCliticGTE applies the GTE predicate on the "io_clitic" field.
func IoCliticGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldIoClitic, v))
}

// IoCliticLT applies the LT predicate on the "io_clitic" field.
func IoCliticLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldIoClitic, v))
}

// IoCliticLTE applies the LTE predicate on the "io_clitic" field.
func IoCliticLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldIoClitic, v))
}

// IoCliticContains applies the Contains predicate on the "io_clitic" field.
func IoCliticContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldIoClitic, v))
}

// IoCliticHasPrefix applies the HasPrefix predicate on the "io_clitic" field.
func IoCliticHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldIoClitic, v))
}

// IoCliticHasSuffix applies the HasSuffix predicate on the "io_clitic" field.
func IoCliticHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldIoClitic, v))
}

// IoCliticEqualFold applies the EqualFold predicate on the "io_clitic" field.
func IoCliticEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldIoClitic, v))
}

// IoCliticContainsFold applies the ContainsFold predicate on the "io_clitic" field.
func IoCliticContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldIoClitic, v))
}

// DoCliticEQ applies the EQ predicate on the "do_clitic" field.
func DoCliticEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldDoClitic, v))
}

// DoCliticNEQ applies the NEQ predicate on the "do_clitic" field.
func DoCliticNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldDoClitic, v))
}

// DoCliticIn applies the In predicate on the "do_clitic" field.
func DoCliticIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldDoClitic, vs...))
}

// DoCliticNotIn applies the NotIn predicate on the "do_clitic" field.
func DoCliticNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldDoClitic, vs...))
}

// DoCliticGT applies the GT predicate on the "do_clitic" field.
func DoCliticGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldDoClitic, v))
}

// DoCliticGTE applies the GTE predicate on the "do_clitic" field.
func DoCliticGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldDoClitic, v))
}

// DoCliticLT applies the LT predicate on the "do_clitic" field.
func DoCliticLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldDoClitic, v))
}

// DoCliticLTE applies the LTE predicate on the "do_clitic" field.
func DoCliticLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldDoClitic, v))
}

// DoCliticContains applies the Contains predicate on the "do_clitic" field.
func DoCliticContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldDoClitic, v))
}

// DoCliticHasPrefix applies the HasPrefix predicate on the "do_clitic" field.
func DoCliticHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldDoClitic, v))
}

// DoCliticHasSuffix applies the HasSuffix predicate on the "do_clitic" field.
func DoCliticHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldDoClitic, v))
}

// DoCliticEqualFold applies the EqualFold predicate on the "do_clitic" field.
func DoCliticEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldDoClitic, v))
}

// DoCliticContainsFold applies the ContainsFold predicate on the "do_clitic" field.
func DoCliticContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldDoClitic, v))
}

// SentenceEQ applies the EQ predicate on the "sentence" field.
func SentenceEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldSentence, v))
}

// SentenceNEQ applies the NEQ predicate on the "sentence" field.
func SentenceNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldSentence, v))
}

// SentenceIn applies the In predicate on the "sentence" field.
func SentenceIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldSentence, vs...))
}

// SentenceNotIn applies the NotIn predicate on the "sentence" field.
func SentenceNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldSentence, vs...))
}

// SentenceGT applies the GT predicate on the "sentence" field.
func SentenceGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldSentence, v))
}

// SentenceGTE applies the GTE predicate on the "sentence" field.
func SentenceGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldSentence, v))
}

// SentenceLT applies the LT predicate on the "sentence" field.
func SentenceLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldSentence, v))
}

// SentenceLTE applies the LTE predicate on the "sentence" field.
func SentenceLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldSentence, v))
}

// SentenceContains applies the Contains predicate on the "sentence" field.
func SentenceContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldSentence, v))
}

// SentenceHasPrefix applies the HasPrefix predicate on the "sentence" field.
func SentenceHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldSentence, v))
}

// SentenceHasSuffix applies the HasSuffix predicate on the "sentence" field.
func SentenceHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldSentence, v))
}

// SentenceEqualFold applies the EqualFold predicate on the "sentence" field.
func SentenceEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldSentence, v))
}

// SentenceContainsFold applies the ContainsFold predicate on the "sentence" field.
func SentenceContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldSentence, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldAnswer, v))
}

// TranslationEQ applies the EQ predicate on the "translation" field.
func TranslationEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldTranslation, v))
}

// TranslationNEQ applies the NEQ predicate on the "translation" field.
func TranslationNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldTranslation, v))
}

// TranslationIn applies the In predicate on the "translation" field.
func TranslationIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldTranslation, vs...))
}

// TranslationNotIn applies the NotIn predicate on the "translation" field.
func TranslationNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldTranslation, vs...))
}

// TranslationGT applies the GT predicate on the "translation" field.
func TranslationGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldTranslation, v))
}

// TranslationGTE applies the GTE predicate on the "translation" field.
func TranslationGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldTranslation, v))
}

// TranslationLT applies the LT predicate on the "translation" field.
func TranslationLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldTranslation, v))
}

// TranslationLTE applies the LTE predicate on the "translation" field.
func TranslationLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldTranslation, v))
}

// TranslationContains applies the Contains predicate on the "translation" field.
func TranslationContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldTranslation, v))
}

// TranslationHasPrefix applies the HasPrefix predicate on the "translation" field.
func TranslationHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldTranslation, v))
}

// TranslationHasSuffix applies the HasSuffix predicate on the "translation" field.
func TranslationHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldTranslation, v))
}

// TranslationEqualFold applies the EqualFold predicate on the "translation" field.
func TranslationEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldTranslation, v))
}

// TranslationContainsFold applies the ContainsFold predicate on the "translation" field.
func TranslationContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldTranslation, v))
}

// HintEQ applies the EQ predicate on the "hint" field.
func HintEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldHint, v))
}

// HintNEQ applies the NEQ predicate on the "hint" field.
func HintNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldHint, v))
}

// HintIn applies the In predicate on the "hint" field.
func HintIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldHint, vs...))
}

// HintNotIn applies the NotIn predicate on the "hint" field.
func HintNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldHint, vs...))
}

// HintGT applies the GT predicate on the "hint" field.
func HintGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldHint, v))
}

// HintGTE applies the GTE predicate on the "hint" field.
func HintGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldHint, v))
}

// HintLT applies the LT predicate on the "hint" field.
func HintLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldHint, v))
}

// HintLTE applies the LTE predicate on the "hint" field.
func HintLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldHint, v))
}

// HintContains applies the Contains predicate on the "hint" field.
func HintContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldHint, v))
}

// HintHasPrefix applies the HasPrefix predicate on the "hint" field.
func HintHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldHint, v))
}

// HintHasSuffix applies the HasSuffix predicate on the "hint" field.
func HintHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldHint, v))
}

// HintEqualFold applies the EqualFold predicate on the "hint" field.
func HintEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldHint, v))
}

// HintContainsFold applies the ContainsFold predicate on the "hint" field.
func HintContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldHint, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVerb applies the HasEdge predicate on the "verb" edge.
func HasVerb() predicate.BankQuestion {
	return predicate.BankQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VerbTable, VerbColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerbWith applies the HasEdge predicate on the "verb" edge with a given conditions (other predicates).
func HasVerbWith(preds ...predicate.Verb) predicate.BankQuestion {
	return predicate.BankQuestion(func(s *sql.Selector) {
		step := newVerbStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BankQuestion) predicate.BankQuestion {
	return predicate.BankQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BankQuestion) predicate.BankQuestion {
	return predicate.BankQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BankQuestion) predicate.BankQuestion {
	return predicate.BankQuestion(sql.NotPredicates(p))
}
