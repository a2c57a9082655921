// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/llmrequestevent"
	"github.com/abhisek/conjugo/ent/practicestat"
	"github.com/abhisek/conjugo/ent/schema"
	"github.com/abhisek/conjugo/ent/verb"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bankquestionFields := schema.BankQuestion{}.Fields()
	_ = bankquestionFields
	// bankquestionDescHostForm is the schema descriptor for host_form field.
	bankquestionDescHostForm := bankquestionFields[5].Descriptor()
	// bankquestion.DefaultHostForm holds the default value on creation for the host_form field.
	bankquestion.DefaultHostForm = bankquestionDescHostForm.Default.(string)
	// bankquestionDescCliticPattern is the schema descriptor for clitic_pattern field.
	bankquestionDescCliticPattern := bankquestionFields[6].Descriptor()
	// bankquestion.DefaultCliticPattern holds the default value on creation for the clitic_pattern field.
	bankquestion.DefaultCliticPattern = bankquestionDescCliticPattern.Default.(string)
	// bankquestionDescIoClitic is the schema descriptor for io_clitic field.
	bankquestionDescIoClitic := bankquestionFields[7].Descriptor()
	// bankquestion.DefaultIoClitic holds the default value on creation for the io_clitic field.
	bankquestion.DefaultIoClitic = bankquestionDescIoClitic.Default.(string)
	// bankquestionDescDoClitic is the schema descriptor for do_clitic field.
	bankquestionDescDoClitic := bankquestionFields[8].Descriptor()
	// bankquestion.DefaultDoClitic holds the default value on creation for the do_clitic field.
	bankquestion.DefaultDoClitic = bankquestionDescDoClitic.Default.(string)
	// bankquestionDescHint is the schema descriptor for hint field.
	bankquestionDescHint := bankquestionFields[12].Descriptor()
	// bankquestion.DefaultHint holds the default value on creation for the hint field.
	bankquestion.DefaultHint = bankquestionDescHint.Default.(string)
	// bankquestionDescConfidence is the schema descriptor for confidence field.
	bankquestionDescConfidence := bankquestionFields[13].Descriptor()
	// bankquestion.DefaultConfidence holds the default value on creation for the confidence field.
	bankquestion.DefaultConfidence = bankquestionDescConfidence.Default.(int)
	// bankquestionDescCreatedAt is the schema descriptor for created_at field.
	bankquestionDescCreatedAt := bankquestionFields[14].Descriptor()
	// bankquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	bankquestion.DefaultCreatedAt = bankquestionDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	practicestatFields := schema.PracticeStat{}.Fields()
	_ = practicestatFields
	// practicestatDescPracticeCount is the schema descriptor for practice_count field.
	practicestatDescPracticeCount := practicestatFields[2].Descriptor()
	// practicestat.DefaultPracticeCount holds the default value on creation for the practice_count field.
	practicestat.DefaultPracticeCount = practicestatDescPracticeCount.Default.(int)
	// practicestatDescRating is the schema descriptor for rating field.
	practicestatDescRating := practicestatFields[3].Descriptor()
	// practicestat.DefaultRating holds the default value on creation for the rating field.
	practicestat.DefaultRating = practicestatDescRating.Default.(int)
	// practicestat.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	practicestat.RatingValidator = practicestatDescRating.Validators[0].(func(int) error)
	// practicestatDescFavorite is the schema descriptor for favorite field.
	practicestatDescFavorite := practicestatFields[4].Descriptor()
	// practicestat.DefaultFavorite holds the default value on creation for the favorite field.
	practicestat.DefaultFavorite = practicestatDescFavorite.Default.(bool)
	// practicestatDescLastPracticed is the schema descriptor for last_practiced field.
	practicestatDescLastPracticed := practicestatFields[5].Descriptor()
	// practicestat.DefaultLastPracticed holds the default value on creation for the last_practiced field.
	practicestat.DefaultLastPracticed = practicestatDescLastPracticed.Default.(func() time.Time)
	// practicestat.UpdateDefaultLastPracticed holds the default value on update for the last_practiced field.
	practicestat.UpdateDefaultLastPracticed = practicestatDescLastPracticed.UpdateDefault.(func() time.Time)
	verbFields := schema.Verb{}.Fields()
	_ = verbFields
	// verbDescConjugationClass is the schema descriptor for conjugation_class field.
	verbDescConjugationClass := verbFields[2].Descriptor()
	// verb.ConjugationClassValidator is a validator for the "conjugation_class" field. It is called by the builders before save.
	verb.ConjugationClassValidator = verbDescConjugationClass.Validators[0].(func(int) error)
	// verbDescIrregular is the schema descriptor for irregular field.
	verbDescIrregular := verbFields[3].Descriptor()
	// verb.DefaultIrregular holds the default value on creation for the irregular field.
	verb.DefaultIrregular = verbDescIrregular.Default.(bool)
	// verbDescReflexive is the schema descriptor for reflexive field.
	verbDescReflexive := verbFields[4].Descriptor()
	// verb.DefaultReflexive holds the default value on creation for the reflexive field.
	verb.DefaultReflexive = verbDescReflexive.Default.(bool)
	// verbDescTransitive is the schema descriptor for transitive field.
	verbDescTransitive := verbFields[5].Descriptor()
	// verb.DefaultTransitive holds the default value on creation for the transitive field.
	verb.DefaultTransitive = verbDescTransitive.Default.(bool)
	// verbDescGerund is the schema descriptor for gerund field.
	verbDescGerund := verbFields[6].Descriptor()
	// verb.DefaultGerund holds the default value on creation for the gerund field.
	verb.DefaultGerund = verbDescGerund.Default.(string)
	// verbDescParticiple is the schema descriptor for participle field.
	verbDescParticiple := verbFields[7].Descriptor()
	// verb.DefaultParticiple holds the default value on creation for the participle field.
	verb.DefaultParticiple = verbDescParticiple.Default.(string)
}
