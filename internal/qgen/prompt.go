package qgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/conjugo/internal/store"
)

// Plain-bank failure tags the validator may report.
var plainFailureTags = []string{
	"too_short_info",
	"person_ambiguous",
	"tense_ambiguous",
	"mood_ambiguous",
	"time_adverb_overused",
	"template_opening",
	"answer_leak",
	"unnatural",
}

// Pronoun-bank failure tags.
var pronounFailureTags = []string{
	"field_mismatch",
	"host_form_invalid",
	"pronoun_pattern_invalid",
	"pronoun_fields_invalid",
	"answer_not_combo",
	"pronoun_position_error",
	"accent_error",
	"too_short_info",
	"not_unique",
	"answer_leak",
	"unnatural",
	"translation_issue",
}

func plainGeneratorPrompt(verb *store.Verb, target Target) (system, user string) {
	variants := target.AnswerVariants()
	variantsJSON, _ := json.Marshal(variants)
	answerNote := ""
	if len(variants) > 1 {
		answerNote = "\nNote: this conjugation has several correct forms, separated by \" | \". Include every form in answer_variants and keep all of them in answer."
	}

	system = "You are an expert Spanish teacher and exercise author. Your goal is natural, well-cued fill-in-the-blank sentences whose conjugation slot has a unique solution."

	user = fmt.Sprintf(`Write one fill-in-the-blank sentence exercise for the Spanish verb "%s" (meaning: %s).

Target conjugation:
- mood: %s
- tense: %s
- person slot: %s
- correct answer: %s%s

Key definition:
- "Unique slot" means the blank %s only admits the %s + %s + %s form.
- The referent does NOT have to be unique: third person singular may equally denote él/ella/usted, as long as the slot itself does not change.
- Ambiguity that would change the slot (tú vs usted, vosotros vs ustedes, yo vs nosotros) is still forbidden.

Output requirements:
1. Output a single JSON object, parseable as-is; no Markdown fences, no commentary.
2. The object must contain exactly these fields:
{
  "cue_strategy": "A|B|C|D|E|F",
  "sentence": "... %s ... (1-3 sentences; the blank appears exactly once)",
  "answer_variants": %s,
  "answer": "%s",
  "translation": "English translation covering the whole sentence",
  "hint": "must state mood + tense + person slot explicitly (e.g. indicative present + third person singular)"
}

Slot anchoring (mandatory):
- The sentence must carry enough cues to pin the target slot (person/number/register), without needing to pin gender or a specific individual.
- For second-person targets, explicitly disambiguate tú/usted or vosotros/ustedes.
- For first- or second-person plural, include agreement cues (nos-/os-/vuestro, a clear vocative or subject).
- Never rely on the blanked verb ending alone to signal the slot.

Blank and leak control:
- The blank marker must be %s and appear exactly once.
- No answer variant may appear verbatim anywhere in the sentence, including as a substring.
- The target verb may only appear at the blank; no other conjugation, infinitive or participle of it elsewhere.

Information density and uniqueness:
- The sentence may be short but must be informative; satisfy at least two of:
  1) a clause/structure trigger (que, si, aunque, para que, antes de que, mientras, cuando...)
  2) a pragmatic trigger (request, advice, conjecture, counterfactual, condition, narrative turn)
  3) an additional constraint (object, cause, purpose, limit, contrast, place, result)
- Self-check before answering: try 2-3 common substitutes (other slot or other tense/mood). If any works without changing the sentence frame, rewrite.

Anti-template and naturalness:
- Forbidden openings: Mañana / Ayer / Hoy / Ahora / Siempre / Nunca / Todos los días / Cada día / Últimamente / En este momento
- Never pin the tense with a single time adverb alone.
- Prefer structural and pragmatic cues over formulaic openings.

cue_strategy (for logging): pick the one that genuinely applies:
A subordinate-clause trigger
B main-clause attitude trigger
C condition/concession trigger
D purpose/request/advice trigger
E narrative-contrast trigger
F pronoun/collocation trigger
`,
		verb.Infinitive, verb.Meaning,
		target.Mood, target.Tense, target.Person, target.Answer, answerNote,
		BlankMarker, target.Mood, target.Tense, target.Person,
		BlankMarker, variantsJSON, target.Answer,
		BlankMarker)
	return system, user
}

func plainValidatorPrompt(verb *store.Verb, target Target, draft *DraftQuestion) (system, user string) {
	answerNote := ""
	if strings.Contains(draft.Answer, AnswerSeparator) {
		answerNote = "\n\nNote: the answer lists several forms separated by \" | \". They belong to the same target conjugation and count as equivalent correct forms."
	}

	system = "You are a rigorous Spanish education QA reviewer. You verify grammar, slot uniqueness and naturalness of fill-in-the-blank exercises."

	user = fmt.Sprintf(`Strictly review this fill-in-the-blank sentence exercise as a Spanish expert.

Infinitive: %s (%s)
Sentence: %s
Correct answer: %s%s
Translation: %s
Hint: %s

Core criterion (important):
- Judge "slot uniqueness" first: is the mood + tense + person-slot unique?
- The referent does NOT need to be unique: third person singular covering él/ella/usted is NOT ambiguity.
- Anything that changes the slot itself (tú/usted, vosotros/ustedes, yo/nosotros) IS ambiguity.

Output a single JSON object (no Markdown) with exactly:
{
  "isValid": true/false,
  "hasUniqueAnswer": true/false,
  "reason": "...",
  "failure_tags": ["..."],
  "alternatives": [
    { "form": "...", "whyPlausible": "...", "whyInvalidHere": "..." },
    { "form": "...", "whyPlausible": "...", "whyInvalidHere": "..." },
    { "form": "...", "whyPlausible": "...", "whyInvalidHere": "..." }
  ],
  "rewrite_advice": ["...", "..."]
}

Must check:
1) Grammar: word order, pronoun placement, collocation, valency, sequence of tenses, punctuation. Errors mean isValid=false.
2) Slot uniqueness: only the target mood+tense+person-slot may fit. If another slot works without changing the sentence frame, hasUniqueAnswer=false.
3) Tense/mood uniqueness: another tense or mood fitting the unchanged context also means not unique.
4) Homographs: identical surface forms are not automatically ambiguous; judge by syntactic position and discourse function, and tag "mood_ambiguous" only when the functions are interchangeable too.
5) Leaks: if the answer or an obvious variant appears in the sentence, isValid=false and include "answer_leak".
6) Anti-template: formulaic openings or over-reliance on time adverbs get "template_opening" or "time_adverb_overused".
7) Naturalness: stilted or unidiomatic phrasing gets "unnatural".

Alternatives rules:
- List at least 3 alternative forms.
- Each must be a minimal substitution: same verb, same syntactic position, same sentence frame, only the blank changes.
- Only list alternatives that could work WITHOUT changing the frame; drop anything that needs a new subject, extra words or a changed timeline.
- If an alternative actually works, its whyInvalidHere must say "it actually works".

failure_tags enumeration (multi-select): %s

person_ambiguous trigger rule (strict):
- If the sentence already carries an explicit person anchor (standalone pronoun, vocative, clitic cues like os/nos/te/le, or a clear subject noun phrase), never tag person_ambiguous on surface identity alone.
- Tag person_ambiguous only when a slot-changing substitute also works in the same context.

rewrite_advice: at least 2 actionable items; at least one strengthening slot/tense/mood uniqueness and one improving naturalness.
`,
		verb.Infinitive, verb.Meaning,
		draft.Sentence, draft.Answer, answerNote,
		orNone(draft.Translation), orNone(draft.Hint),
		quotedList(plainFailureTags))
	return system, user
}

func pronounGeneratorPrompt(verb *store.Verb, target Target) (system, user string) {
	patternRule := `
- pronoun_pattern must be one of "DO" / "IO" / "DO_IO".
- pattern DO: do_pronoun non-empty, io_pronoun empty.
- pattern IO: io_pronoun non-empty, do_pronoun empty.
- pattern DO_IO: both io_pronoun and do_pronoun non-empty.`
	if target.HostForm == HostPrnl {
		patternRule = `
- pronoun_pattern must be the empty string "".
- io_pronoun and do_pronoun must both be the empty string "".`
	}
	if target.CliticPattern != "" {
		patternRule += fmt.Sprintf("\n- The required pattern for this item is %q; output exactly that.", target.CliticPattern)
	}

	finiteRule := ""
	if target.HostForm == HostFinite {
		finiteRule = fmt.Sprintf(`
- host_form=finite must use the target tense and person:
  - mood: %s
  - tense: %s
  - person: %s`, target.Mood, target.Tense, target.Person)
	}

	system = "You are a Spanish exercise author. You write single-blank exercises whose answer is a verb+clitic-pronoun combination with a unique solution."

	user = fmt.Sprintf(`Write one fill-in-the-blank exercise for the target below. Output JSON only (no Markdown, no commentary).

Verb:
- infinitive: %s
- meaning: %s
- is_reflexive: %t
- has_transitive_use: %t

Target parameters (immutable):
- host_form: %s
- mood: %s
- tense: %s
- person: %s
- host base form (without object pronouns): %s%s

Hard constraints:
1. The sentence must contain exactly one "%s".
2. The blank takes only a verb+pronoun combination, never a bare verb or bare pronoun.
3. Respect Spanish clitic placement and accent rules:
   - finite: clitics normally proclitic
   - affirmative imperative, infinitive, gerund: clitics attached enclitically, adding a written accent when required
4. The context must fully determine the answer (case, gender, number, position).
5. No answer leak: the answer must not appear in the sentence text.
6. Natural phrasing, no formulaic openings.
7. If host_form=prnl the sentence must express reflexive/pronominal meaning.%s

Return JSON:
{
  "host_form": "%s",
  "pronoun_pattern": "DO|IO|DO_IO or empty string",
  "mood": "%s",
  "tense": "%s",
  "person": "%s",
  "io_pronoun": "string, may be empty",
  "do_pronoun": "string, may be empty",
  "sentence": "Spanish sentence containing exactly one %s",
  "answer": "the unique correct answer (verb+pronoun combination)",
  "translation": "full English translation",
  "hint": "short hint"
}
`,
		verb.Infinitive, verb.Meaning, verb.Reflexive, verb.Transitive,
		target.HostForm, target.Mood, target.Tense, target.Person, target.BaseForm, finiteRule,
		BlankMarker, patternRule,
		target.HostForm, target.Mood, target.Tense, target.Person, BlankMarker)
	return system, user
}

func pronounValidatorPrompt(verb *store.Verb, target Target, draft *DraftQuestion) (system, user string) {
	draftJSON, _ := json.MarshalIndent(draftForPrompt(draft), "", "  ")

	system = "You are a Spanish exercise QA reviewer for clitic-pronoun conjugation items. You check grammar, field consistency and uniqueness of the solution."

	user = fmt.Sprintf(`Strictly review the exercise below. Output JSON only.

Target parameters:
- infinitive: %s
- meaning: %s
- host_form: %s
- mood: %s
- tense: %s
- person: %s
- host base form: %s

Exercise under review:
%s

Checks (all mandatory):
1) host_form/mood/tense/person match the target parameters.
2) host_form is one of finite/imperative/infinitive/gerund/prnl.
3) pronoun_pattern rules:
   - prnl: must be the empty string
   - otherwise: must be one of DO/IO/DO_IO
4) io_pronoun/do_pronoun rules:
   - prnl: both empty
   - DO: do_pronoun non-empty, io_pronoun empty
   - IO: io_pronoun non-empty, do_pronoun empty
   - DO_IO: both non-empty
5) answer is a verb+pronoun combination, never a bare verb or bare pronoun.
6) clitic placement, spelling and written accents are correct.
7) the sentence has exactly one "%s", carries enough information, and the answer is uniquely determined.
8) no answer leak, natural phrasing, translation essentially accurate.

failure_tags enumeration: %s

Return format:
{
  "isValid": true/false,
  "hasUniqueAnswer": true/false,
  "reason": "string",
  "failure_tags": ["tag1", "tag2"],
  "rewrite_advice": ["advice 1", "advice 2"]
}
`,
		verb.Infinitive, verb.Meaning,
		target.HostForm, target.Mood, target.Tense, target.Person, target.BaseForm,
		draftJSON, BlankMarker,
		quotedList(pronounFailureTags))
	return system, user
}

func revisorPrompt(verb *store.Verb, target Target, draft *DraftQuestion, verdict *Verdict) (system, user string) {
	draftJSON, _ := json.MarshalIndent(draftForPrompt(draft), "", "  ")
	verdictJSON, _ := json.MarshalIndent(map[string]any{
		"isValid":         verdict.Valid,
		"hasUniqueAnswer": verdict.UniqueAnswer,
		"reason":          verdict.Reason,
		"failure_tags":    verdict.FailureTags,
		"rewrite_advice":  verdict.RewriteAdvice,
	}, "", "  ")

	system = "You are a Spanish exercise revision specialist. You may only revise the sentence and translation; every other field stays untouched."

	user = fmt.Sprintf(`Revise the exercise according to the reviewer feedback. Output JSON only.

Target parameters:
- infinitive: %s
- meaning: %s
- kind: %s
- mood: %s
- tense: %s
- person: %s

Original exercise:
%s

Reviewer feedback:
%s

Revision rules:
1. Change only sentence and translation.
2. The sentence must contain exactly one "%s".
3. Fix the uniqueness and grammar problems the reviewer named first.
4. The revised sentence must still uniquely support the original answer.
5. Keep the phrasing natural, no formulaic openings.

Return format:
{
  "sentence": "revised sentence",
  "translation": "revised translation",
  "revisor_reason": "short note on what changed"
}
`,
		verb.Infinitive, verb.Meaning, target.Kind,
		target.Mood, target.Tense, target.Person,
		draftJSON, verdictJSON, BlankMarker)
	return system, user
}

// draftForPrompt projects a draft onto the JSON field names used on the
// wire, so validator and revisor see the same shape the generator emits.
func draftForPrompt(d *DraftQuestion) map[string]any {
	m := map[string]any{
		"sentence":    d.Sentence,
		"answer":      d.Answer,
		"translation": d.Translation,
		"hint":        d.Hint,
	}
	if d.HostForm != "" {
		m["host_form"] = d.HostForm
		m["pronoun_pattern"] = d.CliticPattern
		m["io_pronoun"] = d.IOClitic
		m["do_pronoun"] = d.DOClitic
		m["mood"] = d.Mood
		m["tense"] = d.Tense
		m["person"] = d.Person
	}
	return m
}

func quotedList(tags []string) string {
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return strings.Join(quoted, ", ")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
