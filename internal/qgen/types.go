package qgen

// BankKind selects one of the two parallel question banks.
type BankKind string

const (
	// KindSentence is the plain-conjugation bank: the blank takes a bare
	// conjugated verb form.
	KindSentence BankKind = "sentence"

	// KindPronoun is the clitic-pronoun bank: the blank takes a
	// verb+pronoun combination.
	KindPronoun BankKind = "pronoun"
)

// BlankMarker is the placeholder a question sentence carries exactly once.
const BlankMarker = "__?__"

// Host forms for the pronoun bank.
const (
	HostFinite     = "finite"
	HostImperative = "imperative"
	HostInfinitive = "infinitive"
	HostGerund     = "gerund"
	HostPrnl       = "prnl" // reflexive/pronominal use, no object clitics
)

// Clitic patterns for non-prnl pronoun-bank questions.
const (
	PatternDO   = "DO"
	PatternIO   = "IO"
	PatternDOIO = "DO_IO"
)

// AnswerSeparator joins interchangeable surface forms of one answer.
const AnswerSeparator = " | "

// Target is one unit of generation work: the grammatical slot a new
// question must uniquely test. It lives only for the duration of one
// acceptance run.
type Target struct {
	Kind   BankKind
	Mood   string
	Tense  string
	Person string

	// Answer holds the expected conjugated form(s) from the conjugation
	// table, AnswerSeparator-joined. Plain bank only.
	Answer string

	// Pronoun-bank fields. BaseForm is the host verb form without any
	// attached clitics. CliticPattern, when set, pins the required
	// object-pronoun shape; empty lets the generator choose.
	HostForm      string
	BaseForm      string
	CliticPattern string
}

// AnswerVariants splits the expected answer into its surface forms.
func (t Target) AnswerVariants() []string {
	return splitVariants(t.Answer)
}

// DraftQuestion is the normalized output of the Generate stage.
type DraftQuestion struct {
	Sentence    string
	Answer      string
	Translation string
	Hint        string

	// Plain bank.
	AnswerVariants []string
	CueStrategy    string

	// Pronoun bank. These must echo the requested target.
	HostForm      string
	CliticPattern string
	IOClitic      string
	DOClitic      string
	Mood          string
	Tense         string
	Person        string
}

// Alternative is one plausible competing filling reported by the plain
// bank validator.
type Alternative struct {
	Form           string `json:"form"`
	WhyPlausible   string `json:"whyPlausible"`
	WhyInvalidHere string `json:"whyInvalidHere"`
}

// Verdict is the normalized output of the Validate stage.
type Verdict struct {
	Valid         bool
	UniqueAnswer  bool
	Reason        string
	FailureTags   []string
	Alternatives  []Alternative // plain bank only
	RewriteAdvice []string
}

// Passed reports whether the verdict accepts the draft outright.
func (v Verdict) Passed() bool {
	return v.Valid && v.UniqueAnswer
}

// RevisionPatch is the normalized output of the Revise stage. Only the
// sentence and translation may change.
type RevisionPatch struct {
	Sentence    string
	Translation string
	Reason      string
}
