package store

import (
	"context"
	"time"
)

// Verb is a dictionary entry with the display fields questions are
// annotated with.
type Verb struct {
	ID               int
	Infinitive       string
	Meaning          string
	ConjugationClass int
	Irregular        bool
	Reflexive        bool
	Transitive       bool
	Gerund           string
	Participle       string
}

// Conjugation is one (mood, tense, person) cell of a verb's table.
// Form may hold several interchangeable spellings separated by " | ".
type Conjugation struct {
	ID     int
	VerbID int
	Mood   string
	Tense  string
	Person string
	Form   string
}

// Question is a bank entry together with its owning verb's display
// fields. Confidence is the only mutable attribute.
type Question struct {
	ID            int
	VerbID        int
	Kind          string
	Mood          string
	Tense         string
	Person        string
	HostForm      string
	CliticPattern string
	IOClitic      string
	DOClitic      string
	Sentence      string
	Answer        string
	Translation   string
	Hint          string
	Confidence    int
	CreatedAt     time.Time

	// Owning verb display fields, populated on read.
	Infinitive       string
	Meaning          string
	ConjugationClass int
	Irregular        bool
}

// PracticeStat is one user's history with one bank question.
type PracticeStat struct {
	UserID        string
	QuestionID    int
	PracticeCount int
	Rating        int // -1 bad, 0 unrated, 1 good
	Favorite      bool
	LastPracticed time.Time
}

// VerbFilter restricts verb sampling.
type VerbFilter struct {
	Classes     []int // conjugation classes (1-3); empty = all
	OnlyRegular bool
	Reflexive   *bool // nil = don't care
	IDs         []int // allow list; empty = all
}

// QuestionFilter restricts bank candidate queries. Empty slices and
// zero values mean "no restriction".
type QuestionFilter struct {
	Moods       []string
	Tenses      []string
	Classes     []int
	OnlyRegular bool
	VerbIDs     []int
	HostForms   []string // pronoun bank only
}

// BankStats summarizes one bank kind for reporting.
type BankStats struct {
	Kind          string
	Count         int
	AvgConfidence float64
	MinConfidence int
	MaxConfidence int
}

// VerbRepo provides read access to the verb dictionary and write access
// for imports.
type VerbRepo interface {
	// Get returns the verb with the given id, or nil if it doesn't exist.
	Get(ctx context.Context, id int) (*Verb, error)

	// Random samples up to n distinct verbs matching the filter.
	Random(ctx context.Context, n int, f VerbFilter) ([]Verb, error)

	// Conjugations returns the full conjugation set for a verb.
	Conjugations(ctx context.Context, verbID int) ([]Conjugation, error)

	// Create inserts a verb and returns its id. An existing verb with
	// the same infinitive is reused.
	Create(ctx context.Context, v *Verb) (int, error)

	// AddConjugation inserts one conjugation cell, replacing the form
	// if the slot already exists.
	AddConjugation(ctx context.Context, c *Conjugation) error
}

// QuestionRepo is the single owner of bank-question persistence and the
// single writer of confidence scores.
type QuestionRepo interface {
	// Insert adds a question to the bank and returns its id. If an
	// entry with the same (verb, sentence) already exists, its id is
	// returned and nothing is written.
	Insert(ctx context.Context, q *Question) (int, error)

	// Get returns the question with the given id, or nil if absent.
	Get(ctx context.Context, id int) (*Question, error)

	// RandomByKind draws up to limit random bank entries of the given
	// kind matching the filter, each annotated with verb display fields.
	RandomByKind(ctx context.Context, kind string, f QuestionFilter, limit int) ([]Question, error)

	// AdjustConfidence applies a clamped delta to a question's
	// confidence. Returns false when the question no longer exists.
	AdjustConfidence(ctx context.Context, id, delta int) (bool, error)

	// CountByKind returns the number of bank entries of a kind matching
	// the filter.
	CountByKind(ctx context.Context, kind string, f QuestionFilter) (int, error)

	// Stats aggregates per-kind bank statistics.
	Stats(ctx context.Context) ([]BankStats, error)

	// DeleteOlderThan removes bank entries created before cutoff along
	// with their orphaned practice stats. Returns the number deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// StatRepo tracks per-user practice history.
type StatRepo interface {
	// For returns the stats a user has for the given questions, keyed
	// by question id. Questions without history are absent from the map.
	For(ctx context.Context, userID string, questionIDs []int) (map[int]PracticeStat, error)

	// RecordPractice increments the user's practice count for a question.
	RecordPractice(ctx context.Context, userID string, questionID int) error

	// SetRating stores the user's rating (-1, 0, 1) for a question.
	SetRating(ctx context.Context, userID string, questionID, rating int) error

	// SetFavorite stores whether the user has favorited a question.
	SetFavorite(ctx context.Context, userID string, questionID int, favorite bool) error
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = default)
	Purpose string // filter by stage label; "" = all
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates usage per pipeline stage.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per stage label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
