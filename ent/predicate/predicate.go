// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BankQuestion is the predicate function for bankquestion builders.
type BankQuestion func(*sql.Selector)

// Conjugation is the predicate function for conjugation builders.
type Conjugation func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PracticeStat is the predicate function for practicestat builders.
type PracticeStat func(*sql.Selector)

// Verb is the predicate function for verb builders.
type Verb func(*sql.Selector)
