// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BankQuestionsColumns holds the columns for the "bank_questions" table.
	BankQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "mood", Type: field.TypeString},
		{Name: "tense", Type: field.TypeString},
		{Name: "person", Type: field.TypeString},
		{Name: "host_form", Type: field.TypeString, Default: ""},
		{Name: "clitic_pattern", Type: field.TypeString, Default: ""},
		{Name: "io_clitic", Type: field.TypeString, Default: ""},
		{Name: "do_clitic", Type: field.TypeString, Default: ""},
		{Name: "sentence", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString},
		{Name: "hint", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeInt, Default: 50},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "verb_id", Type: field.TypeInt},
	}
	// BankQuestionsTable holds the schema information for the "bank_questions" table.
	BankQuestionsTable = &schema.Table{
		Name:       "bank_questions",
		Columns:    BankQuestionsColumns,
		PrimaryKey: []*schema.Column{BankQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bank_questions_verbs_questions",
				Columns:    []*schema.Column{BankQuestionsColumns[15]},
				RefColumns: []*schema.Column{VerbsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bankquestion_kind",
				Unique:  false,
				Columns: []*schema.Column{BankQuestionsColumns[1]},
			},
			{
				Name:    "bankquestion_verb_id_sentence",
				Unique:  true,
				Columns: []*schema.Column{BankQuestionsColumns[15], BankQuestionsColumns[9]},
			},
			{
				Name:    "bankquestion_kind_tense",
				Unique:  false,
				Columns: []*schema.Column{BankQuestionsColumns[1], BankQuestionsColumns[3]},
			},
			{
				Name:    "bankquestion_created_at",
				Unique:  false,
				Columns: []*schema.Column{BankQuestionsColumns[14]},
			},
		},
	}
	// ConjugationsColumns holds the columns for the "conjugations" table.
	ConjugationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "mood", Type: field.TypeString},
		{Name: "tense", Type: field.TypeString},
		{Name: "person", Type: field.TypeString},
		{Name: "form", Type: field.TypeString},
		{Name: "verb_id", Type: field.TypeInt},
	}
	// ConjugationsTable holds the schema information for the "conjugations" table.
	ConjugationsTable = &schema.Table{
		Name:       "conjugations",
		Columns:    ConjugationsColumns,
		PrimaryKey: []*schema.Column{ConjugationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conjugations_verbs_conjugations",
				Columns:    []*schema.Column{ConjugationsColumns[5]},
				RefColumns: []*schema.Column{VerbsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conjugation_verb_id",
				Unique:  false,
				Columns: []*schema.Column{ConjugationsColumns[5]},
			},
			{
				Name:    "conjugation_verb_id_mood_tense_person",
				Unique:  true,
				Columns: []*schema.Column{ConjugationsColumns[5], ConjugationsColumns[1], ConjugationsColumns[2], ConjugationsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// PracticeStatsColumns holds the columns for the "practice_stats" table.
	PracticeStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "practice_count", Type: field.TypeInt, Default: 0},
		{Name: "rating", Type: field.TypeInt, Default: 0},
		{Name: "favorite", Type: field.TypeBool, Default: false},
		{Name: "last_practiced", Type: field.TypeTime},
	}
	// PracticeStatsTable holds the schema information for the "practice_stats" table.
	PracticeStatsTable = &schema.Table{
		Name:       "practice_stats",
		Columns:    PracticeStatsColumns,
		PrimaryKey: []*schema.Column{PracticeStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicestat_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{PracticeStatsColumns[1], PracticeStatsColumns[2]},
			},
			{
				Name:    "practicestat_question_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeStatsColumns[2]},
			},
		},
	}
	// VerbsColumns holds the columns for the "verbs" table.
	VerbsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "infinitive", Type: field.TypeString, Unique: true},
		{Name: "meaning", Type: field.TypeString},
		{Name: "conjugation_class", Type: field.TypeInt},
		{Name: "irregular", Type: field.TypeBool, Default: false},
		{Name: "reflexive", Type: field.TypeBool, Default: false},
		{Name: "transitive", Type: field.TypeBool, Default: true},
		{Name: "gerund", Type: field.TypeString, Default: ""},
		{Name: "participle", Type: field.TypeString, Default: ""},
	}
	// VerbsTable holds the schema information for the "verbs" table.
	VerbsTable = &schema.Table{
		Name:       "verbs",
		Columns:    VerbsColumns,
		PrimaryKey: []*schema.Column{VerbsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verb_conjugation_class",
				Unique:  false,
				Columns: []*schema.Column{VerbsColumns[3]},
			},
			{
				Name:    "verb_irregular",
				Unique:  false,
				Columns: []*schema.Column{VerbsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BankQuestionsTable,
		ConjugationsTable,
		LlmRequestEventsTable,
		PracticeStatsTable,
		VerbsTable,
	}
)

func init() {
	BankQuestionsTable.ForeignKeys[0].RefTable = VerbsTable
	ConjugationsTable.ForeignKeys[0].RefTable = VerbsTable
}
