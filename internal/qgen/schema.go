package qgen

import "github.com/abhisek/conjugo/internal/llm"

func stringProp(desc string) map[string]any {
	p := map[string]any{"type": "string"}
	if desc != "" {
		p["description"] = desc
	}
	return p
}

func stringArrayProp(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items":       map[string]any{"type": "string"},
	}
}

func draftSchema(kind BankKind) *llm.Schema {
	if kind == KindPronoun {
		return &llm.Schema{
			Name:        "pronoun-draft-question",
			Description: "A fill-in-the-blank exercise whose answer is a verb+clitic-pronoun combination.",
			Definition: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"host_form":       stringProp("one of finite/imperative/infinitive/gerund/prnl"),
					"pronoun_pattern": stringProp("DO, IO, DO_IO, or empty for prnl"),
					"mood":            stringProp(""),
					"tense":           stringProp(""),
					"person":          stringProp(""),
					"io_pronoun":      stringProp("indirect object clitic, may be empty"),
					"do_pronoun":      stringProp("direct object clitic, may be empty"),
					"sentence":        stringProp("Spanish sentence with exactly one blank marker"),
					"answer":          stringProp("the unique verb+pronoun combination"),
					"translation":     stringProp(""),
					"hint":            stringProp(""),
				},
				"required": []any{
					"host_form", "pronoun_pattern", "mood", "tense", "person",
					"io_pronoun", "do_pronoun", "sentence", "answer", "translation", "hint",
				},
				"additionalProperties": false,
			},
		}
	}

	return &llm.Schema{
		Name:        "draft-question",
		Description: "A fill-in-the-blank sentence exercise for one Spanish conjugation slot.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cue_strategy":    stringProp("one of A-F"),
				"sentence":        stringProp("Spanish sentence with exactly one blank marker"),
				"answer_variants": stringArrayProp("all equivalent correct forms"),
				"answer":          stringProp("the correct form(s), | separated"),
				"translation":     stringProp(""),
				"hint":            stringProp("states mood, tense and person slot"),
			},
			"required": []any{
				"cue_strategy", "sentence", "answer_variants", "answer", "translation", "hint",
			},
			"additionalProperties": false,
		},
	}
}

func verdictSchema(kind BankKind) *llm.Schema {
	props := map[string]any{
		"isValid":         map[string]any{"type": "boolean"},
		"hasUniqueAnswer": map[string]any{"type": "boolean"},
		"reason":          stringProp(""),
		"failure_tags":    stringArrayProp("zero or more failure tags"),
		"rewrite_advice":  stringArrayProp("actionable rewrite suggestions"),
	}
	required := []any{"isValid", "hasUniqueAnswer", "reason", "failure_tags", "rewrite_advice"}
	name := "pronoun-verdict"

	if kind == KindSentence {
		name = "verdict"
		props["alternatives"] = map[string]any{
			"type":        "array",
			"description": "plausible competing fillings with per-item explanations",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"form":           stringProp(""),
					"whyPlausible":   stringProp(""),
					"whyInvalidHere": stringProp(""),
				},
				"required":             []any{"form", "whyPlausible", "whyInvalidHere"},
				"additionalProperties": false,
			},
		}
		required = append(required, "alternatives")
	}

	return &llm.Schema{
		Name:        name,
		Description: "A review verdict for one generated exercise.",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

func revisionSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "revision-patch",
		Description: "A minimal revision touching only sentence and translation.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sentence":       stringProp("revised sentence with exactly one blank marker"),
				"translation":    stringProp("revised translation"),
				"revisor_reason": stringProp("short note on what changed"),
			},
			"required":             []any{"sentence", "translation", "revisor_reason"},
			"additionalProperties": false,
		},
	}
}
