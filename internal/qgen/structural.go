package qgen

import (
	"fmt"
	"strings"
)

// placeholderValues are literal non-answers models emit when they have
// nothing to say for a field.
var placeholderValues = map[string]bool{
	"...":  true,
	"…":    true,
	"n/a":  true,
	"none": true,
	"null": true,
	"tbd":  true,
}

func isPlaceholder(s string) bool {
	return placeholderValues[strings.ToLower(strings.TrimSpace(s))]
}

func splitVariants(s string) []string {
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// checkSentence verifies the blank-marker count and that no answer
// variant leaks into the sentence text.
func checkSentence(sentence, answer string) error {
	if strings.TrimSpace(sentence) == "" || isPlaceholder(sentence) {
		return fmt.Errorf("empty sentence")
	}
	if n := strings.Count(sentence, BlankMarker); n != 1 {
		return fmt.Errorf("sentence has %d blank markers, want 1", n)
	}
	lower := strings.ToLower(sentence)
	for _, variant := range splitVariants(answer) {
		if strings.Contains(lower, strings.ToLower(variant)) {
			return fmt.Errorf("answer %q leaks into sentence", variant)
		}
	}
	return nil
}

// checkCliticShape enforces the pattern/clitic-field contract: prnl
// questions carry no object clitics at all, every other host form needs
// a pattern whose required slots are filled and forbidden slots empty.
func checkCliticShape(hostForm, pattern, ioClitic, doClitic string) error {
	switch hostForm {
	case HostFinite, HostImperative, HostInfinitive, HostGerund:
	case HostPrnl:
		if pattern != "" || ioClitic != "" || doClitic != "" {
			return fmt.Errorf("prnl question must have empty pattern and clitics")
		}
		return nil
	default:
		return fmt.Errorf("unknown host form %q", hostForm)
	}

	switch pattern {
	case PatternDO:
		if doClitic == "" || ioClitic != "" {
			return fmt.Errorf("DO pattern requires do-clitic only")
		}
	case PatternIO:
		if ioClitic == "" || doClitic != "" {
			return fmt.Errorf("IO pattern requires io-clitic only")
		}
	case PatternDOIO:
		if ioClitic == "" || doClitic == "" {
			return fmt.Errorf("DO_IO pattern requires both clitics")
		}
	default:
		return fmt.Errorf("invalid clitic pattern %q", pattern)
	}
	return nil
}

// checkDraft runs every structural gate on a generated draft. Failures
// here are retried without spending a validator call.
func checkDraft(target Target, d *DraftQuestion) error {
	if err := checkSentence(d.Sentence, d.Answer); err != nil {
		return err
	}
	if strings.TrimSpace(d.Answer) == "" || isPlaceholder(d.Answer) {
		return fmt.Errorf("empty answer")
	}
	if strings.TrimSpace(d.Translation) == "" || isPlaceholder(d.Translation) {
		return fmt.Errorf("empty translation")
	}
	if strings.TrimSpace(d.Hint) == "" || isPlaceholder(d.Hint) {
		return fmt.Errorf("empty hint")
	}

	if target.Kind != KindPronoun {
		return nil
	}

	// The pronoun-bank generator must echo the requested slot exactly.
	if d.HostForm != target.HostForm {
		return fmt.Errorf("host form %q does not echo target %q", d.HostForm, target.HostForm)
	}
	if d.Mood != target.Mood || d.Tense != target.Tense || d.Person != target.Person {
		return fmt.Errorf("draft slot %s/%s/%s does not echo target %s/%s/%s",
			d.Mood, d.Tense, d.Person, target.Mood, target.Tense, target.Person)
	}
	if target.CliticPattern != "" && d.CliticPattern != target.CliticPattern {
		return fmt.Errorf("clitic pattern %q does not echo target %q", d.CliticPattern, target.CliticPattern)
	}
	return checkCliticShape(d.HostForm, d.CliticPattern, d.IOClitic, d.DOClitic)
}
