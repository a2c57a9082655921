package qgen

import (
	"strings"
	"testing"
)

func TestCheckSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		answer   string
		wantErr  bool
	}{
		{"valid", "Espero que __?__ temprano.", "llegues", false},
		{"no blank", "Espero que llegues temprano.", "llegues", true},
		{"two blanks", "__?__ que __?__ temprano.", "llegues", true},
		{"answer leak", "Espero que llegues, y que __?__ temprano.", "llegues", true},
		{"leak case-insensitive", "Llegues pronto, y __?__ bien.", "llegues", true},
		{"variant leak", "No hablo mucho pero __?__ claro.", "hablo | hablo yo", true},
		{"empty", "", "llegues", true},
		{"placeholder", "...", "llegues", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSentence(tt.sentence, tt.answer)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkSentence(%q, %q) error = %v, wantErr %v", tt.sentence, tt.answer, err, tt.wantErr)
			}
		})
	}
}

func TestCheckCliticShape(t *testing.T) {
	tests := []struct {
		name     string
		hostForm string
		pattern  string
		io, do_  string
		wantErr  bool
	}{
		{"prnl empty", HostPrnl, "", "", "", false},
		{"prnl with pattern", HostPrnl, PatternDO, "", "lo", true},
		{"prnl with clitic", HostPrnl, "", "", "lo", true},
		{"DO ok", HostFinite, PatternDO, "", "lo", false},
		{"DO missing clitic", HostFinite, PatternDO, "", "", true},
		{"DO with io", HostFinite, PatternDO, "le", "lo", true},
		{"IO ok", HostImperative, PatternIO, "me", "", false},
		{"IO with do", HostImperative, PatternIO, "me", "lo", true},
		{"DO_IO ok", HostGerund, PatternDOIO, "se", "lo", false},
		{"DO_IO missing io", HostInfinitive, PatternDOIO, "", "lo", true},
		{"bad pattern", HostFinite, "XX", "", "lo", true},
		{"empty pattern non-prnl", HostFinite, "", "", "", true},
		{"unknown host form", "subjunctive", PatternDO, "", "lo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCliticShape(tt.hostForm, tt.pattern, tt.io, tt.do_)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkCliticShape(%q, %q, %q, %q) error = %v, wantErr %v",
					tt.hostForm, tt.pattern, tt.io, tt.do_, err, tt.wantErr)
			}
		})
	}
}

func TestCheckDraftEchoesTarget(t *testing.T) {
	target := Target{
		Kind:     KindPronoun,
		Mood:     "indicativo",
		Tense:    "presente",
		Person:   "yo",
		HostForm: HostFinite,
	}
	good := DraftQuestion{
		Sentence:      "Mi hermana quiere el libro, así que __?__ mañana.",
		Answer:        "se lo doy",
		Translation:   "My sister wants the book, so I'll give it to her tomorrow.",
		Hint:          "present indicative, first person singular",
		HostForm:      HostFinite,
		CliticPattern: PatternDOIO,
		IOClitic:      "se",
		DOClitic:      "lo",
		Mood:          "indicativo",
		Tense:         "presente",
		Person:        "yo",
	}

	if err := checkDraft(target, &good); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	wrongHost := good
	wrongHost.HostForm = HostGerund
	if err := checkDraft(target, &wrongHost); err == nil {
		t.Error("expected rejection for host form mismatch")
	}

	wrongSlot := good
	wrongSlot.Tense = "futuro"
	if err := checkDraft(target, &wrongSlot); err == nil {
		t.Error("expected rejection for tense mismatch")
	}

	pinned := target
	pinned.CliticPattern = PatternIO
	if err := checkDraft(pinned, &good); err == nil {
		t.Error("expected rejection when draft pattern contradicts pinned pattern")
	}
}

func TestSplitVariants(t *testing.T) {
	got := splitVariants("cantaba | cantabas")
	if len(got) != 2 || got[0] != "cantaba" || got[1] != "cantabas" {
		t.Errorf("splitVariants = %v", got)
	}
	if got := splitVariants("canto"); len(got) != 1 {
		t.Errorf("single form split = %v", got)
	}
	if got := splitVariants(" | "); len(got) != 0 {
		t.Errorf("blank variants = %v", got)
	}
}

func TestValidatorPromptCarveOutAsymmetry(t *testing.T) {
	verb := testVerb()
	plainTarget := Target{Kind: KindSentence, Mood: "indicativo", Tense: "presente", Person: "él/ella/usted", Answer: "habla"}
	draft := &DraftQuestion{Sentence: "Cuando la profesora entra, __?__ con calma.", Answer: "habla"}

	_, plainUser := plainValidatorPrompt(verb, plainTarget, draft)
	if !strings.Contains(plainUser, "él/ella/usted") {
		t.Error("plain validator prompt should carve out third-person referent ambiguity")
	}

	pronounTarget := Target{Kind: KindPronoun, Mood: "indicativo", Tense: "presente", Person: "yo", HostForm: HostFinite}
	_, pronounUser := pronounValidatorPrompt(verb, pronounTarget, draft)
	if strings.Contains(pronounUser, "él/ella/usted") {
		t.Error("pronoun validator prompt must not inherit the referent carve-out")
	}
}

func TestGeneratorPromptMentionsBlankMarker(t *testing.T) {
	verb := testVerb()
	_, user := plainGeneratorPrompt(verb, Target{
		Kind: KindSentence, Mood: "subjuntivo", Tense: "presente", Person: "tú", Answer: "hables",
	})
	if !strings.Contains(user, BlankMarker) {
		t.Error("generator prompt must state the blank marker")
	}
	if !strings.Contains(user, "hables") {
		t.Error("generator prompt must state the expected answer")
	}
}
