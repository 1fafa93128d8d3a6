package lexical

import (
	"strings"
	"testing"
)

func TestDetectSpamTriggers_Bands(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		severity Severity
	}{
		{"clean text", "Looking forward to our conversation next week.", SeverityLow},
		{"few triggers", "This is a limited time offer, act now.", SeverityLow},
		{"shouting", "HELLO THERE THIS IS VERY IMPORTANT PLEASE READ EVERYTHING", SeverityMedium},
		{"heavy spam", "FREE MONEY!!! Act now, click here, winner, no risk, guaranteed, cash bonus $$$", SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSpamTriggers(tt.text)
			if got.Severity != tt.severity {
				t.Errorf("DetectSpamTriggers(%q).Severity = %s (score %d), want %s",
					tt.text, got.Severity, got.Score, tt.severity)
			}
		})
	}
}

func TestDetectSpamTriggers_ScoreComponents(t *testing.T) {
	got := DetectSpamTriggers("act now")
	if got.Score != 5 {
		t.Errorf("single trigger score = %d, want 5", got.Score)
	}

	got = DetectSpamTriggers("Wait!!!")
	if !got.ExcessiveMarks || got.Score != 10 {
		t.Errorf("punctuation run score = %d (marks=%v), want 10", got.Score, got.ExcessiveMarks)
	}

	got = DetectSpamTriggers("$$$")
	if !got.DollarRun || got.Score != 8 {
		t.Errorf("dollar run score = %d, want 8", got.Score)
	}
}

func TestDetectSpamTriggers_ScoreCapped(t *testing.T) {
	// Every trigger phrase at once, shouted
	text := strings.ToUpper(strings.Join(spamTriggerPhrases, " ")) + " !!! $$$"
	got := DetectSpamTriggers(text)
	if got.Score != 100 {
		t.Errorf("adversarial score = %d, want cap at 100", got.Score)
	}
	if got.Severity != SeverityCritical {
		t.Errorf("adversarial severity = %s, want critical", got.Severity)
	}
}

func TestUppercaseRatio(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"abcd", 0},
		{"ABCD", 1},
		{"AbCd", 0.5},
		{"!!! $$$", 0},
	}
	for _, tt := range tests {
		if got := uppercaseRatio(tt.text); got != tt.want {
			t.Errorf("uppercaseRatio(%q) = %f, want %f", tt.text, got, tt.want)
		}
	}
}
