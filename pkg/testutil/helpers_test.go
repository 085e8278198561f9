package testutil

import (
	"testing"

	"github.com/iwvelando/pension-calculator/internal/session"
)

func TestFindNotice(t *testing.T) {
	notices := []session.Notice{
		{Level: session.LevelAdvisory, Code: session.CodeBelowMinimumContribution, Message: "first"},
		{Level: session.LevelAdvisory, Code: session.CodeInputOutOfRange, Message: "second"},
		{Level: session.LevelAdvisory, Code: session.CodeInputOutOfRange, Message: "third"},
	}

	tests := []struct {
		name          string
		code          string
		expectFound   bool
		expectMessage string
	}{
		{"Find below minimum", session.CodeBelowMinimumContribution, true, "first"},
		{"First of several matches", session.CodeInputOutOfRange, true, "second"},
		{"Missing code", session.CodeCalculationFailed, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := FindNotice(notices, tt.code)
			if !tt.expectFound {
				if found != nil {
					t.Errorf("expected nil for %q, got %+v", tt.code, found)
				}
				return
			}
			if found == nil {
				t.Fatalf("expected notice %q, got nil", tt.code)
			}
			if found.Message != tt.expectMessage {
				t.Errorf("expected message %q, got %q", tt.expectMessage, found.Message)
			}
		})
	}

	if FindNotice(nil, session.CodeInputOutOfRange) != nil {
		t.Error("expected nil for empty slice")
	}
}

func TestCountLevel(t *testing.T) {
	notices := []session.Notice{
		{Level: session.LevelAdvisory},
		{Level: session.LevelFailure},
		{Level: session.LevelAdvisory},
	}
	if got := CountLevel(notices, session.LevelAdvisory); got != 2 {
		t.Errorf("expected 2 advisories, got %d", got)
	}
	if got := CountLevel(notices, session.LevelFailure); got != 1 {
		t.Errorf("expected 1 failure, got %d", got)
	}
	if got := CountLevel(nil, session.LevelFailure); got != 0 {
		t.Errorf("expected 0 for nil slice, got %d", got)
	}
}
