package lint_test

import (
	"testing"

	"go.uber.org/zap"

	"cssb/lint"
)

func TestLinter_CleanStylesheet(t *testing.T) {
	l := lint.NewLinter(zap.NewNop())

	input := []byte(`@import url("base.css");

a[href$=".png"]:focus {
  color: blue;
}

@media print {
  .no-print {
    display: none;
  }
}
`)
	issues, stats := l.Check(input, "test")
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
	if stats.Rulesets != 2 {
		t.Errorf("Rulesets = %d, want 2", stats.Rulesets)
	}
	if stats.Declarations != 2 {
		t.Errorf("Declarations = %d, want 2", stats.Declarations)
	}
	if stats.AtRules != 2 {
		t.Errorf("AtRules = %d, want 2", stats.AtRules)
	}
}

func TestLinter_BrokenInput(t *testing.T) {
	l := lint.NewLinter(nil)

	issues, _ := l.Check([]byte("}"))
	if len(issues) == 0 {
		t.Error("expected issues for stray closing brace")
	}
}

func TestLinter_EmptyInput(t *testing.T) {
	l := lint.NewLinter(nil)

	issues, stats := l.Check(nil)
	if len(issues) != 0 {
		t.Errorf("expected no issues for empty input, got %v", issues)
	}
	if stats.Rulesets != 0 || stats.Declarations != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
