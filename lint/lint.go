// Package lint runs token-level checks over rendered CSS text. It never
// parses selector text back into builder structures, it only reports
// places where the output would not tokenize cleanly.
package lint

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Linter walks CSS text with a grammar-level tokenizer and collects issues.
type Linter struct {
	log *zap.Logger
}

// NewLinter creates a linter. A nil logger disables debug output.
func NewLinter(log *zap.Logger) *Linter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Linter{log: log.Named("css-lint")}
}

// Stats summarizes what was seen during a check.
type Stats struct {
	Rulesets     int
	Declarations int
	AtRules      int
}

// Check tokenizes CSS text and returns human readable issues, nil when the
// input is clean. The optional source parameter identifies what is being
// checked (for debug logging).
func (l *Linter) Check(data []byte, source ...string) ([]string, Stats) {
	var (
		issues []string
		stats  Stats
	)

	name := ""
	if len(source) > 0 {
		name = source[0]
	}
	l.log.Debug("Checking CSS", zap.String("source", name), zap.Int("bytes", len(data)))

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, tokenData := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if err != nil && !errors.Is(err, io.EOF) {
				issues = append(issues, fmt.Sprintf("offset %d: %v", input.Offset(), err))
				l.log.Debug("CSS parse error", zap.Error(err), zap.Int("offset", input.Offset()))
			}
			l.log.Debug("Check finished",
				zap.String("source", name),
				zap.Int("rulesets", stats.Rulesets),
				zap.Int("declarations", stats.Declarations),
				zap.Int("issues", len(issues)))
			return issues, stats

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			stats.Rulesets++

		case css.DeclarationGrammar:
			stats.Declarations++

		case css.BeginAtRuleGrammar, css.AtRuleGrammar:
			stats.AtRules++
			l.log.Debug("At-rule", zap.String("rule", string(tokenData)))
		}
	}
}
