package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/lint"
	"cssb/state"
)

func runCheck(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() < 1 {
		return fmt.Errorf("no CSS file specified")
	}
	src := cmd.Args().Get(0)

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}

	issues, stats := lint.NewLinter(env.Log).Check(data, src)
	for _, issue := range issues {
		fmt.Fprintf(os.Stdout, "%s: %s\n", src, issue)
	}

	env.Log.Info("Check finished",
		zap.String("source", src),
		zap.Int("rulesets", stats.Rulesets),
		zap.Int("declarations", stats.Declarations),
		zap.Int("at-rules", stats.AtRules),
		zap.Int("issues", len(issues)))

	if len(issues) != 0 {
		return fmt.Errorf("'%s': %d issue(s) found", src, len(issues))
	}
	return nil
}
