package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/config"
	"cssb/lint"
	"cssb/state"
	"cssb/stylesheet"
)

func runRender(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() < 1 {
		return fmt.Errorf("no definition file specified")
	}
	src := cmd.Args().Get(0)

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read definitions '%s': %w", src, err)
	}

	doc, err := stylesheet.Load(data)
	if err != nil {
		return fmt.Errorf("unable to load definitions '%s': %w", src, err)
	}

	sheet, err := doc.Build(env.Log)
	for _, w := range sheet.Warnings {
		env.Log.Warn("Definition skipped", zap.String("reason", w))
	}
	if err != nil {
		return fmt.Errorf("unable to build selectors from '%s': %w", src, err)
	}

	var out string
	if cmd.Bool("selectors-only") || env.Cfg.Output.SelectorsOnly {
		sels := sheet.Selectors()
		if len(sels) > 0 {
			out = strings.Join(sels, "\n") + "\n"
		}
	} else {
		out = sheet.String()

		// make sure what we produced lexes cleanly
		issues, _ := lint.NewLinter(env.Log).Check([]byte(out), src)
		for _, issue := range issues {
			env.Log.Warn("Rendered output does not lex cleanly", zap.String("issue", issue))
		}
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = env.Cfg.Output.Destination
	}
	if len(dst) == 0 {
		_, err = os.Stdout.WriteString(out)
		return err
	}

	dst = filepath.Join(filepath.Dir(dst), config.CleanFileName(filepath.Base(dst)))
	if !cmd.Bool("overwrite") && !env.Cfg.Output.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", dst)
		}
	}
	if err = os.WriteFile(dst, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", dst, err)
	}

	env.Log.Info("Stylesheet rendered",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Int("selectors", len(sheet.Selectors())))
	return nil
}
