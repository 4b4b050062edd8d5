package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stenoglyph/steno/internal/config"
	"github.com/stenoglyph/steno/internal/controller/print"
	"github.com/stenoglyph/steno/internal/input/stdin"
	"github.com/stenoglyph/steno/internal/logging"
	"github.com/stenoglyph/steno/internal/manifest"
	"github.com/stenoglyph/steno/internal/steno/command"
	"github.com/stenoglyph/steno/internal/steno/dictionary"
	"github.com/stenoglyph/steno/internal/steno/translator"
)

var translateScript string

func init() {
	translateCmd.Flags().StringVar(&translateScript, "script", "", "read strokes from a file instead of stdin")
}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a stroke stream into edit commands",
	Long:  "Reads strokes from stdin (or --script) one at a time and prints the edit command each one produces.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, clamped, err := config.Load(".")
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger := logging.WithSession(logging.New(cfg.LogLevel))
		defer logger.Sync()
		if clamped {
			logger.Warn("history_bound was outside 1..HardHistoryBound and was clamped", zap.Int("clamped_to", config.HardHistoryBound))
		}

		dict, err := loadDictionary(cfg.ManifestPath)
		if err != nil {
			return fmt.Errorf("loading dictionary: %w", err)
		}

		var r io.Reader = os.Stdin
		if translateScript != "" {
			f, err := os.Open(translateScript)
			if err != nil {
				return fmt.Errorf("opening script %s: %w", translateScript, err)
			}
			defer f.Close()
			r = f
		}

		tr := translator.New(dict, cfg.HistoryBound)
		source := stdin.New(r)
		sink := print.New(cmd.OutOrStdout())

		ctx := context.Background()
		for {
			s, ok, err := source.Next(ctx)
			if err != nil {
				return fmt.Errorf("reading stroke: %w", err)
			}
			if !ok {
				return nil
			}

			var cmds []command.Command
			if s.IsUndo() {
				cmds = tr.Undo()
			} else {
				cmds = tr.Translate(s)
			}
			if err := sink.Apply(cmds); err != nil {
				return err
			}
		}
	},
}

func loadDictionary(manifestPath string) (*dictionary.Dictionary, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	docs, err := m.ReadDocs(".")
	if err != nil {
		return nil, err
	}
	dict, errs := dictionary.Load(docs)
	if errs != nil {
		return nil, fmt.Errorf("%s", errs.Error())
	}
	return dict, nil
}
