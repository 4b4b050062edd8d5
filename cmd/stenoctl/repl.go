package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/rosed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stenoglyph/steno/internal/config"
	"github.com/stenoglyph/steno/internal/logging"
	"github.com/stenoglyph/steno/internal/steno/dictionary"
	"github.com/stenoglyph/steno/internal/steno/format"
	"github.com/stenoglyph/steno/internal/steno/lookup"
	"github.com/stenoglyph/steno/internal/steno/stroke"
	"github.com/stenoglyph/steno/internal/steno/translator"
)

const replTranscriptWidth = 72

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively type strokes and watch the transcript grow",
	Long:  "Starts a readline-backed loop: each line is one stroke. '*' undoes the last stroke. Ctrl-D exits.",
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

		rl, err := readline.NewEx(&readline.Config{Prompt: "steno> "})
		if err != nil {
			return fmt.Errorf("starting readline: %w", err)
		}
		defer rl.Close()

		tr := translator.New(dict, cfg.HistoryBound)
		out := cmd.OutOrStdout()

		for {
			line, err := rl.Readline()
			if err != nil {
				if err == readline.ErrInterrupt || err == io.EOF {
					return nil
				}
				return err
			}

			raw := strings.TrimSpace(line)
			if raw == "" {
				continue
			}

			s := stroke.New(raw)
			if s.IsUndo() {
				tr.Undo()
			} else {
				tr.Translate(s)
			}

			transcript := rosed.Edit(renderTranscript(dict, tr)).Wrap(replTranscriptWidth).String()
			fmt.Fprintln(out, transcript)
		}
	},
}

// renderTranscript batch-renders the translator's entire current history,
// the same way the print controller's incremental diffs would compose, so
// the REPL always shows the true cumulative text rather than accumulating
// drift across many small diffs.
func renderTranscript(dict *dictionary.Dictionary, tr *translator.Translator) string {
	atoms := lookup.Translate(dict, tr.History())
	text, _ := format.ExtractCommands(atoms)
	return format.Render(text)
}
