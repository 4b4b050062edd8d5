package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/stenoglyph/steno/internal/steno/dictionary"
	"github.com/stenoglyph/steno/internal/steno/lookup"
	"github.com/stenoglyph/steno/internal/steno/stroke"
)

var dictDumpFiles []string

func init() {
	dictDumpCmd.Flags().StringSliceVar(&dictDumpFiles, "dict", nil, "dictionary layer file(s), in load order (repeatable)")
	dictCmd.AddCommand(dictValidateCmd)
	dictCmd.AddCommand(dictDumpCmd)
}

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Inspect and validate dictionary layers",
}

var dictValidateCmd = &cobra.Command{
	Use:   "validate <files...>",
	Short: "Validate one or more dictionary layer files",
	Long:  "Loads each file as a dictionary layer, in argument order, and reports every malformed entry across every layer.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := readFiles(args)
		if err != nil {
			return err
		}

		if conflicts := detectConflicts(docs, args); len(conflicts) > 0 {
			if err := reportConflicts(cmd, conflicts); err != nil {
				return err
			}
		}

		if _, errs := dictionary.Load(docs); errs != nil {
			fmt.Fprintln(cmd.OutOrStdout(), errs.Error())
			return fmt.Errorf("dictionary validation failed: %d error(s)", len(errs))
		}

		fmt.Fprintln(cmd.OutOrStdout(), "all layers valid")
		return nil
	},
}

var dictDumpCmd = &cobra.Command{
	Use:   "dump <strokes...>",
	Short: "Look up a stroke sequence and print its atom sequence",
	Long:  "Loads the layers named by --dict, looks up the given strokes (one flag-free positional argument per stroke), and pretty-prints the resulting atom sequence.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(dictDumpFiles) == 0 {
			return fmt.Errorf("at least one --dict file is required")
		}

		docs, err := readFiles(dictDumpFiles)
		if err != nil {
			return err
		}

		if conflicts := detectConflicts(docs, dictDumpFiles); len(conflicts) > 0 {
			if err := reportConflicts(cmd, conflicts); err != nil {
				return err
			}
		}

		dict, errs := dictionary.Load(docs)
		if errs != nil {
			return fmt.Errorf("%s", errs.Error())
		}

		strokes := make([]stroke.Stroke, len(args))
		for i, a := range args {
			strokes[i] = stroke.New(a)
		}

		atoms := lookup.Translate(dict, strokes)
		fmt.Fprintln(cmd.OutOrStdout(), repr.String(atoms))
		return nil
	},
}

func readFiles(paths []string) ([]string, error) {
	docs := make([]string, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		docs[i] = string(data)
	}
	return docs, nil
}

// detectConflicts reports, for each dictionary key defined in more than
// one layer, the labels of every layer that defines it. Malformed
// documents are skipped here; dictionary.Load reports those separately.
func detectConflicts(docs []string, labels []string) map[string][]string {
	definedIn := make(map[string][]string)
	for i, doc := range docs {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal([]byte(doc), &raw); err != nil {
			continue
		}
		for key := range raw {
			definedIn[key] = append(definedIn[key], labels[i])
		}
	}

	conflicts := make(map[string][]string)
	for key, layers := range definedIn {
		if len(layers) > 1 {
			conflicts[key] = layers
		}
	}
	return conflicts
}

// reportConflicts prints every overwrite conflict and prompts the operator
// to pick which layer's definition they intend to keep (the actual merge
// always keeps the last layer's value; this is an acknowledgement step,
// not an override). The prompt is shown for every conflict; if it cannot
// be answered (for example when stdin is not a terminal), the prompt's
// error is returned.
func reportConflicts(cmd *cobra.Command, conflicts map[string][]string) error {
	keys := make([]string, 0, len(conflicts))
	for k := range conflicts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	for _, key := range keys {
		layers := conflicts[key]
		fmt.Fprintf(out, "conflict: %q is defined in %v (last one wins)\n", key, layers)

		winner := layers[len(layers)-1]
		prompt := &survey.Select{
			Message: fmt.Sprintf("%q: confirm the winning layer", key),
			Options: layers,
			Default: winner,
		}
		var chosen string
		if err := survey.AskOne(prompt, &chosen); err != nil {
			return fmt.Errorf("prompting for %q: %w", key, err)
		}
		if chosen != winner {
			fmt.Fprintf(out, "note: %q still resolves to %s (layer order is not reconfigurable)\n", key, winner)
		}
	}
	return nil
}
