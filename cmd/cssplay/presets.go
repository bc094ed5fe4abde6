package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cssplay/internal/effects"
)

type presetsOptions struct {
	jsonOutput bool
}

func newPresetsCmd(flags *rootFlags) *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets [editor]",
		Short: "List the preset catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editors := effects.Editors()
			if len(args) == 1 {
				editors = []string{args[0]}
			}
			return runPresets(cmd, flags, opts, editors)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPresets(cmd *cobra.Command, flags *rootFlags, opts *presetsOptions, editors []string) error {
	a, err := bootstrap(cmd, flags, logConsole)
	if err != nil {
		return err
	}
	defer a.Close()

	listing := make(map[string][]string, len(editors))
	for _, editor := range editors {
		names, err := a.catalog.Names(editor)
		if err != nil {
			return newCommandError("list presets", fmt.Sprintf("reading editor %q", editor), err,
				"Choose one of gradient, border, box-shadow or text-shadow.")
		}
		listing[editor] = names
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	}

	if len(editors) == 1 {
		for _, name := range listing[editors[0]] {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EDITOR\tPRESETS")
	for _, editor := range editors {
		fmt.Fprintf(w, "%s\t%s\n", editor, strings.Join(listing[editor], ", "))
	}
	return w.Flush()
}
