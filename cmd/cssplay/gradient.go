package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/playground"
	"github.com/alexisbeaulieu97/cssplay/internal/presets"
	"github.com/alexisbeaulieu97/cssplay/internal/preview"
)

type gradientOptions struct {
	preset     string
	file       string
	jsonOutput bool
}

type cssOutput struct {
	Editor  string                `json:"editor"`
	CSS     string                `json:"css"`
	Preview preview.Style         `json:"preview"`
	Layers  *presets.DocumentSpec `json:"layers,omitempty"`
}

func newGradientCmd(flags *rootFlags) *cobra.Command {
	opts := &gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Print the CSS of a gradient preset or document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradient(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Gradient preset to render")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML or JSON gradient document to render")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.MarkFlagsMutuallyExclusive("preset", "file")

	return cmd
}

func runGradient(cmd *cobra.Command, flags *rootFlags, opts *gradientOptions) error {
	a, err := bootstrap(cmd, flags, logConsole)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	session := playground.New(playground.Options{Catalog: a.catalog, Logger: a.log})

	switch {
	case opts.preset != "":
		if err := session.ApplyPreset(ctx, effects.EditorGradient, opts.preset); err != nil {
			return newCommandError("render gradient", fmt.Sprintf("applying preset %q", opts.preset), err,
				"Run 'cssplay presets gradient' to list available presets.")
		}
	case opts.file != "":
		spec, err := presets.LoadDocument(opts.file)
		if err != nil {
			return newCommandError("render gradient", fmt.Sprintf("reading %s", opts.file), err,
				"A document needs a 'layers' list; each layer needs a kind and at least two stops.")
		}
		layers, err := spec.Build()
		if err != nil {
			return newCommandError("render gradient", fmt.Sprintf("reading %s", opts.file), err,
				"Check the layer kinds and stop colours.")
		}
		session.LoadGradient(ctx, layers)
	}

	layers := presets.SpecFromDocument(session.Gradient())
	return printCSS(cmd, session, effects.EditorGradient, opts.jsonOutput, &layers)
}

func printCSS(cmd *cobra.Command, session *playground.Session, editor string, asJSON bool, layers *presets.DocumentSpec) error {
	css, err := session.CSS(editor)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !asJSON {
		_, err = fmt.Fprintln(out, css)
		return err
	}

	style, err := session.Preview(editor)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(cssOutput{Editor: editor, CSS: css, Preview: style, Layers: layers})
}
