package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cssplay/internal/binding"
	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/playground"
)

var effectEditors = []string{effects.EditorBorder, effects.EditorBoxShadow, effects.EditorTextShadow}

type effectOptions struct {
	preset     string
	jsonOutput bool
	values     map[string]*string
}

// flagName maps a field key such as font_size to its flag, font-size.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func fieldUsage(f effects.Field) string {
	switch f.Kind {
	case effects.FieldNumber:
		return fmt.Sprintf("%s (%s to %s)", f.Label, binding.FormatNumber(f.Range.Min), binding.FormatNumber(f.Range.Max))
	case effects.FieldChoice:
		return fmt.Sprintf("%s (%s)", f.Label, strings.Join(f.Choices, ", "))
	case effects.FieldColor:
		return f.Label + " (hex colour)"
	case effects.FieldToggle:
		return f.Label + " (true or false)"
	default:
		return f.Label
	}
}

func newEffectCmd(flags *rootFlags, editor string) *cobra.Command {
	opts := &effectOptions{values: make(map[string]*string)}

	cmd := &cobra.Command{
		Use:   editor,
		Short: fmt.Sprintf("Print the CSS of a %s", editor),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEffect(cmd, flags, editor, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Preset to start from")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	if e, ok := effects.New(editor); ok {
		for _, f := range e.Fields() {
			opts.values[f.Key] = cmd.Flags().String(flagName(f.Key), "", fieldUsage(f))
		}
	}

	return cmd
}

// runEffect starts from the default or preset record and applies each field
// flag in control order. Numbers are clamped to the control range; values a
// control cannot take at all are reported.
func runEffect(cmd *cobra.Command, flags *rootFlags, editor string, opts *effectOptions) error {
	a, err := bootstrap(cmd, flags, logConsole)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	session := playground.New(playground.Options{Catalog: a.catalog, Logger: a.log})

	if opts.preset != "" {
		if err := session.ApplyPreset(ctx, editor, opts.preset); err != nil {
			return newCommandError("render "+editor, fmt.Sprintf("applying preset %q", opts.preset), err,
				fmt.Sprintf("Run 'cssplay presets %s' to list available presets.", editor))
		}
	}

	fields, err := session.Fields(editor)
	if err != nil {
		return err
	}
	for _, f := range fields {
		name := flagName(f.Key)
		if !cmd.Flags().Changed(name) {
			continue
		}
		value := *opts.values[f.Key]
		if !session.SetField(ctx, editor, f.Key, value) {
			return newCommandError("render "+editor, fmt.Sprintf("setting --%s", name),
				errors.New("invalid value "+fmt.Sprintf("%q", value)), "Expected "+fieldUsage(f)+".")
		}
	}

	return printCSS(cmd, session, editor, opts.jsonOutput, nil)
}
