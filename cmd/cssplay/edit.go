package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cssplay/internal/clipboard"
	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/playground"
	"github.com/alexisbeaulieu97/cssplay/internal/tui"
)

type editOptions struct {
	editor string
	preset string
}

var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runProgram = func(m tea.Model) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}
)

func newEditCmd(flags *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Launch the interactive playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.editor, "editor", "e", effects.EditorGradient, "Editor to open (gradient, border, box-shadow, text-shadow)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Preset to start from")

	return cmd
}

func runEdit(cmd *cobra.Command, flags *rootFlags, opts *editOptions) error {
	if !isTerminal() {
		return newCommandError("launch playground", "standard output is not a terminal",
			errors.New("interactive mode requires a TTY"),
			"Use 'cssplay gradient', 'cssplay border', 'cssplay box-shadow' or 'cssplay text-shadow' to print CSS instead.")
	}

	a, err := bootstrap(cmd, flags, logTerminalUI)
	if err != nil {
		return err
	}
	defer a.Close()

	editor := opts.editor
	if editor == "" {
		editor = effects.EditorGradient
	}
	if _, err := a.catalog.Names(editor); err != nil {
		return newCommandError("launch playground", fmt.Sprintf("opening editor %q", editor), err,
			"Choose one of gradient, border, box-shadow or text-shadow.")
	}

	ctx := cmd.Context()
	session := playground.New(playground.Options{
		Catalog:   a.catalog,
		Logger:    a.log,
		Clipboard: clipboard.System{},
	})
	if opts.preset != "" {
		if err := session.ApplyPreset(ctx, editor, opts.preset); err != nil {
			return newCommandError("launch playground", fmt.Sprintf("applying preset %q", opts.preset), err,
				fmt.Sprintf("Run 'cssplay presets %s' to list available presets.", editor))
		}
	}

	a.log.WithFields(map[string]any{"editor": editor}).Info("launching playground")
	m := tui.NewModel(tui.Options{
		Context:      ctx,
		Session:      session,
		Editor:       editor,
		CopyFeedback: a.cfg.CopyFeedback,
	})
	if err := runProgram(m); err != nil {
		a.log.Error(err, "playground failed")
		return newCommandError("run playground", "running the terminal UI", err, "Retry in a terminal that supports the alternate screen.")
	}
	a.log.Info("playground closed")
	return nil
}
