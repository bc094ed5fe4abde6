// Package playground ties the editors together into one editing session:
// it owns the gradient document and the effect records, applies presets,
// and publishes a change event after every mutation so projections can
// re-render.
package playground

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/cssplay/internal/clipboard"
	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/events"
	"github.com/alexisbeaulieu97/cssplay/internal/gradient"
	"github.com/alexisbeaulieu97/cssplay/internal/logger"
	"github.com/alexisbeaulieu97/cssplay/internal/presets"
	"github.com/alexisbeaulieu97/cssplay/internal/preview"
)

// Options wires a Session. Zero fields fall back to the embedded catalog, a
// silent publisher, a no-op logger and the system clipboard.
type Options struct {
	Catalog   *presets.Catalog
	Publisher *events.Publisher
	Logger    *logger.Logger
	Clipboard clipboard.Copier
}

// Session is the state of one playground. It is not safe for concurrent
// use; front ends drive it from a single goroutine.
type Session struct {
	doc        *gradient.Document
	border     effects.Border
	boxShadow  effects.BoxShadow
	textShadow effects.TextShadow

	catalog   *presets.Catalog
	publisher *events.Publisher
	logger    *logger.Logger
	clipboard clipboard.Copier
}

// New returns a session with every editor at its default state.
func New(opts Options) *Session {
	s := &Session{
		doc:        gradient.New(),
		border:     effects.DefaultBorder(),
		boxShadow:  effects.DefaultBoxShadow(),
		textShadow: effects.DefaultTextShadow(),
		catalog:    opts.Catalog,
		publisher:  opts.Publisher,
		logger:     opts.Logger,
		clipboard:  opts.Clipboard,
	}
	if s.catalog == nil {
		s.catalog = presets.Default()
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	if s.publisher == nil {
		s.publisher = events.NewPublisher(s.logger)
	}
	if s.clipboard == nil {
		s.clipboard = clipboard.System{}
	}
	return s
}

// Catalog returns the preset catalog the session applies from.
func (s *Session) Catalog() *presets.Catalog { return s.catalog }

// Publisher returns the publisher projections subscribe to.
func (s *Session) Publisher() *events.Publisher { return s.publisher }

// Gradient returns a snapshot of the gradient document.
func (s *Session) Gradient() *gradient.Document { return s.doc.Clone() }

// Border returns a copy of the border record.
func (s *Session) Border() effects.Border { return s.border }

// BoxShadow returns a copy of the box-shadow record.
func (s *Session) BoxShadow() effects.BoxShadow { return s.boxShadow }

// TextShadow returns a copy of the text-shadow record.
func (s *Session) TextShadow() effects.TextShadow { return s.textShadow }

// SetBorder replaces the border record after clamping it.
func (s *Session) SetBorder(ctx context.Context, b effects.Border) {
	b.Normalize()
	s.border = b
	s.changed(ctx, effects.EditorBorder, map[string]any{"replace": true})
}

// SetBoxShadow replaces the box-shadow record after clamping it.
func (s *Session) SetBoxShadow(ctx context.Context, b effects.BoxShadow) {
	b.Normalize()
	s.boxShadow = b
	s.changed(ctx, effects.EditorBoxShadow, map[string]any{"replace": true})
}

// SetTextShadow replaces the text-shadow record after clamping it.
func (s *Session) SetTextShadow(ctx context.Context, t effects.TextShadow) {
	t.Normalize()
	s.textShadow = t
	s.changed(ctx, effects.EditorTextShadow, map[string]any{"replace": true})
}

// Dispatch applies a gradient command. A change event is published only
// when the document actually changed.
func (s *Session) Dispatch(ctx context.Context, cmd gradient.Command) bool {
	if !gradient.Reduce(s.doc, cmd) {
		return false
	}
	s.changed(ctx, effects.EditorGradient, map[string]any{"command": gradient.CommandName(cmd)})
	return true
}

// LoadGradient replaces the gradient document with the given layers.
func (s *Session) LoadGradient(ctx context.Context, layers []gradient.Layer) bool {
	return s.Dispatch(ctx, gradient.ReplaceLayers{Layers: layers})
}

func (s *Session) effect(editor string) (effects.Editor, error) {
	switch editor {
	case effects.EditorBorder:
		return &s.border, nil
	case effects.EditorBoxShadow:
		return &s.boxShadow, nil
	case effects.EditorTextShadow:
		return &s.textShadow, nil
	default:
		return nil, fmt.Errorf("%w: %q", presets.ErrUnknownEditor, editor)
	}
}

// Fields describes the controls of an effect editor.
func (s *Session) Fields(editor string) ([]effects.Field, error) {
	e, err := s.effect(editor)
	if err != nil {
		return nil, err
	}
	return e.Fields(), nil
}

// Field returns the current text of an effect editor's control.
func (s *Session) Field(editor, key string) (string, bool) {
	e, err := s.effect(editor)
	if err != nil {
		return "", false
	}
	return e.Get(key)
}

// SetField applies control text to an effect editor. Rejected input leaves
// the record untouched and publishes nothing.
func (s *Session) SetField(ctx context.Context, editor, key, value string) bool {
	e, err := s.effect(editor)
	if err != nil {
		return false
	}
	before := e.CSS() + e.Preview().String()
	if !e.Set(key, value) {
		return false
	}
	if e.CSS()+e.Preview().String() == before {
		return true
	}
	s.changed(ctx, editor, map[string]any{"field": key})
	return true
}

// ApplyPreset replaces the editor's state with the named preset. The
// text-shadow preview text survives preset changes.
func (s *Session) ApplyPreset(ctx context.Context, editor, name string) error {
	switch editor {
	case effects.EditorGradient:
		layers, err := s.catalog.Gradient(name)
		if err != nil {
			return err
		}
		if !gradient.Reduce(s.doc, gradient.ReplaceLayers{Layers: layers}) {
			return fmt.Errorf("preset %s/%s: document rejected", editor, name)
		}
	case effects.EditorBorder:
		p, err := s.catalog.Border(name)
		if err != nil {
			return err
		}
		s.border = p
	case effects.EditorBoxShadow:
		p, err := s.catalog.BoxShadow(name)
		if err != nil {
			return err
		}
		s.boxShadow = p
	case effects.EditorTextShadow:
		p, err := s.catalog.TextShadow(name)
		if err != nil {
			return err
		}
		s.textShadow.Apply(p)
	default:
		_, err := s.catalog.Names(editor)
		return err
	}

	s.publisher.Publish(ctx, events.Event{
		Type:    events.PresetApplied,
		Editor:  editor,
		Payload: map[string]any{"preset": name},
	})
	s.changed(ctx, editor, map[string]any{"preset": name})
	return nil
}

// CSS returns the generated CSS text of an editor.
func (s *Session) CSS(editor string) (string, error) {
	if editor == effects.EditorGradient {
		return gradient.SerializeDocument(s.doc), nil
	}
	e, err := s.effect(editor)
	if err != nil {
		return "", err
	}
	return e.CSS(), nil
}

// Preview returns the preview style of an editor.
func (s *Session) Preview(editor string) (preview.Style, error) {
	if editor == effects.EditorGradient {
		return gradient.PreviewStyle(s.doc), nil
	}
	e, err := s.effect(editor)
	if err != nil {
		return nil, err
	}
	return e.Preview(), nil
}

// Copy puts the editor's CSS on the clipboard. Failure is reported through
// a css.copy_failed event and the returned error; it never changes state.
func (s *Session) Copy(ctx context.Context, editor string) error {
	css, err := s.CSS(editor)
	if err != nil {
		return err
	}
	if err := s.clipboard.Copy(css); err != nil {
		s.logger.WithFields(map[string]any{"editor": editor, "error": err.Error()}).Warn("copy to clipboard failed")
		s.publisher.Publish(ctx, events.Event{
			Type:    events.CSSCopyFailed,
			Editor:  editor,
			Payload: map[string]any{"error": err.Error()},
		})
		return err
	}
	s.publisher.Publish(ctx, events.Event{
		Type:    events.CSSCopied,
		Editor:  editor,
		Payload: map[string]any{"bytes": len(css)},
	})
	return nil
}

func (s *Session) changed(ctx context.Context, editor string, payload map[string]any) {
	css, _ := s.CSS(editor)
	payload["css"] = css
	s.publisher.Publish(ctx, events.Event{Type: events.CSSChanged, Editor: editor, Payload: payload})
}
