package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/playground"
	"github.com/alexisbeaulieu97/cssplay/internal/presets"
	"github.com/alexisbeaulieu97/cssplay/internal/preview"
	"github.com/alexisbeaulieu97/cssplay/internal/validation"
	cssplayerrors "github.com/alexisbeaulieu97/cssplay/pkg/errors"
)

const maxBodyBytes = 1 << 20

type cssResponse struct {
	Editor  string                `json:"editor"`
	CSS     string                `json:"css"`
	Preview preview.Style         `json:"preview"`
	Layers  *presets.DocumentSpec `json:"layers,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) session() *playground.Session {
	sess := playground.New(playground.Options{Catalog: s.catalog, Logger: s.logger})
	observeEvents(sess.Publisher())
	return sess
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListPresets(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string][]string, len(effects.Editors()))
	for _, editor := range effects.Editors() {
		names, err := s.catalog.Names(editor)
		if err != nil {
			s.writeError(w, err)
			return
		}
		out[editor] = names
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListEditorPresets(w http.ResponseWriter, r *http.Request) {
	names, err := s.catalog.Names(chi.URLParam(r, "editor"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Lookup(chi.URLParam(r, "editor"), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleGradientCSS renders a gradient document. The optional preset query
// parameter seeds the document; a posted document replaces it.
func (s *Server) handleGradientCSS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.session()

	if err := applyQueryPreset(ctx, sess, effects.EditorGradient, r); err != nil {
		s.writeError(w, err)
		return
	}

	var spec presets.DocumentSpec
	present, err := decodeBody(r, &spec)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if present {
		if err := validation.Struct("gradient", spec); err != nil {
			s.writeError(w, err)
			return
		}
		layers, err := spec.Build()
		if err != nil {
			s.writeError(w, cssplayerrors.NewValidationError("gradient.layers", err.Error(), err))
			return
		}
		sess.LoadGradient(ctx, layers)
	}

	layers := presets.SpecFromDocument(sess.Gradient())
	s.render(w, sess, effects.EditorGradient, &layers)
}

// handleEffectCSS renders one of the effect editors. A posted record is
// overlaid on the default (or preset) state and must validate.
func (s *Server) handleEffectCSS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	editor := chi.URLParam(r, "editor")
	sess := s.session()

	if _, err := sess.Fields(editor); err != nil {
		s.writeError(w, err)
		return
	}
	if err := applyQueryPreset(ctx, sess, editor, r); err != nil {
		s.writeError(w, err)
		return
	}

	var err error
	switch editor {
	case effects.EditorBorder:
		rec := sess.Border()
		err = overlay(r, &rec, func() { sess.SetBorder(ctx, rec) })
	case effects.EditorBoxShadow:
		rec := sess.BoxShadow()
		err = overlay(r, &rec, func() { sess.SetBoxShadow(ctx, rec) })
	case effects.EditorTextShadow:
		rec := sess.TextShadow()
		err = overlay(r, &rec, func() { sess.SetTextShadow(ctx, rec) })
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.render(w, sess, editor, nil)
}

func (s *Server) render(w http.ResponseWriter, sess *playground.Session, editor string, layers *presets.DocumentSpec) {
	css, err := sess.CSS(editor)
	if err != nil {
		s.writeError(w, err)
		return
	}
	style, err := sess.Preview(editor)
	if err != nil {
		s.writeError(w, err)
		return
	}
	MetricCSSRendered.WithLabelValues(editor).Inc()
	writeJSON(w, http.StatusOK, cssResponse{Editor: editor, CSS: css, Preview: style, Layers: layers})
}

func applyQueryPreset(ctx context.Context, sess *playground.Session, editor string, r *http.Request) error {
	name := r.URL.Query().Get("preset")
	if name == "" {
		return nil
	}
	return sess.ApplyPreset(ctx, editor, name)
}

// overlay decodes the request body over rec, validates the result and
// stores it through commit.
func overlay(r *http.Request, rec effects.Editor, commit func()) error {
	present, err := decodeBody(r, rec)
	if err != nil || !present {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	commit()
	return nil
}

// decodeBody decodes a JSON body into dst. An empty body is not an error
// and reports false.
func decodeBody(r *http.Request, dst any) (bool, error) {
	if r.Body == nil {
		return false, nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, &badRequest{err: err}
	}
	return true, nil
}

type badRequest struct {
	err error
}

func (e *badRequest) Error() string { return fmt.Sprintf("invalid request body: %v", e.err) }

func (e *badRequest) Unwrap() error { return e.err }

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		ve *cssplayerrors.ValidationError
		br *badRequest
	)
	switch {
	case errors.Is(err, presets.ErrUnknownEditor), errors.Is(err, presets.ErrUnknownPreset):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: ve.Field})
	case errors.As(err, &br):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.logger.Error(err, "request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
