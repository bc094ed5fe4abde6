// Package presets holds the named starting configurations of every editor.
// The built-in tables are embedded as YAML; a user file with the same layout
// may add entries or override them by name.
package presets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/gradient"
	"github.com/alexisbeaulieu97/cssplay/internal/validation"
	cssplayerrors "github.com/alexisbeaulieu97/cssplay/pkg/errors"
)

//go:embed presets.yaml
var builtin []byte

// BuiltinPath names the embedded catalog in errors.
const BuiltinPath = "<builtin>/presets.yaml"

var (
	// ErrUnknownEditor is wrapped by PresetError for editors the catalog does
	// not know.
	ErrUnknownEditor = errors.New("unknown editor")
	// ErrUnknownPreset is wrapped by PresetError for missing preset names.
	ErrUnknownPreset = errors.New("unknown preset")
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// GradientPreset is a named gradient document.
type GradientPreset struct {
	Name   string      `yaml:"name" json:"name" validate:"required"`
	Layers []LayerSpec `yaml:"layers" json:"layers" validate:"min=1,dive"`
}

// BorderPreset is a named border record.
type BorderPreset struct {
	Name           string `yaml:"name" json:"name" validate:"required"`
	effects.Border `yaml:",inline"`
}

// BoxShadowPreset is a named box-shadow record.
type BoxShadowPreset struct {
	Name              string `yaml:"name" json:"name" validate:"required"`
	effects.BoxShadow `yaml:",inline"`
}

// TextShadowPreset is a named text-shadow record.
type TextShadowPreset struct {
	Name               string `yaml:"name" json:"name" validate:"required"`
	effects.TextShadow `yaml:",inline"`
}

// File is the on-disk catalog layout.
type File struct {
	Gradient   []GradientPreset   `yaml:"gradient" json:"gradient" validate:"dive"`
	Border     []BorderPreset     `yaml:"border" json:"border" validate:"dive"`
	BoxShadow  []BoxShadowPreset  `yaml:"box-shadow" json:"box-shadow" validate:"dive"`
	TextShadow []TextShadowPreset `yaml:"text-shadow" json:"text-shadow" validate:"dive"`
}

// Parse decodes and validates a catalog. path is only used in errors.
func Parse(path string, data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, cssplayerrors.NewParseError(path, extractLine(err), err)
	}
	if err := validation.Struct("presets", &f); err != nil {
		return nil, err
	}
	for _, p := range f.Gradient {
		if _, err := (DocumentSpec{Layers: p.Layers}).Build(); err != nil {
			return nil, cssplayerrors.NewValidationError("presets.gradient."+p.Name, err.Error(), err)
		}
	}
	f.normalize()
	return &f, nil
}

// Load reads and parses a catalog file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cssplayerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

func (f *File) normalize() {
	for i := range f.Border {
		f.Border[i].Border.Normalize()
	}
	for i := range f.BoxShadow {
		f.BoxShadow[i].BoxShadow.Normalize()
	}
	for i := range f.TextShadow {
		f.TextShadow[i].TextShadow.Normalize()
		f.TextShadow[i].Text = ""
	}
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// Catalog is the merged, ordered set of presets. It is safe for concurrent
// use.
type Catalog struct {
	mu         sync.RWMutex
	gradient   []GradientPreset
	border     []BorderPreset
	boxShadow  []BoxShadowPreset
	textShadow []TextShadowPreset
}

// NewCatalog returns a catalog holding the embedded tables.
func NewCatalog() (*Catalog, error) {
	f, err := Parse(BuiltinPath, builtin)
	if err != nil {
		return nil, fmt.Errorf("builtin presets: %w", err)
	}
	c := &Catalog{}
	c.Merge(f)
	return c, nil
}

// Default returns the embedded catalog and panics if it is malformed.
func Default() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog returns the embedded catalog merged with the user file at
// path. An empty path yields the embedded catalog.
func LoadCatalog(path string) (*Catalog, error) {
	c, err := NewCatalog()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.Merge(f)
	return c, nil
}

// Merge adds the presets of f. Entries whose name already exists replace
// the old entry in place; new names are appended.
func (c *Catalog) Merge(f *File) {
	if f == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gradient = merge(c.gradient, f.Gradient, func(p GradientPreset) string { return p.Name })
	c.border = merge(c.border, f.Border, func(p BorderPreset) string { return p.Name })
	c.boxShadow = merge(c.boxShadow, f.BoxShadow, func(p BoxShadowPreset) string { return p.Name })
	c.textShadow = merge(c.textShadow, f.TextShadow, func(p TextShadowPreset) string { return p.Name })
}

func merge[T any](dst, src []T, name func(T) string) []T {
	for _, p := range src {
		replaced := false
		for i := range dst {
			if name(dst[i]) == name(p) {
				dst[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			dst = append(dst, p)
		}
	}
	return dst
}

func find[T any](list []T, name string, key func(T) string) (T, bool) {
	for _, p := range list {
		if key(p) == name {
			return p, true
		}
	}
	var zero T
	return zero, false
}

// Names lists the preset names of editor in catalog order.
func (c *Catalog) Names(editor string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var names []string
	switch editor {
	case effects.EditorGradient:
		for _, p := range c.gradient {
			names = append(names, p.Name)
		}
	case effects.EditorBorder:
		for _, p := range c.border {
			names = append(names, p.Name)
		}
	case effects.EditorBoxShadow:
		for _, p := range c.boxShadow {
			names = append(names, p.Name)
		}
	case effects.EditorTextShadow:
		for _, p := range c.textShadow {
			names = append(names, p.Name)
		}
	default:
		return nil, cssplayerrors.NewPresetError(editor, "", ErrUnknownEditor)
	}
	return names, nil
}

// Gradient returns the layers of the named gradient preset.
func (c *Catalog) Gradient(name string) ([]gradient.Layer, error) {
	c.mu.RLock()
	p, ok := find(c.gradient, name, func(p GradientPreset) string { return p.Name })
	c.mu.RUnlock()
	if !ok {
		return nil, cssplayerrors.NewPresetError(effects.EditorGradient, name, ErrUnknownPreset)
	}
	layers, err := (DocumentSpec{Layers: p.Layers}).Build()
	if err != nil {
		return nil, cssplayerrors.NewPresetError(effects.EditorGradient, name, err)
	}
	return layers, nil
}

// Border returns the named border preset.
func (c *Catalog) Border(name string) (effects.Border, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := find(c.border, name, func(p BorderPreset) string { return p.Name })
	if !ok {
		return effects.Border{}, cssplayerrors.NewPresetError(effects.EditorBorder, name, ErrUnknownPreset)
	}
	return p.Border, nil
}

// BoxShadow returns the named box-shadow preset.
func (c *Catalog) BoxShadow(name string) (effects.BoxShadow, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := find(c.boxShadow, name, func(p BoxShadowPreset) string { return p.Name })
	if !ok {
		return effects.BoxShadow{}, cssplayerrors.NewPresetError(effects.EditorBoxShadow, name, ErrUnknownPreset)
	}
	return p.BoxShadow, nil
}

// TextShadow returns the named text-shadow preset. Its Text is empty.
func (c *Catalog) TextShadow(name string) (effects.TextShadow, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := find(c.textShadow, name, func(p TextShadowPreset) string { return p.Name })
	if !ok {
		return effects.TextShadow{}, cssplayerrors.NewPresetError(effects.EditorTextShadow, name, ErrUnknownPreset)
	}
	return p.TextShadow, nil
}

// Lookup returns the stored preset value for editor/name, suitable for
// encoding: a GradientPreset, BorderPreset, BoxShadowPreset or
// TextShadowPreset.
func (c *Catalog) Lookup(editor, name string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		out any
		ok  bool
	)
	switch editor {
	case effects.EditorGradient:
		out, ok = find(c.gradient, name, func(p GradientPreset) string { return p.Name })
	case effects.EditorBorder:
		out, ok = find(c.border, name, func(p BorderPreset) string { return p.Name })
	case effects.EditorBoxShadow:
		out, ok = find(c.boxShadow, name, func(p BoxShadowPreset) string { return p.Name })
	case effects.EditorTextShadow:
		out, ok = find(c.textShadow, name, func(p TextShadowPreset) string { return p.Name })
	default:
		return nil, cssplayerrors.NewPresetError(editor, name, ErrUnknownEditor)
	}
	if !ok {
		return nil, cssplayerrors.NewPresetError(editor, name, ErrUnknownPreset)
	}
	return out, nil
}
