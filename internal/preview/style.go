// Package preview describes the style properties an editor applies to its
// preview surface.
package preview

import (
	"fmt"
	"sort"
	"strings"
)

// Style maps CSS property names (including custom properties such as
// --preview-bg) to values.
type Style map[string]string

// Get returns the value of prop, or "" when unset.
func (s Style) Get(prop string) string {
	if s == nil {
		return ""
	}
	return s[prop]
}

// Properties lists the property names in sorted order.
func (s Style) Properties() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the style as an inline declaration list.
func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Properties() {
		parts = append(parts, fmt.Sprintf("%s: %s;", k, s[k]))
	}
	return strings.Join(parts, " ")
}
