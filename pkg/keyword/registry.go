/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package keyword

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/agnivade/levenshtein"
)

// suggestMaxDistance bounds how far a misspelling may be from a known
// directive before Suggest gives up.
const suggestMaxDistance = 3

// Definition declares one directive schema. It is the construction-time
// (and YAML) representation of a Keyword, before enum patterns are
// compiled.
type Definition struct {
	// Name is the directive name as it appears in configuration files.
	Name string `json:"name" yaml:"name"`

	// MinArgs is the number of mandatory arguments. The special value -1
	// marks variable, unchecked arity.
	MinArgs int `json:"minArgs" yaml:"minArgs"`

	// ArgTypes lists the value type per argument position. Positions
	// beyond MinArgs are optional.
	ArgTypes []ValueType `json:"argTypes,omitempty" yaml:"argTypes,omitempty"`

	// AllowedValues lists, per argument position, the anchored patterns a
	// token of type enum must match. Positions of other types hold empty
	// sets. Aligned with ArgTypes.
	AllowedValues [][]string `json:"allowedValues,omitempty" yaml:"allowedValues,omitempty"`
}

// Keyword is the compiled, immutable schema of one directive.
type Keyword struct {
	Name          string      `json:"name" yaml:"name"`
	MinArgs       int         `json:"minArgs" yaml:"minArgs"`
	ArgTypes      []ValueType `json:"argTypes,omitempty" yaml:"argTypes,omitempty"`
	AllowedValues [][]string  `json:"allowedValues,omitempty" yaml:"allowedValues,omitempty"`

	patterns [][]*regexp.Regexp
}

// HasEnumValues reports whether the argument position (0-based) carries at
// least one allowed pattern.
func (k *Keyword) HasEnumValues(pos int) bool {
	return pos < len(k.patterns) && len(k.patterns[pos]) > 0
}

// MatchEnum reports whether token fully matches one of the allowed
// patterns at the argument position (0-based).
func (k *Keyword) MatchEnum(pos int, token string) bool {
	if pos >= len(k.patterns) {
		return false
	}
	for _, re := range k.patterns[pos] {
		if re.MatchString(token) {
			return true
		}
	}
	return false
}

// Registry maps directive names to their schemas. It is built once and
// never mutated, so it is safe for concurrent read access.
type Registry struct {
	keywords map[string]*Keyword
}

// New compiles definitions into a Registry. A later definition with the
// same name replaces an earlier one, which is how extension files override
// builtin directives.
func New(defs ...Definition) (*Registry, error) {
	r := &Registry{keywords: make(map[string]*Keyword, len(defs))}
	for _, def := range defs {
		kw, err := compile(def)
		if err != nil {
			return nil, err
		}
		r.keywords[def.Name] = kw
	}
	return r, nil
}

func compile(def Definition) (*Keyword, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("keyword definition with empty name")
	}
	if def.MinArgs < -1 {
		return nil, fmt.Errorf("keyword %q: minArgs must be >= -1, got %d", def.Name, def.MinArgs)
	}
	if len(def.AllowedValues) > len(def.ArgTypes) {
		return nil, fmt.Errorf("keyword %q: %d allowed-value sets for %d argument positions",
			def.Name, len(def.AllowedValues), len(def.ArgTypes))
	}

	kw := &Keyword{
		Name:          def.Name,
		MinArgs:       def.MinArgs,
		ArgTypes:      append([]ValueType(nil), def.ArgTypes...),
		AllowedValues: make([][]string, 0, len(def.AllowedValues)),
		patterns:      make([][]*regexp.Regexp, len(def.ArgTypes)),
	}

	for pos, t := range def.ArgTypes {
		if !t.IsValid() {
			return nil, fmt.Errorf("keyword %q: unknown value type %q, supported types: %v",
				def.Name, t, SupportedValueTypes())
		}
		if pos >= len(def.AllowedValues) {
			continue
		}
		vals := def.AllowedValues[pos]
		kw.AllowedValues = append(kw.AllowedValues, append([]string(nil), vals...))
		for _, val := range vals {
			re, err := regexp.Compile("^" + val + "$")
			if err != nil {
				return nil, fmt.Errorf("keyword %q: invalid enum pattern %q: %w", def.Name, val, err)
			}
			kw.patterns[pos] = append(kw.patterns[pos], re)
		}
	}

	return kw, nil
}

// Lookup returns the schema for a directive name.
func (r *Registry) Lookup(name string) (*Keyword, bool) {
	kw, ok := r.keywords[name]
	return kw, ok
}

// Len returns the number of registered directives.
func (r *Registry) Len() int {
	return len(r.keywords)
}

// Names returns all registered directive names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.keywords))
	for name := range r.keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keywords returns all schemas sorted by directive name.
func (r *Registry) Keywords() []*Keyword {
	kws := make([]*Keyword, 0, len(r.keywords))
	for _, name := range r.Names() {
		kws = append(kws, r.keywords[name])
	}
	return kws
}

// Suggest returns the registered directive closest to name by edit
// distance, or the empty string when nothing is plausibly close.
func (r *Registry) Suggest(name string) string {
	best := ""
	bestDist := suggestMaxDistance + 1
	for _, candidate := range r.Names() {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}
