package model

import (
	"maps"
	"slices"
)

// ModelSet maps qualified type names to sealed types. It is one build's
// snapshot as consumed by the comparison engine.
type ModelSet map[string]*TypeInfo

// NewModelSet builds a set from sealed types.
func NewModelSet(types ...*TypeInfo) (ModelSet, error) {
	s := make(ModelSet, len(types))
	for _, t := range types {
		if err := s.Add(t); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add inserts a sealed type. Duplicate names are rejected.
func (s ModelSet) Add(t *TypeInfo) error {
	if err := checkMember(t); err != nil {
		return err
	}
	if _, dup := s[t.name]; dup {
		return integrityErr(t.name, "duplicate type in model set")
	}
	s[t.name] = t

	return nil
}

// Lookup returns the type with the given qualified name.
func (s ModelSet) Lookup(name string) (*TypeInfo, bool) {
	t, ok := s[name]
	return t, ok
}

// Names returns the qualified names in ascending order.
func (s ModelSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Validate checks every entry is named, sealed and keyed by its own name.
func (s ModelSet) Validate() error {
	for _, key := range s.Names() {
		t := s[key]
		if err := checkMember(t); err != nil {
			return err
		}
		if t.name != key {
			return integrityErr(key, "keyed under a different name than %q", t.name)
		}
	}

	return nil
}

func checkMember(t *TypeInfo) error {
	switch {
	case t == nil:
		return integrityErr("", "nil type")
	case t.name == "":
		return integrityErr("", "type without a name")
	case !t.frozen:
		return integrityErr(t.name, "type is not sealed")
	default:
		return nil
	}
}
