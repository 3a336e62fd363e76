package model

import (
	"naum/modifier"
)

// ConstructorName is the reserved member name of constructors.
const ConstructorName = "<init>"

// member holds what every declared element shares. Annotations may be
// appended until the owning type is sealed.
type member struct {
	name        string
	modifiers   modifier.Modifiers
	annotations []*AnnotationInfo
	frozen      bool
}

// Name returns the member's identity.
func (m *member) Name() string { return m.name }

// Modifiers returns the access and property flags.
func (m *member) Modifiers() modifier.Modifiers { return m.modifiers }

// Annotations returns attached annotations in declaration order.
// Callers must not modify it.
func (m *member) Annotations() []*AnnotationInfo { return m.annotations }

// Annotation looks up an attached annotation by qualified name.
func (m *member) Annotation(name string) (*AnnotationInfo, bool) {
	for _, a := range m.annotations {
		if a.name == name {
			return a, true
		}
	}

	return nil, false
}

// AddAnnotation appends an annotation. It fails once the entity is frozen.
func (m *member) AddAnnotation(a *AnnotationInfo) error {
	if m.frozen {
		return integrityErr(m.name, "cannot add annotation %s: entity is sealed", nameOf(a))
	}
	if a == nil {
		return integrityErr(m.name, "cannot add nil annotation")
	}
	m.annotations = append(m.annotations, a)

	return nil
}

func (m *member) freeze() { m.frozen = true }

func nameOf(a *AnnotationInfo) string {
	if a == nil {
		return "<nil>"
	}

	return a.name
}

// equalContent compares canonical content once identity already matched.
func equalContent(a, b Entity, sameIdentity bool) bool {
	if !sameIdentity {
		return false
	}
	ca, err := a.Content()
	if err != nil {
		return false
	}
	cb, err := b.Content()
	if err != nil {
		return false
	}

	return ca == cb
}
