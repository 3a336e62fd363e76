package model

import (
	"naum/internal/common"
	"naum/modifier"
)

// InnerClassRef names a nested type. The nested type itself is a separate
// top-level TypeInfo; resolve it through a ModelSet when needed.
type InnerClassRef struct {
	member
}

// Content returns the canonical content.
func (r *InnerClassRef) Content() (string, error) {
	w := newContentWriter(tagInnerClass, uint32(r.modifiers))
	w.annotations(r.annotations)

	return w.finish()
}

// Equal compares name and content.
func (r *InnerClassRef) Equal(o *InnerClassRef) bool {
	return equalContent(r, o, r != nil && o != nil && r.name == o.name)
}

// Resolve looks the referenced type up in a model set.
func (r *InnerClassRef) Resolve(set ModelSet) (*TypeInfo, bool) {
	return set.Lookup(r.name)
}

// InnerClassBuilder builds an InnerClassRef.
type InnerClassBuilder struct {
	name      string
	modifiers modifier.Modifiers
}

// NewInnerClass starts an inner class reference builder.
func NewInnerClass() *InnerClassBuilder {
	return &InnerClassBuilder{}
}

func (b *InnerClassBuilder) Name(name string) *InnerClassBuilder {
	b.name = common.NormalizeName(name)
	return b
}

func (b *InnerClassBuilder) Modifiers(m modifier.Modifiers) *InnerClassBuilder {
	b.modifiers = m
	return b
}

// Build validates and returns the reference.
func (b *InnerClassBuilder) Build() (*InnerClassRef, error) {
	if b.name == "" {
		return nil, &ValidationError{Entity: "inner class", Field: "name"}
	}

	return &InnerClassRef{member: member{name: b.name, modifiers: b.modifiers}}, nil
}
