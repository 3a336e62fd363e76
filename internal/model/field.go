package model

import (
	"naum/internal/common"
	"naum/modifier"
)

// FieldInfo describes a declared field.
type FieldInfo struct {
	member
	typ string
}

// Type returns the field's declared type.
func (f *FieldInfo) Type() string { return f.typ }

// Content returns the canonical content. The name is identity and is not part of it.
func (f *FieldInfo) Content() (string, error) {
	w := newContentWriter(tagField, uint32(f.modifiers))
	w.annotations(f.annotations)
	w.text("T", f.typ)

	return w.finish()
}

// Equal compares name and content.
func (f *FieldInfo) Equal(o *FieldInfo) bool {
	return equalContent(f, o, f != nil && o != nil && f.name == o.name)
}

// FieldBuilder builds a FieldInfo.
type FieldBuilder struct {
	name        string
	typ         string
	modifiers   modifier.Modifiers
	annotations []*AnnotationInfo
}

// NewField starts a field builder.
func NewField() *FieldBuilder {
	return &FieldBuilder{}
}

func (b *FieldBuilder) Name(name string) *FieldBuilder {
	b.name = name
	return b
}

func (b *FieldBuilder) Type(typ string) *FieldBuilder {
	b.typ = common.NormalizeName(typ)
	return b
}

func (b *FieldBuilder) Modifiers(m modifier.Modifiers) *FieldBuilder {
	b.modifiers = m
	return b
}

func (b *FieldBuilder) Annotation(a *AnnotationInfo) *FieldBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Build validates and returns the field.
func (b *FieldBuilder) Build() (*FieldInfo, error) {
	if b.name == "" {
		return nil, &ValidationError{Entity: "field", Field: "name"}
	}
	f := &FieldInfo{member: member{name: b.name, modifiers: b.modifiers}, typ: b.typ}
	for _, a := range b.annotations {
		if err := f.AddAnnotation(a); err != nil {
			return nil, err
		}
	}

	return f, nil
}
