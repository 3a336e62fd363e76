package model

import (
	"naum/internal/common"
)

// NamedValue is one element of an annotation usage.
type NamedValue struct {
	Name  string
	Value AnnotationValue
}

// AnnotationInfo is one annotation usage attached to a type or member.
// Values keep declaration order, which is part of the canonical content.
type AnnotationInfo struct {
	name   string
	values []NamedValue
}

// Name returns the qualified annotation type name.
func (a *AnnotationInfo) Name() string { return a.name }

// Values returns the element values in declaration order. Callers must not modify it.
func (a *AnnotationInfo) Values() []NamedValue { return a.values }

// Value looks up an element by name.
func (a *AnnotationInfo) Value(name string) (AnnotationValue, bool) {
	for _, v := range a.values {
		if v.Name == name {
			return v.Value, true
		}
	}

	return nil, false
}

// Content returns the canonical content.
func (a *AnnotationInfo) Content() (string, error) {
	w := newContentWriter(tagAnnotation, 0)
	w.text("N", a.name)
	if len(a.values) > 0 {
		items := make([]string, len(a.values))
		for i, v := range a.values {
			c, err := ValueContent(v.Value)
			if err != nil {
				return "", err
			}
			items[i] = v.Name + "=" + c
		}
		w.list("V", items)
	}

	return w.finish()
}

// Equal compares name and content.
func (a *AnnotationInfo) Equal(o *AnnotationInfo) bool {
	return equalContent(a, o, a != nil && o != nil && a.name == o.name)
}

// AnnotationBuilder builds an AnnotationInfo.
type AnnotationBuilder struct {
	name   string
	values []NamedValue
	err    error
}

// NewAnnotation starts an annotation builder.
func NewAnnotation() *AnnotationBuilder {
	return &AnnotationBuilder{}
}

func (b *AnnotationBuilder) Name(name string) *AnnotationBuilder {
	b.name = common.NormalizeName(name)
	return b
}

// Value sets an element from any value accepted by ValueOf.
// Setting the same element twice replaces it in place.
func (b *AnnotationBuilder) Value(name string, v any) *AnnotationBuilder {
	av, err := ValueOf(v)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}

	return b.set(name, av)
}

func (b *AnnotationBuilder) StringValue(name, text string) *AnnotationBuilder {
	return b.set(name, StringValue{Text: text})
}

func (b *AnnotationBuilder) ClassValue(name, descriptor string) *AnnotationBuilder {
	return b.set(name, NewClassValue(descriptor))
}

func (b *AnnotationBuilder) EnumValue(name, enumType, constant string) *AnnotationBuilder {
	return b.set(name, NewEnumValue(enumType, constant))
}

func (b *AnnotationBuilder) AnnotationValue(name string, nested *AnnotationInfo) *AnnotationBuilder {
	return b.Value(name, nested)
}

func (b *AnnotationBuilder) ArrayValue(name string, elements ...AnnotationValue) *AnnotationBuilder {
	return b.set(name, NewArrayValue(elements...))
}

func (b *AnnotationBuilder) set(name string, v AnnotationValue) *AnnotationBuilder {
	for i := range b.values {
		if b.values[i].Name == name {
			b.values[i].Value = v
			return b
		}
	}
	b.values = append(b.values, NamedValue{Name: name, Value: v})

	return b
}

// Build validates and returns the annotation.
func (b *AnnotationBuilder) Build() (*AnnotationInfo, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.name == "" {
		return nil, &ValidationError{Entity: "annotation", Field: "name"}
	}

	values := make([]NamedValue, len(b.values))
	copy(values, b.values)

	return &AnnotationInfo{name: b.name, values: values}, nil
}
