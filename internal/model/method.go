package model

import (
	"naum/internal/common"
	"naum/modifier"
)

// VoidType is the return type of methods built without one.
const VoidType = "void"

// MethodInfo describes a declared method.
//
// ArgumentTypes keeps declaration order because overload resolution depends
// on it. Exceptions are sorted because their order carries no meaning.
type MethodInfo struct {
	member
	returnType     string
	argumentTypes  string
	exceptions     []string
	typeParameters string
}

func (m *MethodInfo) ReturnType() string     { return m.returnType }
func (m *MethodInfo) ArgumentTypes() string  { return m.argumentTypes }
func (m *MethodInfo) TypeParameters() string { return m.typeParameters }

// Exceptions returns the declared exceptions, sorted. Callers must not modify it.
func (m *MethodInfo) Exceptions() []string { return m.exceptions }

// Signature returns name(argumentTypes), the matching key for overloads.
func (m *MethodInfo) Signature() string {
	return m.name + "(" + m.argumentTypes + ")"
}

// IsAbstract reports whether the method has no body.
func (m *MethodInfo) IsAbstract() bool {
	return m.modifiers.Has(modifier.Abstract)
}

// Content returns the canonical content. The name is identity and is not part of it.
func (m *MethodInfo) Content() (string, error) {
	w := newContentWriter(tagMethod, uint32(m.modifiers))
	w.annotations(m.annotations)
	w.text("P", m.typeParameters)
	w.text("R", m.returnType)
	w.text("G", m.argumentTypes)
	w.list("E", m.exceptions)

	return w.finish()
}

// Equal compares name and content.
func (m *MethodInfo) Equal(o *MethodInfo) bool {
	return equalContent(m, o, m != nil && o != nil && m.name == o.name)
}

// MethodBuilder builds a MethodInfo.
type MethodBuilder struct {
	name           string
	modifiers      modifier.Modifiers
	returnType     string
	argumentTypes  string
	exceptions     []string
	typeParameters string
	annotations    []*AnnotationInfo
}

// NewMethod starts a method builder. The return type defaults to void.
func NewMethod() *MethodBuilder {
	return &MethodBuilder{returnType: VoidType}
}

func (b *MethodBuilder) Name(name string) *MethodBuilder {
	b.name = name
	return b
}

func (b *MethodBuilder) Modifiers(m modifier.Modifiers) *MethodBuilder {
	b.modifiers = m
	return b
}

func (b *MethodBuilder) ReturnType(typ string) *MethodBuilder {
	b.returnType = common.NormalizeName(typ)
	return b
}

// ArgumentTypes sets the comma-joined parameter types, in declaration order.
func (b *MethodBuilder) ArgumentTypes(types string) *MethodBuilder {
	b.argumentTypes = common.NormalizeName(types)
	return b
}

func (b *MethodBuilder) Exceptions(exceptions ...string) *MethodBuilder {
	b.exceptions = exceptions
	return b
}

func (b *MethodBuilder) TypeParameters(params string) *MethodBuilder {
	b.typeParameters = common.NormalizeName(params)
	return b
}

func (b *MethodBuilder) Annotation(a *AnnotationInfo) *MethodBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Build validates and returns the method.
func (b *MethodBuilder) Build() (*MethodInfo, error) {
	if b.name == "" {
		return nil, &ValidationError{Entity: "method", Field: "name"}
	}
	if b.name == ConstructorName {
		return nil, &ValidationError{Entity: "method", Field: "name (" + ConstructorName + " is reserved for constructors)"}
	}
	m := &MethodInfo{
		member:         member{name: b.name, modifiers: b.modifiers},
		returnType:     b.returnType,
		argumentTypes:  b.argumentTypes,
		exceptions:     normalizeExceptions(b.exceptions),
		typeParameters: b.typeParameters,
	}
	for _, a := range b.annotations {
		if err := m.AddAnnotation(a); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// normalizeExceptions converts separators and sorts; duplicates are kept.
func normalizeExceptions(exceptions []string) []string {
	return common.SortedCopy(common.NormalizeNames(exceptions))
}
