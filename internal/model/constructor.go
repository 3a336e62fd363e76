package model

import (
	"naum/internal/common"
	"naum/modifier"
)

// ConstructorInfo describes a declared constructor. Its name is always
// ConstructorName; it is matched by argument types alone.
type ConstructorInfo struct {
	member
	argumentTypes string
	exceptions    []string
}

func (c *ConstructorInfo) ArgumentTypes() string { return c.argumentTypes }

// Exceptions returns the declared exceptions, sorted. Callers must not modify it.
func (c *ConstructorInfo) Exceptions() []string { return c.exceptions }

// Signature returns <init>(argumentTypes).
func (c *ConstructorInfo) Signature() string {
	return ConstructorName + "(" + c.argumentTypes + ")"
}

// Content returns the canonical content: CT{D=..#A=[..]#R=<args>#E=[..]}.
func (c *ConstructorInfo) Content() (string, error) {
	w := newContentWriter(tagConstructor, uint32(c.modifiers))
	w.annotations(c.annotations)
	w.text("R", c.argumentTypes)
	w.list("E", c.exceptions)

	return w.finish()
}

// Equal compares content; every constructor shares the same name.
func (c *ConstructorInfo) Equal(o *ConstructorInfo) bool {
	return equalContent(c, o, c != nil && o != nil)
}

// ConstructorBuilder builds a ConstructorInfo.
type ConstructorBuilder struct {
	modifiers     modifier.Modifiers
	argumentTypes string
	exceptions    []string
	annotations   []*AnnotationInfo
}

// NewConstructor starts a constructor builder.
func NewConstructor() *ConstructorBuilder {
	return &ConstructorBuilder{}
}

func (b *ConstructorBuilder) Modifiers(m modifier.Modifiers) *ConstructorBuilder {
	b.modifiers = m
	return b
}

// ArgumentTypes sets the comma-joined parameter types; empty means no parameters.
func (b *ConstructorBuilder) ArgumentTypes(types string) *ConstructorBuilder {
	b.argumentTypes = common.NormalizeName(types)
	return b
}

func (b *ConstructorBuilder) Exceptions(exceptions ...string) *ConstructorBuilder {
	b.exceptions = exceptions
	return b
}

func (b *ConstructorBuilder) Annotation(a *AnnotationInfo) *ConstructorBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Build returns the constructor. The name is fixed, so only nil
// annotations can make it fail.
func (b *ConstructorBuilder) Build() (*ConstructorInfo, error) {
	c := &ConstructorInfo{
		member:        member{name: ConstructorName, modifiers: b.modifiers},
		argumentTypes: b.argumentTypes,
		exceptions:    normalizeExceptions(b.exceptions),
	}
	for _, a := range b.annotations {
		if err := c.AddAnnotation(a); err != nil {
			return nil, err
		}
	}

	return c, nil
}
