package model

import (
	"strconv"

	"naum/internal/common"
	"naum/modifier"
)

// Well-known supertypes used as builder defaults.
const (
	ObjectType = "java.lang.Object"
	EnumType   = "java.lang.Enum"
)

// TypeInfo is the structural model of one compiled type.
//
// It is created by a TypeBuilder, accretes members through the Add* methods
// in declaration order, and becomes immutable once Seal succeeds. Only a
// sealed TypeInfo has a digest and may be compared.
type TypeInfo struct {
	member
	kind           TypeKind
	superclass     string
	interfaces     []string
	typeParameters string
	version        int

	fields       []*FieldInfo
	methods      []*MethodInfo
	constructors []*ConstructorInfo
	innerClasses []*InnerClassRef

	digest Digest
}

func (t *TypeInfo) Kind() TypeKind { return t.kind }

// Superclass returns the direct superclass, empty for java.lang.Object itself.
func (t *TypeInfo) Superclass() string { return t.superclass }

// Interfaces returns the implemented interfaces in declaration order.
// Callers must not modify it.
func (t *TypeInfo) Interfaces() []string { return t.interfaces }

func (t *TypeInfo) TypeParameters() string { return t.typeParameters }

// Version returns the class-file major version.
func (t *TypeInfo) Version() int { return t.version }

func (t *TypeInfo) Fields() []*FieldInfo { return t.fields }

func (t *TypeInfo) Methods() []*MethodInfo { return t.methods }

func (t *TypeInfo) Constructors() []*ConstructorInfo { return t.constructors }

func (t *TypeInfo) InnerClasses() []*InnerClassRef { return t.innerClasses }

// IsSealed reports whether accretion has ended.
func (t *TypeInfo) IsSealed() bool { return t.frozen }

// IsInterface is true for interfaces and annotation types.
func (t *TypeInfo) IsInterface() bool {
	return t.kind == KindInterface || t.kind == KindAnnotation
}

func (t *TypeInfo) IsEnum() bool { return t.kind == KindEnum }

func (t *TypeInfo) IsAnnotation() bool { return t.kind == KindAnnotation }

// IsAbstract is true for abstract classes and every interface.
func (t *TypeInfo) IsAbstract() bool {
	return t.modifiers.Has(modifier.Abstract) || t.IsInterface()
}

// AddField appends a field.
func (t *TypeInfo) AddField(f *FieldInfo) error {
	if err := t.checkAppend("field", f == nil); err != nil {
		return err
	}
	t.fields = append(t.fields, f)

	return nil
}

// AddMethod appends a method.
func (t *TypeInfo) AddMethod(m *MethodInfo) error {
	if err := t.checkAppend("method", m == nil); err != nil {
		return err
	}
	t.methods = append(t.methods, m)

	return nil
}

// AddConstructor appends a constructor.
func (t *TypeInfo) AddConstructor(c *ConstructorInfo) error {
	if err := t.checkAppend("constructor", c == nil); err != nil {
		return err
	}
	t.constructors = append(t.constructors, c)

	return nil
}

// AddInnerClass appends a nested type reference.
func (t *TypeInfo) AddInnerClass(r *InnerClassRef) error {
	if err := t.checkAppend("inner class", r == nil); err != nil {
		return err
	}
	t.innerClasses = append(t.innerClasses, r)

	return nil
}

func (t *TypeInfo) checkAppend(what string, isNil bool) error {
	if t.frozen {
		return integrityErr(t.name, "cannot add %s: type is sealed", what)
	}
	if isNil {
		return integrityErr(t.name, "cannot add nil %s", what)
	}

	return nil
}

// Seal ends accretion: the type and all its members become immutable and
// the digest is computed. Sealing twice is a no-op.
func (t *TypeInfo) Seal() error {
	if t.frozen {
		return nil
	}
	content, err := t.Content()
	if err != nil {
		return err
	}

	for _, f := range t.fields {
		f.freeze()
	}
	for _, m := range t.methods {
		m.freeze()
	}
	for _, c := range t.constructors {
		c.freeze()
	}
	for _, r := range t.innerClasses {
		r.freeze()
	}
	t.digest = DigestOf(content)
	t.freeze()

	return nil
}

// Digest returns the digest computed at Seal.
func (t *TypeInfo) Digest() (Digest, error) {
	if !t.frozen {
		return Digest{}, integrityErr(t.name, "digest requested on an unsealed type")
	}

	return t.digest, nil
}

// Content returns the canonical content. Members are embedded as
// name:content so renaming any of them changes the type digest.
func (t *TypeInfo) Content() (string, error) {
	w := newContentWriter(tagType, uint32(t.modifiers))
	w.text("K", t.kind.String())
	if t.version != 0 {
		w.text("V", strconv.Itoa(t.version))
	}
	w.annotations(t.annotations)
	w.text("S", t.superclass)
	w.list("I", t.interfaces)
	w.text("P", t.typeParameters)

	names := make([]string, 0, len(t.fields))
	entities := make([]Entity, 0, len(t.fields))
	for _, f := range t.fields {
		names = append(names, f.name)
		entities = append(entities, f)
	}
	w.named("F", names, entities)

	names, entities = names[:0:0], entities[:0:0]
	for _, m := range t.methods {
		names = append(names, m.name)
		entities = append(entities, m)
	}
	w.named("M", names, entities)

	entities = entities[:0:0]
	for _, c := range t.constructors {
		entities = append(entities, c)
	}
	w.named("C", nil, entities)

	names, entities = names[:0:0], entities[:0:0]
	for _, r := range t.innerClasses {
		names = append(names, r.name)
		entities = append(entities, r)
	}
	w.named("IC", names, entities)

	return w.finish()
}

// Equal compares name and content. Neither side needs to be sealed.
func (t *TypeInfo) Equal(o *TypeInfo) bool {
	return equalContent(t, o, t != nil && o != nil && t.name == o.name)
}

// TypeBuilder builds the identity and attributes of a TypeInfo.
type TypeBuilder struct {
	name           string
	kind           TypeKind
	modifiers      modifier.Modifiers
	superclass     string
	interfaces     []string
	typeParameters string
	version        int
}

// NewType starts a builder for the given kind with no defaults.
func NewType(kind TypeKind) *TypeBuilder {
	return &TypeBuilder{kind: kind}
}

// NewClass starts a class builder.
func NewClass() *TypeBuilder {
	return NewType(KindClass)
}

// NewInterface starts an interface builder: public abstract interface
// extending java.lang.Object.
func NewInterface() *TypeBuilder {
	b := NewType(KindInterface)
	b.modifiers = modifier.Public | modifier.Interface | modifier.Abstract
	b.superclass = ObjectType

	return b
}

// NewEnum starts an enum builder: public final enum extending java.lang.Enum.
func NewEnum() *TypeBuilder {
	b := NewType(KindEnum)
	b.modifiers = modifier.Public | modifier.Final | modifier.Super | modifier.Enum
	b.superclass = EnumType

	return b
}

// NewAnnotationType starts an annotation type builder.
func NewAnnotationType() *TypeBuilder {
	b := NewType(KindAnnotation)
	b.modifiers = modifier.Public | modifier.Interface | modifier.Abstract | modifier.Annotation
	b.superclass = ObjectType

	return b
}

func (b *TypeBuilder) Name(name string) *TypeBuilder {
	b.name = common.NormalizeName(name)
	return b
}

func (b *TypeBuilder) Modifiers(m modifier.Modifiers) *TypeBuilder {
	b.modifiers = m
	return b
}

func (b *TypeBuilder) Superclass(name string) *TypeBuilder {
	b.superclass = common.NormalizeName(name)
	return b
}

// Interfaces replaces the implemented interfaces.
func (b *TypeBuilder) Interfaces(names ...string) *TypeBuilder {
	b.interfaces = append([]string(nil), names...)
	return b
}

// Interface adds one implemented interface.
func (b *TypeBuilder) Interface(name string) *TypeBuilder {
	b.interfaces = append(b.interfaces, name)
	return b
}

func (b *TypeBuilder) TypeParameters(params string) *TypeBuilder {
	b.typeParameters = common.NormalizeName(params)
	return b
}

// Version sets the class-file version marker (major version).
func (b *TypeBuilder) Version(v int) *TypeBuilder {
	b.version = v
	return b
}

// Build validates and returns an open TypeInfo ready for member accretion.
func (b *TypeBuilder) Build() (*TypeInfo, error) {
	if b.name == "" {
		return nil, &ValidationError{Entity: "type", Field: "name"}
	}
	if b.kind < KindClass || b.kind > KindAnnotation {
		return nil, &UnknownEntityKind{Kind: "type kind " + strconv.Itoa(int(b.kind))}
	}

	return &TypeInfo{
		member:         member{name: b.name, modifiers: b.modifiers},
		kind:           b.kind,
		superclass:     b.superclass,
		interfaces:     common.UniqueInOrder(common.NormalizeNames(b.interfaces)),
		typeParameters: b.typeParameters,
		version:        b.version,
	}, nil
}
