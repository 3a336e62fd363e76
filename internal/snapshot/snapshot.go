package snapshot

import (
	"fmt"

	"naum/internal/model"
)

// SchemaVersion is the layout version of Snapshot.
const SchemaVersion = 1

// Snapshot is the stored form of a model set. Types are ordered by name.
type Snapshot struct {
	Schema      int    `yaml:"schema" cbor:"schema" msgpack:"schema"`
	HashVersion int    `yaml:"hashVersion" cbor:"hashVersion" msgpack:"hashVersion"`
	Types       []Type `yaml:"types" cbor:"types" msgpack:"types"`
}

// Type is the stored form of one sealed type.
type Type struct {
	Name           string       `yaml:"name" cbor:"name" msgpack:"name"`
	Kind           string       `yaml:"kind" cbor:"kind" msgpack:"kind"`
	Access         int          `yaml:"access" cbor:"access" msgpack:"access"`
	Superclass     string       `yaml:"superclass,omitempty" cbor:"superclass,omitempty" msgpack:"superclass,omitempty"`
	Interfaces     []string     `yaml:"interfaces,omitempty" cbor:"interfaces,omitempty" msgpack:"interfaces,omitempty"`
	TypeParameters string       `yaml:"typeParameters,omitempty" cbor:"typeParameters,omitempty" msgpack:"typeParameters,omitempty"`
	Version        int          `yaml:"version,omitempty" cbor:"version,omitempty" msgpack:"version,omitempty"`
	InnerClasses   []Member     `yaml:"innerClasses,omitempty" cbor:"innerClasses,omitempty" msgpack:"innerClasses,omitempty"`
	Fields         []Member     `yaml:"fields,omitempty" cbor:"fields,omitempty" msgpack:"fields,omitempty"`
	Methods        []Member     `yaml:"methods,omitempty" cbor:"methods,omitempty" msgpack:"methods,omitempty"`
	Constructors   []Member     `yaml:"constructors,omitempty" cbor:"constructors,omitempty" msgpack:"constructors,omitempty"`
	Annotations    []Annotation `yaml:"annotations,omitempty" cbor:"annotations,omitempty" msgpack:"annotations,omitempty"`
	Digest         string       `yaml:"digest" cbor:"digest" msgpack:"digest"`
}

// Member is the stored form of a field, method, constructor or inner class
// reference. Only the attributes of its own kind are set.
type Member struct {
	Name           string       `yaml:"name,omitempty" cbor:"name,omitempty" msgpack:"name,omitempty"`
	Access         int          `yaml:"access" cbor:"access" msgpack:"access"`
	Type           string       `yaml:"type,omitempty" cbor:"type,omitempty" msgpack:"type,omitempty"`
	ReturnType     string       `yaml:"returnType,omitempty" cbor:"returnType,omitempty" msgpack:"returnType,omitempty"`
	ArgumentTypes  string       `yaml:"argumentTypes,omitempty" cbor:"argumentTypes,omitempty" msgpack:"argumentTypes,omitempty"`
	TypeParameters string       `yaml:"typeParameters,omitempty" cbor:"typeParameters,omitempty" msgpack:"typeParameters,omitempty"`
	Exceptions     []string     `yaml:"exceptions,omitempty" cbor:"exceptions,omitempty" msgpack:"exceptions,omitempty"`
	Annotations    []Annotation `yaml:"annotations,omitempty" cbor:"annotations,omitempty" msgpack:"annotations,omitempty"`
}

// Annotation is the stored form of an annotation usage.
type Annotation struct {
	Name   string    `yaml:"name" cbor:"name" msgpack:"name"`
	Values []Element `yaml:"values,omitempty" cbor:"values,omitempty" msgpack:"values,omitempty"`
}

// Element is one named annotation value.
type Element struct {
	Name  string `yaml:"name" cbor:"name" msgpack:"name"`
	Value Value  `yaml:"value" cbor:"value" msgpack:"value"`
}

// Value tags.
const (
	TagPrimitive  = "primitive"
	TagString     = "string"
	TagClass      = "class"
	TagEnum       = "enum"
	TagAnnotation = "annotation"
	TagArray      = "array"
)

// Value is the stored form of an annotation value. Tag selects the variant:
//
//	primitive   Kind is the keyword, Text the literal
//	string      Text
//	class       Text is the descriptor
//	enum        Type and Text (the constant)
//	annotation  Annotation
//	array       Elements
type Value struct {
	Tag        string      `yaml:"tag" cbor:"tag" msgpack:"tag"`
	Kind       string      `yaml:"kind,omitempty" cbor:"kind,omitempty" msgpack:"kind,omitempty"`
	Type       string      `yaml:"type,omitempty" cbor:"type,omitempty" msgpack:"type,omitempty"`
	Text       string      `yaml:"text,omitempty" cbor:"text,omitempty" msgpack:"text,omitempty"`
	Annotation *Annotation `yaml:"annotation,omitempty" cbor:"annotation,omitempty" msgpack:"annotation,omitempty"`
	Elements   []Value     `yaml:"elements,omitempty" cbor:"elements,omitempty" msgpack:"elements,omitempty"`
}

// FromModel converts a model set. Every type must be sealed.
func FromModel(set model.ModelSet) (*Snapshot, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Schema:      SchemaVersion,
		HashVersion: int(model.HashVersion),
		Types:       make([]Type, 0, len(set)),
	}
	for _, name := range set.Names() {
		t, err := fromType(set[name])
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", name, err)
		}
		snap.Types = append(snap.Types, t)
	}

	return snap, nil
}

func fromType(t *model.TypeInfo) (Type, error) {
	digest, err := t.Digest()
	if err != nil {
		return Type{}, err
	}
	annotations, err := fromAnnotations(t.Annotations())
	if err != nil {
		return Type{}, err
	}

	out := Type{
		Name:           t.Name(),
		Kind:           t.Kind().String(),
		Access:         int(t.Modifiers()),
		Superclass:     t.Superclass(),
		Interfaces:     orNil(t.Interfaces()),
		TypeParameters: t.TypeParameters(),
		Version:        t.Version(),
		Annotations:    annotations,
		Digest:         digest.String(),
	}

	for _, r := range t.InnerClasses() {
		m := Member{Name: r.Name(), Access: int(r.Modifiers())}
		if m.Annotations, err = fromAnnotations(r.Annotations()); err != nil {
			return Type{}, err
		}
		out.InnerClasses = append(out.InnerClasses, m)
	}
	for _, f := range t.Fields() {
		m := Member{Name: f.Name(), Access: int(f.Modifiers()), Type: f.Type()}
		if m.Annotations, err = fromAnnotations(f.Annotations()); err != nil {
			return Type{}, err
		}
		out.Fields = append(out.Fields, m)
	}
	for _, mi := range t.Methods() {
		m := Member{
			Name:           mi.Name(),
			Access:         int(mi.Modifiers()),
			ReturnType:     mi.ReturnType(),
			ArgumentTypes:  mi.ArgumentTypes(),
			TypeParameters: mi.TypeParameters(),
			Exceptions:     orNil(mi.Exceptions()),
		}
		if m.Annotations, err = fromAnnotations(mi.Annotations()); err != nil {
			return Type{}, err
		}
		out.Methods = append(out.Methods, m)
	}
	for _, c := range t.Constructors() {
		m := Member{
			Access:        int(c.Modifiers()),
			ArgumentTypes: c.ArgumentTypes(),
			Exceptions:    orNil(c.Exceptions()),
		}
		if m.Annotations, err = fromAnnotations(c.Annotations()); err != nil {
			return Type{}, err
		}
		out.Constructors = append(out.Constructors, m)
	}

	return out, nil
}

// orNil keeps empty lists out of the stored form.
func orNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}
