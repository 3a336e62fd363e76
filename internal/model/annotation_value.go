package model

import (
	"fmt"
	"strconv"
	"strings"

	"naum/internal/common"
	"naum/primitive"
)

// AnnotationValue is the closed set of element values an annotation can carry:
// PrimitiveValue, StringValue, ClassValue, EnumValue, AnnotationRefValue and
// ArrayValue. The unexported method keeps the set closed to this package.
type AnnotationValue interface {
	annotationValue()
}

// PrimitiveValue is a scalar of one of the primitive kinds. Literal is the
// canonical text produced by primitive.FromValue.
type PrimitiveValue struct {
	Kind    primitive.KindEnum
	Literal string
}

// StringValue is a string constant.
type StringValue struct {
	Text string
}

// ClassValue references a type by descriptor, e.g. "Ljava.lang.Exception;".
type ClassValue struct {
	Descriptor string
}

// EnumValue names one constant of an enum type.
type EnumValue struct {
	Type     string
	Constant string
}

// AnnotationRefValue nests a whole annotation.
type AnnotationRefValue struct {
	Annotation *AnnotationInfo
}

// ArrayValue is an ordered sequence of values. Homogeneity is the
// producer's contract and is not checked here.
type ArrayValue struct {
	Elements []AnnotationValue
}

func (PrimitiveValue) annotationValue()     {}
func (StringValue) annotationValue()        {}
func (ClassValue) annotationValue()         {}
func (EnumValue) annotationValue()          {}
func (AnnotationRefValue) annotationValue() {}
func (ArrayValue) annotationValue()         {}

// Primitive wraps a Go scalar (bool, int8, uint16 as char, int16, int32, int,
// int64, float32, float64).
func Primitive(v any) (PrimitiveValue, error) {
	kind, literal := primitive.FromValue(v)
	if kind == 0 {
		return PrimitiveValue{}, &UnknownEntityKind{Kind: fmt.Sprintf("primitive %T", v)}
	}

	return PrimitiveValue{Kind: kind, Literal: literal}, nil
}

// NewClassValue normalizes the descriptor's separators.
func NewClassValue(descriptor string) ClassValue {
	return ClassValue{Descriptor: common.NormalizeName(descriptor)}
}

// NewEnumValue normalizes the enum type's separators.
func NewEnumValue(enumType, constant string) EnumValue {
	return EnumValue{Type: common.NormalizeName(enumType), Constant: constant}
}

// NewArrayValue builds an array value from elements.
func NewArrayValue(elements ...AnnotationValue) ArrayValue {
	return ArrayValue{Elements: elements}
}

// ValueOf converts common Go values into an AnnotationValue:
// AnnotationValue as is, string, []string, *AnnotationInfo and primitive scalars.
func ValueOf(v any) (AnnotationValue, error) {
	switch x := v.(type) {
	case nil:
		return nil, &UnknownEntityKind{Kind: "nil annotation value"}
	case AnnotationValue:
		return x, nil
	case string:
		return StringValue{Text: x}, nil
	case []string:
		elems := make([]AnnotationValue, len(x))
		for i, s := range x {
			elems[i] = StringValue{Text: s}
		}
		return ArrayValue{Elements: elems}, nil
	case *AnnotationInfo:
		if x == nil {
			return nil, &UnknownEntityKind{Kind: "nil annotation"}
		}
		return AnnotationRefValue{Annotation: x}, nil
	default:
		return Primitive(v)
	}
}

// ValueContent renders the canonical content of a value.
func ValueContent(v AnnotationValue) (string, error) {
	switch x := v.(type) {
	case PrimitiveValue:
		if !x.Kind.IsValid() {
			return "", &UnknownEntityKind{Kind: x.Kind.String()}
		}
		return x.Kind.Keyword() + ":" + x.Literal, nil
	case StringValue:
		return strconv.Quote(x.Text), nil
	case ClassValue:
		return "class:" + x.Descriptor, nil
	case EnumValue:
		return "enum:" + x.Type + "#" + x.Constant, nil
	case AnnotationRefValue:
		if x.Annotation == nil {
			return "", &UnknownEntityKind{Kind: "nil annotation"}
		}
		c, err := x.Annotation.Content()
		if err != nil {
			return "", err
		}
		return "@" + c, nil
	case ArrayValue:
		parts := make([]string, len(x.Elements))
		for i, e := range x.Elements {
			c, err := ValueContent(e)
			if err != nil {
				return "", err
			}
			parts[i] = c
		}
		return "[" + strings.Join(parts, ",") + "]", nil
	default:
		return "", &UnknownEntityKind{Kind: fmt.Sprintf("annotation value %T", v)}
	}
}
