package model

import (
	"naum/internal/common"
	"naum/modifier"
)

// TypeKind distinguishes the four flavours of declared types.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindInterface
	KindEnum
	KindAnnotation
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "annotation"
	default:
		return common.UnknownStr
	}
}

// ParseTypeKind is the inverse of TypeKind.String.
func ParseTypeKind(s string) (TypeKind, error) {
	for k := KindClass; k <= KindAnnotation; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, &UnknownEntityKind{Kind: "type kind " + s}
}

// KindFromModifiers derives the kind from class access flags.
func KindFromModifiers(m modifier.Modifiers) TypeKind {
	switch {
	case m.Has(modifier.Annotation):
		return KindAnnotation
	case m.Has(modifier.Enum):
		return KindEnum
	case m.Has(modifier.Interface):
		return KindInterface
	default:
		return KindClass
	}
}
