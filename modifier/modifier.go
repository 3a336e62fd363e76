package modifier

import "strings"

// Modifiers is a set of access and property flags as stored in a class file.
// Values are bit-for-bit identical to the class-file access flags so that
// a reader can hand them over unchanged.
type Modifiers uint32

const (
	Public       Modifiers = 0x0001 // class, field, method
	Private      Modifiers = 0x0002 // class, field, method
	Protected    Modifiers = 0x0004 // class, field, method
	Static       Modifiers = 0x0008 // field, method
	Final        Modifiers = 0x0010 // class, field, method, parameter
	Super        Modifiers = 0x0020 // class
	Synchronized Modifiers = 0x0020 // method
	Volatile     Modifiers = 0x0040 // field
	Bridge       Modifiers = 0x0040 // method
	Transient    Modifiers = 0x0080 // field
	Varargs      Modifiers = 0x0080 // method
	Native       Modifiers = 0x0100 // method
	Interface    Modifiers = 0x0200 // class
	Abstract     Modifiers = 0x0400 // class, method
	Strict       Modifiers = 0x0800 // method
	Synthetic    Modifiers = 0x1000 // class, field, method, parameter
	Annotation   Modifiers = 0x2000 // class
	Enum         Modifiers = 0x4000 // class, field
	Mandated     Modifiers = 0x8000 // parameter
)

const (
	// None is package-private, non-static, non-final.
	None Modifiers = 0

	VisibilityMask = Public | Private | Protected
)

// Has reports whether every flag in other is set.
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// Any reports whether at least one flag in other is set.
func (m Modifiers) Any(other Modifiers) bool {
	return m&other != 0
}

// With returns m with the given flags set.
func (m Modifiers) With(other Modifiers) Modifiers {
	return m | other
}

// Without returns m with the given flags cleared.
func (m Modifiers) Without(other Modifiers) Modifiers {
	return m &^ other
}

// Visibility returns the dominant visibility of the set.
// A malformed set carrying several visibility bits resolves to the widest.
func (m Modifiers) Visibility() Visibility {
	switch {
	case m.Has(Public):
		return VisibilityPublic
	case m.Has(Protected):
		return VisibilityProtected
	case m.Has(Private):
		return VisibilityPrivate
	default:
		return VisibilityPackage
	}
}

type keyword struct {
	flag Modifiers
	word string
}

// memberKeywords lists flags that render as source keywords, in source order.
var memberKeywords = []keyword{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Static, "static"},
	{Final, "final"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Synchronized, "synchronized"},
	{Native, "native"},
	{Strict, "strictfp"},
	{Synthetic, "synthetic"},
	{Enum, "enum"},
	{Annotation, "@interface"},
	{Interface, "interface"},
}

// typeKeywords skips member-only bits. ACC_SUPER has no keyword and
// renders by its flag name.
var typeKeywords = []keyword{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Static, "static"},
	{Final, "final"},
	{Super, "super"},
	{Synthetic, "synthetic"},
	{Enum, "enum"},
	{Annotation, "@interface"},
	{Interface, "interface"},
}

// String renders the flags of a member as space separated keywords.
// Bits shared with type flags render with their member keyword
// (synchronized, volatile, transient).
func (m Modifiers) String() string {
	return m.render(memberKeywords)
}

// TypeString renders the flags of a type as space separated keywords.
func (m Modifiers) TypeString() string {
	return m.render(typeKeywords)
}

func (m Modifiers) render(keywords []keyword) string {
	var parts []string
	for _, kw := range keywords {
		if m.Has(kw.flag) {
			parts = append(parts, kw.word)
		}
	}

	return strings.Join(parts, " ")
}
