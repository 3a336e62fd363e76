package primitive

import (
	"fmt"
	"math"
	"strconv"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum enumerates the primitive kinds an annotation element value can carry.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Keyword returns the source-language keyword of the kind ("int", "boolean", ...).
func (k KindEnum) Keyword() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindByte:
		return "byte"
	case KindChar:
		return "char"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	default:
		return ""
	}
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindByte, KindChar, KindShort, KindInt, KindLong, KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindByte, KindChar, KindShort, KindInt, KindLong:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindByte:
		return 8
	case KindChar, KindShort:
		return 16
	case KindInt, KindFloat:
		return 32
	case KindLong, KindDouble:
		return 64
	}
}

// CheckLiteral reports whether literal parses as a value of kind k, e.g.
// "true" for boolean or "99" for char.
func (k KindEnum) CheckLiteral(literal string) error {
	var err error
	switch {
	case k == KindBoolean:
		_, err = strconv.ParseBool(literal)
	case !k.IsNumber():
		return fmt.Errorf("invalid primitive kind %s", k)
	case k == KindChar:
		_, err = strconv.ParseUint(literal, 10, k.Bits())
	case k.IsInteger():
		_, err = strconv.ParseInt(literal, 10, k.Bits())
	default:
		_, err = strconv.ParseFloat(literal, k.Bits())
	}
	if err != nil {
		return fmt.Errorf("%s literal %q: %w", k.Keyword(), literal, err)
	}

	return nil
}

// FromKeyword maps a keyword back to its kind, 0 if unknown.
func FromKeyword(keyword string) KindEnum {
	for k := KindBoolean; int(k) < KindTotal; k++ {
		if k.Keyword() == keyword {
			return k
		}
	}

	return 0
}

// FromValue classifies a Go value and renders its canonical literal.
// Returns 0 and an empty literal for values outside the primitive set.
func FromValue(v any) (KindEnum, string) {
	switch x := v.(type) {
	case bool:
		return KindBoolean, strconv.FormatBool(x)
	case int8:
		return KindByte, strconv.FormatInt(int64(x), 10)
	case uint16:
		return KindChar, strconv.FormatUint(uint64(x), 10)
	case int16:
		return KindShort, strconv.FormatInt(int64(x), 10)
	case int32:
		return KindInt, strconv.FormatInt(int64(x), 10)
	case int:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return KindLong, strconv.FormatInt(int64(x), 10)
		}
		return KindInt, strconv.Itoa(x)
	case int64:
		return KindLong, strconv.FormatInt(x, 10)
	case float32:
		return KindFloat, strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return KindDouble, strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return 0, ""
	}
}
