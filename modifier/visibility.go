package modifier

import (
	"fmt"

	"naum/internal/common"
)

// Visibility is the access level derived from a modifier set.
// Levels are ordered from the narrowest to the widest.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPackage
	VisibilityProtected
	VisibilityPublic
)

// String returns a human-readable name for the visibility level.
func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityPackage:
		return "package"
	case VisibilityProtected:
		return "protected"
	case VisibilityPublic:
		return "public"
	default:
		return common.UnknownStr
	}
}

// Exported reports whether code outside the declaring package can link against it.
func (v Visibility) Exported() bool {
	return v >= VisibilityProtected
}

// Narrows reports whether moving from v to other reduces access.
func (v Visibility) Narrows(other Visibility) bool {
	return other < v
}

// ParseVisibility is the inverse of Visibility.String.
func ParseVisibility(s string) (Visibility, bool) {
	for v := VisibilityPrivate; v <= VisibilityPublic; v++ {
		if v.String() == s {
			return v, true
		}
	}

	return 0, false
}

func (v Visibility) MarshalText() ([]byte, error) {
	if v.String() == common.UnknownStr {
		return nil, fmt.Errorf("visibility %d out of range", int(v))
	}

	return []byte(v.String()), nil
}

func (v *Visibility) UnmarshalText(text []byte) error {
	parsed, ok := ParseVisibility(string(text))
	if !ok {
		return fmt.Errorf("unknown visibility %q", text)
	}
	*v = parsed

	return nil
}
