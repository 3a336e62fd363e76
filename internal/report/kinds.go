package report

import (
	"fmt"
	"strings"

	"naum/internal/common"
)

// ChangeKind classifies a record. The declaration order is the sort order
// of records within one type.
type ChangeKind int

const (
	TypeRemoved ChangeKind = iota
	TypeAdded
	Unchanged
	Modified
	MemberRemoved
	MemberAdded
	AddedAbstractMember
	MembersReordered
)

var changeKindNames = [...]string{
	TypeRemoved:         "TYPE_REMOVED",
	TypeAdded:           "TYPE_ADDED",
	Unchanged:           "UNCHANGED",
	Modified:            "MODIFIED",
	MemberRemoved:       "MEMBER_REMOVED",
	MemberAdded:         "MEMBER_ADDED",
	AddedAbstractMember: "ADDED_ABSTRACT_MEMBER",
	MembersReordered:    "MEMBERS_REORDERED",
}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(changeKindNames) {
		return common.UnknownStr
	}

	return changeKindNames[k]
}

func (k ChangeKind) MarshalText() ([]byte, error) {
	if k.String() == common.UnknownStr {
		return nil, fmt.Errorf("change kind %d out of range", int(k))
	}

	return []byte(k.String()), nil
}

func (k *ChangeKind) UnmarshalText(text []byte) error {
	for i, name := range changeKindNames {
		if name == string(text) {
			*k = ChangeKind(i)
			return nil
		}
	}

	return fmt.Errorf("unknown change kind %q", text)
}

// Severity is the compatibility impact of a record or detail.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityNonBreaking
	SeverityBreaking
)

var severityNames = [...]string{
	SeverityNone:        "NONE",
	SeverityNonBreaking: "NON_BREAKING",
	SeverityBreaking:    "BREAKING",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return common.UnknownStr
	}

	return severityNames[s]
}

func (s Severity) MarshalText() ([]byte, error) {
	if s.String() == common.UnknownStr {
		return nil, fmt.Errorf("severity %d out of range", int(s))
	}

	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	for i, name := range severityNames {
		if name == string(text) {
			*s = Severity(i)
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}

// MemberKind says what a record is about. MemberNone marks type-level records.
type MemberKind int

const (
	MemberNone MemberKind = iota
	MemberField
	MemberMethod
	MemberConstructor
	MemberInnerClass
)

var memberKindNames = [...]string{
	MemberNone:        "type",
	MemberField:       "field",
	MemberMethod:      "method",
	MemberConstructor: "constructor",
	MemberInnerClass:  "inner-class",
}

func (k MemberKind) String() string {
	if k < 0 || int(k) >= len(memberKindNames) {
		return common.UnknownStr
	}

	return memberKindNames[k]
}

func (k MemberKind) MarshalText() ([]byte, error) {
	if k.String() == common.UnknownStr {
		return nil, fmt.Errorf("member kind %d out of range", int(k))
	}

	return []byte(k.String()), nil
}

func (k *MemberKind) UnmarshalText(text []byte) error {
	for i, name := range memberKindNames {
		if name == string(text) {
			*k = MemberKind(i)
			return nil
		}
	}

	return fmt.Errorf("unknown member kind %q", text)
}

// Breaks says which kind of compatibility a change breaks.
type Breaks uint8

const (
	BreaksBinary Breaks = 1 << iota
	BreaksSource

	BreaksNone Breaks = 0
	BreaksBoth        = BreaksBinary | BreaksSource
)

// String renders the flags as "binary,source", "binary", "source" or "".
func (b Breaks) String() string {
	var parts []string
	if b&BreaksBinary != 0 {
		parts = append(parts, "binary")
	}
	if b&BreaksSource != 0 {
		parts = append(parts, "source")
	}

	return strings.Join(parts, ",")
}

func (b Breaks) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Breaks) UnmarshalText(text []byte) error {
	*b = BreaksNone
	if len(text) == 0 {
		return nil
	}
	for _, part := range strings.Split(string(text), ",") {
		switch part {
		case "binary":
			*b |= BreaksBinary
		case "source":
			*b |= BreaksSource
		default:
			return fmt.Errorf("unknown compatibility %q", part)
		}
	}

	return nil
}
