package compare

import (
	"fmt"
	"slices"

	"naum/internal/common"
	"naum/internal/report"
	"naum/modifier"
)

// Fact is what a Policy sees about one change.
type Fact struct {
	Kind       report.ChangeKind
	Aspect     report.Aspect // empty for whole-entity additions and removals
	MemberKind report.MemberKind
	Visibility modifier.Visibility
	// Exported is true when the entity is reachable from outside its
	// package, taking the enclosing type into account.
	Exported bool
	// Annotation is the annotation type name for annotation aspects.
	Annotation string
}

// Policy reclassifies changes. It receives the default severity from the
// rule table and returns the one to report.
type Policy interface {
	Classify(f Fact, def report.Severity) report.Severity
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(f Fact, def report.Severity) report.Severity

func (fn PolicyFunc) Classify(f Fact, def report.Severity) report.Severity {
	return fn(f, def)
}

// Audience says who consumes the compared artifacts.
type Audience int

const (
	// AudienceExternal consumers only link against exported entities.
	AudienceExternal Audience = iota
	// AudienceInternal consumers live in the same packages and see everything.
	AudienceInternal
)

func (a Audience) String() string {
	switch a {
	case AudienceExternal:
		return "external"
	case AudienceInternal:
		return "internal"
	default:
		return common.UnknownStr
	}
}

// ParseAudience is the inverse of Audience.String.
func ParseAudience(s string) (Audience, error) {
	switch s {
	case "external", "":
		return AudienceExternal, nil
	case "internal":
		return AudienceInternal, nil
	default:
		return 0, fmt.Errorf("unknown audience %q (want external or internal)", s)
	}
}

// DefaultPolicy is audience aware:
//   - external: breaking changes to entities that are not exported are
//     downgraded to NON_BREAKING;
//   - internal: removing a non-exported entity is BREAKING.
//
// Changes to any annotation listed in LoadBearing are BREAKING for both.
type DefaultPolicy struct {
	Audience    Audience
	LoadBearing []string
}

func (p DefaultPolicy) Classify(f Fact, def report.Severity) report.Severity {
	if f.Annotation != "" && slices.Contains(p.LoadBearing, f.Annotation) {
		return report.SeverityBreaking
	}

	switch p.Audience {
	case AudienceInternal:
		if !f.Exported && (f.Kind == report.TypeRemoved || f.Kind == report.MemberRemoved) {
			return report.SeverityBreaking
		}
	default:
		if !f.Exported && def == report.SeverityBreaking {
			return report.SeverityNonBreaking
		}
	}

	return def
}
