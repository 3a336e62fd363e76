package compare

import (
	"naum/internal/report"
	"naum/modifier"
)

// verdict is the default classification of one change.
type verdict struct {
	severity report.Severity
	breaks   report.Breaks
}

var (
	unchanged      = verdict{report.SeverityNone, report.BreaksNone}
	compatible     = verdict{report.SeverityNonBreaking, report.BreaksNone}
	breakingBoth   = verdict{report.SeverityBreaking, report.BreaksBoth}
	breakingBinary = verdict{report.SeverityBreaking, report.BreaksBinary}
	breakingSource = verdict{report.SeverityBreaking, report.BreaksSource}
)

// wholeEntityRules classify additions and removals of types and members.
// Removals of entities that are not exported are compatible; see removal.
var wholeEntityRules = map[report.ChangeKind]verdict{
	report.TypeRemoved:         breakingBoth,
	report.TypeAdded:           compatible,
	report.Unchanged:           unchanged,
	report.MemberRemoved:       breakingBoth,
	report.MemberAdded:         compatible,
	report.AddedAbstractMember: breakingBoth,
	report.MembersReordered:    compatible,
}

// aspectRules classify aspects whose verdict does not depend on direction.
// Direction-dependent aspects (visibility, final, abstract, superclass,
// version, added exceptions) are decided in the diff code.
var aspectRules = map[report.Aspect]verdict{
	report.AspectKind:              breakingBoth,
	report.AspectStatic:            breakingBoth,
	report.AspectType:              breakingBoth,
	report.AspectReturnType:        breakingBoth,
	report.AspectInterfaceRemoved:  breakingBoth,
	report.AspectInterfaceAdded:    compatible,
	report.AspectTypeParameters:    breakingSource,
	report.AspectModifiers:         compatible,
	report.AspectExceptionRemoved:  compatible,
	report.AspectAnnotationAdded:   compatible,
	report.AspectAnnotationRemoved: compatible,
	report.AspectAnnotationChanged: compatible,
	report.AspectRename:            compatible,
	report.AspectOrder:             compatible,
}

func removal(kind report.ChangeKind, exported bool) verdict {
	if !exported {
		return compatible
	}

	return wholeEntityRules[kind]
}

func visibilityChange(before, after modifier.Visibility) verdict {
	if before.Narrows(after) {
		return breakingBoth
	}

	return compatible
}

// flagAdded classifies gaining final or abstract: breaking when the entity
// can be extended or overridden, compatible otherwise. Losing either flag is
// always compatible.
func flagAdded(added, extendable bool) verdict {
	if added && extendable {
		return breakingBoth
	}

	return compatible
}

// versionChange treats a raised class-file version as binary breaking:
// runtimes older than the new version refuse to load the type.
func versionChange(before, after int) verdict {
	if after > before {
		return breakingBinary
	}

	return compatible
}

// exceptionAdded makes callers handle a new checked exception; unchecked
// ones change nothing for them.
func exceptionAdded(checked bool) verdict {
	if checked {
		return breakingSource
	}

	return compatible
}
