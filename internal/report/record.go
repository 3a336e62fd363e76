package report

import (
	"fmt"
	"strings"

	"naum/modifier"
)

// Aspect names the attribute a detail is about.
type Aspect string

const (
	AspectKind              Aspect = "kind"
	AspectVisibility        Aspect = "visibility"
	AspectStatic            Aspect = "static"
	AspectFinal             Aspect = "final"
	AspectAbstract          Aspect = "abstract"
	AspectModifiers         Aspect = "modifiers"
	AspectSuperclass        Aspect = "superclass"
	AspectInterfaceAdded    Aspect = "interface-added"
	AspectInterfaceRemoved  Aspect = "interface-removed"
	AspectTypeParameters    Aspect = "type-parameters"
	AspectVersion           Aspect = "version"
	AspectAnnotationAdded   Aspect = "annotation-added"
	AspectAnnotationRemoved Aspect = "annotation-removed"
	AspectAnnotationChanged Aspect = "annotation-changed"
	AspectType              Aspect = "type"
	AspectReturnType        Aspect = "return-type"
	AspectExceptionAdded    Aspect = "exception-added"
	AspectExceptionRemoved  Aspect = "exception-removed"
	AspectRename            Aspect = "rename"
	AspectOrder             Aspect = "order"
)

// Detail is one attribute-level difference inside a record.
type Detail struct {
	Aspect   Aspect   `yaml:"aspect"`
	Before   string   `yaml:"before,omitempty"`
	After    string   `yaml:"after,omitempty"`
	Note     string   `yaml:"note,omitempty"`
	Severity Severity `yaml:"severity"`
	Breaks   Breaks   `yaml:"breaks,omitempty"`
}

// String renders "aspect: before -> after (note)".
func (d Detail) String() string {
	var b strings.Builder
	b.WriteString(string(d.Aspect))
	switch {
	case d.Before != "" && d.After != "":
		fmt.Fprintf(&b, ": %s -> %s", d.Before, d.After)
	case d.Before != "":
		fmt.Fprintf(&b, ": %s", d.Before)
	case d.After != "":
		fmt.Fprintf(&b, ": %s", d.After)
	}
	if d.Note != "" {
		fmt.Fprintf(&b, " (%s)", d.Note)
	}

	return b.String()
}

// Record is one classified change. Member is empty for type-level records
// and holds the field name, method or constructor signature, or inner class
// name otherwise. EntityBreaks is set by additions and removals of whole
// types and members, which carry no details.
type Record struct {
	TypeName     string              `yaml:"type"`
	Member       string              `yaml:"member,omitempty"`
	MemberKind   MemberKind          `yaml:"memberKind"`
	Kind         ChangeKind          `yaml:"change"`
	Severity     Severity            `yaml:"severity"`
	Visibility   modifier.Visibility `yaml:"visibility"`
	Exported     bool                `yaml:"exported"`
	EntityBreaks Breaks              `yaml:"breaks,omitempty"`
	Details      []Detail            `yaml:"details,omitempty"`
}

// Breaks returns the record's own compatibility flags joined with its
// details'.
func (r Record) Breaks() Breaks {
	b := r.EntityBreaks
	for _, d := range r.Details {
		b |= d.Breaks
	}

	return b
}

// Subject renders "type" or "type#member".
func (r Record) Subject() string {
	if r.Member == "" {
		return r.TypeName
	}

	return r.TypeName + "#" + r.Member
}

// String returns a formatted record string.
func (r Record) String() string {
	msg := fmt.Sprintf("[%s] %s: %s", r.Severity, r.Subject(), r.Kind)
	if len(r.Details) == 0 {
		return msg
	}

	parts := make([]string, len(r.Details))
	for i, d := range r.Details {
		parts[i] = d.String()
	}

	return msg + " (" + strings.Join(parts, "; ") + ")"
}

func (r Record) firstAspect() Aspect {
	if len(r.Details) == 0 {
		return ""
	}

	return r.Details[0].Aspect
}
