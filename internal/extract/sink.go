package extract

import (
	"fmt"

	"fortio.org/safecast"

	"naum/internal/model"
	"naum/modifier"
)

// TypeHeader carries the raw attributes of a type as read from a class file.
// Access holds the access flags; the kind is derived from them.
type TypeHeader struct {
	Name           string
	Access         int
	Superclass     string
	Interfaces     []string
	TypeParameters string
	Version        int
}

// InnerClassHeader describes one nested type reference.
type InnerClassHeader struct {
	Name        string
	Access      int
	Annotations []*model.AnnotationInfo
}

// FieldHeader describes one field.
type FieldHeader struct {
	Name        string
	Access      int
	Type        string
	Annotations []*model.AnnotationInfo
}

// MethodHeader describes one method. ArgumentTypes is comma-joined in
// declaration order.
type MethodHeader struct {
	Name           string
	Access         int
	ReturnType     string
	ArgumentTypes  string
	TypeParameters string
	Exceptions     []string
	Annotations    []*model.AnnotationInfo
}

// ConstructorHeader describes one constructor.
type ConstructorHeader struct {
	Access        int
	ArgumentTypes string
	Exceptions    []string
	Annotations   []*model.AnnotationInfo
}

// Sink receives the callbacks of a reader for one type at a time.
// Callbacks must follow the phase order; a call to an earlier phase than
// the current one fails with *model.ModelIntegrityError.
type Sink interface {
	BeginType(h TypeHeader) error
	AddInnerClass(h InnerClassHeader) error
	AddField(h FieldHeader) error
	AddMethod(h MethodHeader) error
	AddConstructor(h ConstructorHeader) error
	AddAnnotation(a *model.AnnotationInfo) error
	EndType() (*model.TypeInfo, error)
}

type phase int

const (
	phaseIdle phase = iota
	phaseHeader
	phaseInnerClasses
	phaseFields
	phaseMethods
	phaseConstructors
	phaseAnnotations
)

var phaseNames = [...]string{
	phaseIdle:         "idle",
	phaseHeader:       "header",
	phaseInnerClasses: "inner classes",
	phaseFields:       "fields",
	phaseMethods:      "methods",
	phaseConstructors: "constructors",
	phaseAnnotations:  "annotations",
}

func (p phase) String() string { return phaseNames[p] }

// TypeSink is the Sink implementation backed by the model builders. It is
// reusable: EndType returns it to idle. It must be driven by a single
// goroutine.
type TypeSink struct {
	phase phase
	typ   *model.TypeInfo
}

// NewTypeSink creates an idle sink.
func NewTypeSink() *TypeSink {
	return &TypeSink{}
}

var _ Sink = (*TypeSink)(nil)

func (s *TypeSink) BeginType(h TypeHeader) error {
	if s.phase != phaseIdle {
		return &model.ModelIntegrityError{
			Type:   s.typ.Name(),
			Reason: "BeginType called before EndType",
		}
	}

	access, err := accessFlags(h.Access)
	if err != nil {
		return err
	}
	version, err := safecast.Conv[uint16](h.Version)
	if err != nil {
		return fmt.Errorf("type %s: class-file version %d: %w", h.Name, h.Version, err)
	}

	t, err := model.NewType(model.KindFromModifiers(access)).
		Name(h.Name).
		Modifiers(access).
		Superclass(h.Superclass).
		Interfaces(h.Interfaces...).
		TypeParameters(h.TypeParameters).
		Version(int(version)).
		Build()
	if err != nil {
		return err
	}

	s.typ = t
	s.phase = phaseHeader

	return nil
}

func (s *TypeSink) AddInnerClass(h InnerClassHeader) error {
	if err := s.enter(phaseInnerClasses); err != nil {
		return err
	}
	access, err := accessFlags(h.Access)
	if err != nil {
		return err
	}
	ref, err := model.NewInnerClass().Name(h.Name).Modifiers(access).Build()
	if err != nil {
		return err
	}
	for _, a := range h.Annotations {
		if err := ref.AddAnnotation(a); err != nil {
			return err
		}
	}

	return s.typ.AddInnerClass(ref)
}

func (s *TypeSink) AddField(h FieldHeader) error {
	if err := s.enter(phaseFields); err != nil {
		return err
	}
	access, err := accessFlags(h.Access)
	if err != nil {
		return err
	}

	b := model.NewField().Name(h.Name).Type(h.Type).Modifiers(access)
	for _, a := range h.Annotations {
		b = b.Annotation(a)
	}
	f, err := b.Build()
	if err != nil {
		return err
	}

	return s.typ.AddField(f)
}

func (s *TypeSink) AddMethod(h MethodHeader) error {
	if err := s.enter(phaseMethods); err != nil {
		return err
	}
	access, err := accessFlags(h.Access)
	if err != nil {
		return err
	}

	b := model.NewMethod().
		Name(h.Name).
		Modifiers(access).
		ArgumentTypes(h.ArgumentTypes).
		TypeParameters(h.TypeParameters).
		Exceptions(h.Exceptions...)
	if h.ReturnType != "" {
		b = b.ReturnType(h.ReturnType)
	}
	for _, a := range h.Annotations {
		b = b.Annotation(a)
	}
	m, err := b.Build()
	if err != nil {
		return err
	}

	return s.typ.AddMethod(m)
}

func (s *TypeSink) AddConstructor(h ConstructorHeader) error {
	if err := s.enter(phaseConstructors); err != nil {
		return err
	}
	access, err := accessFlags(h.Access)
	if err != nil {
		return err
	}

	b := model.NewConstructor().
		Modifiers(access).
		ArgumentTypes(h.ArgumentTypes).
		Exceptions(h.Exceptions...)
	for _, a := range h.Annotations {
		b = b.Annotation(a)
	}
	c, err := b.Build()
	if err != nil {
		return err
	}

	return s.typ.AddConstructor(c)
}

func (s *TypeSink) AddAnnotation(a *model.AnnotationInfo) error {
	if err := s.enter(phaseAnnotations); err != nil {
		return err
	}

	return s.typ.AddAnnotation(a)
}

// EndType seals and returns the current type. The sink is idle afterwards,
// also when sealing fails.
func (s *TypeSink) EndType() (*model.TypeInfo, error) {
	if s.phase == phaseIdle {
		return nil, &model.ModelIntegrityError{Reason: "EndType called without BeginType"}
	}

	t := s.typ
	s.typ, s.phase = nil, phaseIdle
	if err := t.Seal(); err != nil {
		return nil, err
	}

	return t, nil
}

// enter moves to p. Staying in the same phase is allowed; going back is not.
func (s *TypeSink) enter(p phase) error {
	switch {
	case s.phase == phaseIdle:
		return &model.ModelIntegrityError{Reason: fmt.Sprintf("%s callback outside BeginType/EndType", p)}
	case p < s.phase:
		return &model.ModelIntegrityError{
			Type:   s.typ.Name(),
			Reason: fmt.Sprintf("%s callback after %s", p, s.phase),
		}
	}
	s.phase = p

	return nil
}

func accessFlags(raw int) (modifier.Modifiers, error) {
	v, err := safecast.Conv[uint32](raw)
	if err != nil {
		return 0, fmt.Errorf("access flags %d: %w", raw, err)
	}

	return modifier.Modifiers(v), nil
}
