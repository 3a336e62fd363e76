package snapshot

import (
	"context"
	"fmt"

	"naum/internal/extract"
	"naum/internal/model"
)

// Producer returns an extract.Producer that rebuilds the snapshot's types
// through the sink it is given. Each type is sealed by the sink and its
// digest compared with the stored one.
func (s *Snapshot) Producer(name string) extract.Producer {
	return extract.ProducerFunc{Label: name, Fn: func(ctx context.Context, sink extract.Sink) error {
		if err := s.check(); err != nil {
			return err
		}
		for i := range s.Types {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.Types[i].replay(sink); err != nil {
				return fmt.Errorf("type %s: %w", s.Types[i].Name, err)
			}
		}

		return nil
	}}
}

// ToModel rebuilds and verifies the model set on the calling goroutine.
func (s *Snapshot) ToModel(ctx context.Context) (model.ModelSet, error) {
	return extract.NewCollector(extract.Config{Jobs: 1}).Collect(ctx, s.Producer("snapshot"))
}

func (s *Snapshot) check() error {
	if s.Schema != SchemaVersion {
		return fmt.Errorf("unsupported snapshot schema %d (want %d)", s.Schema, SchemaVersion)
	}
	if s.HashVersion != int(model.HashVersion) {
		return fmt.Errorf("snapshot digests use hash version %d (want %d)", s.HashVersion, model.HashVersion)
	}

	return nil
}

func (t *Type) replay(sink extract.Sink) error {
	want, err := model.ParseDigest(t.Digest)
	if err != nil {
		return err
	}
	kind, err := model.ParseTypeKind(t.Kind)
	if err != nil {
		return err
	}

	err = sink.BeginType(extract.TypeHeader{
		Name:           t.Name,
		Access:         t.Access,
		Superclass:     t.Superclass,
		Interfaces:     t.Interfaces,
		TypeParameters: t.TypeParameters,
		Version:        t.Version,
	})
	if err != nil {
		return err
	}

	for _, m := range t.InnerClasses {
		annotations, err := toAnnotations(m.Annotations)
		if err != nil {
			return err
		}
		err = sink.AddInnerClass(extract.InnerClassHeader{Name: m.Name, Access: m.Access, Annotations: annotations})
		if err != nil {
			return err
		}
	}
	for _, m := range t.Fields {
		annotations, err := toAnnotations(m.Annotations)
		if err != nil {
			return err
		}
		err = sink.AddField(extract.FieldHeader{Name: m.Name, Access: m.Access, Type: m.Type, Annotations: annotations})
		if err != nil {
			return err
		}
	}
	for _, m := range t.Methods {
		annotations, err := toAnnotations(m.Annotations)
		if err != nil {
			return err
		}
		err = sink.AddMethod(extract.MethodHeader{
			Name:           m.Name,
			Access:         m.Access,
			ReturnType:     m.ReturnType,
			ArgumentTypes:  m.ArgumentTypes,
			TypeParameters: m.TypeParameters,
			Exceptions:     m.Exceptions,
			Annotations:    annotations,
		})
		if err != nil {
			return err
		}
	}
	for _, m := range t.Constructors {
		annotations, err := toAnnotations(m.Annotations)
		if err != nil {
			return err
		}
		err = sink.AddConstructor(extract.ConstructorHeader{
			Access:        m.Access,
			ArgumentTypes: m.ArgumentTypes,
			Exceptions:    m.Exceptions,
			Annotations:   annotations,
		})
		if err != nil {
			return err
		}
	}
	annotations, err := toAnnotations(t.Annotations)
	if err != nil {
		return err
	}
	for _, a := range annotations {
		if err := sink.AddAnnotation(a); err != nil {
			return err
		}
	}

	rebuilt, err := sink.EndType()
	if err != nil {
		return err
	}
	if rebuilt.Kind() != kind {
		return &model.ModelIntegrityError{
			Type:   rebuilt.Name(),
			Reason: fmt.Sprintf("stored kind %s does not match access flags (%s)", kind, rebuilt.Kind()),
		}
	}
	got, err := rebuilt.Digest()
	if err != nil {
		return err
	}
	if got != want {
		return &model.ModelIntegrityError{
			Type:   rebuilt.Name(),
			Reason: fmt.Sprintf("digest mismatch: stored %s, rebuilt %s", want, got),
		}
	}

	return nil
}
