package snapshot

import (
	"fmt"

	"naum/internal/model"
	"naum/primitive"
)

func fromAnnotations(annotations []*model.AnnotationInfo) ([]Annotation, error) {
	if len(annotations) == 0 {
		return nil, nil
	}

	out := make([]Annotation, len(annotations))
	for i, a := range annotations {
		stored, err := fromAnnotation(a)
		if err != nil {
			return nil, err
		}
		out[i] = stored
	}

	return out, nil
}

func fromAnnotation(a *model.AnnotationInfo) (Annotation, error) {
	if a == nil {
		return Annotation{}, &model.UnknownEntityKind{Kind: "nil annotation"}
	}

	out := Annotation{Name: a.Name()}
	for _, nv := range a.Values() {
		v, err := fromValue(nv.Value)
		if err != nil {
			return Annotation{}, fmt.Errorf("annotation %s element %s: %w", a.Name(), nv.Name, err)
		}
		out.Values = append(out.Values, Element{Name: nv.Name, Value: v})
	}

	return out, nil
}

func fromValue(v model.AnnotationValue) (Value, error) {
	switch x := v.(type) {
	case model.PrimitiveValue:
		if !x.Kind.IsValid() {
			return Value{}, &model.UnknownEntityKind{Kind: x.Kind.String()}
		}
		return Value{Tag: TagPrimitive, Kind: x.Kind.Keyword(), Text: x.Literal}, nil
	case model.StringValue:
		return Value{Tag: TagString, Text: x.Text}, nil
	case model.ClassValue:
		return Value{Tag: TagClass, Text: x.Descriptor}, nil
	case model.EnumValue:
		return Value{Tag: TagEnum, Type: x.Type, Text: x.Constant}, nil
	case model.AnnotationRefValue:
		nested, err := fromAnnotation(x.Annotation)
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: TagAnnotation, Annotation: &nested}, nil
	case model.ArrayValue:
		out := Value{Tag: TagArray}
		for _, e := range x.Elements {
			ev, err := fromValue(e)
			if err != nil {
				return Value{}, err
			}
			out.Elements = append(out.Elements, ev)
		}
		return out, nil
	default:
		return Value{}, &model.UnknownEntityKind{Kind: fmt.Sprintf("annotation value %T", v)}
	}
}

func toAnnotations(stored []Annotation) ([]*model.AnnotationInfo, error) {
	if len(stored) == 0 {
		return nil, nil
	}

	out := make([]*model.AnnotationInfo, len(stored))
	for i := range stored {
		a, err := toAnnotation(&stored[i])
		if err != nil {
			return nil, err
		}
		out[i] = a
	}

	return out, nil
}

func toAnnotation(stored *Annotation) (*model.AnnotationInfo, error) {
	b := model.NewAnnotation().Name(stored.Name)
	for _, e := range stored.Values {
		v, err := toValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("annotation %s element %s: %w", stored.Name, e.Name, err)
		}
		b.Value(e.Name, v)
	}

	return b.Build()
}

func toValue(v Value) (model.AnnotationValue, error) {
	switch v.Tag {
	case TagPrimitive:
		kind := primitive.FromKeyword(v.Kind)
		if kind == 0 {
			return nil, &model.UnknownEntityKind{Kind: "primitive " + v.Kind}
		}
		if err := kind.CheckLiteral(v.Text); err != nil {
			return nil, err
		}
		return model.PrimitiveValue{Kind: kind, Literal: v.Text}, nil
	case TagString:
		return model.StringValue{Text: v.Text}, nil
	case TagClass:
		return model.ClassValue{Descriptor: v.Text}, nil
	case TagEnum:
		return model.EnumValue{Type: v.Type, Constant: v.Text}, nil
	case TagAnnotation:
		if v.Annotation == nil {
			return nil, &model.UnknownEntityKind{Kind: "nil annotation"}
		}
		nested, err := toAnnotation(v.Annotation)
		if err != nil {
			return nil, err
		}
		return model.AnnotationRefValue{Annotation: nested}, nil
	case TagArray:
		elems := make([]model.AnnotationValue, len(v.Elements))
		for i, e := range v.Elements {
			ev, err := toValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return model.NewArrayValue(elems...), nil
	default:
		return nil, &model.UnknownEntityKind{Kind: "annotation value tag " + v.Tag}
	}
}
