package extract

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naum/internal/model"
	"naum/modifier"
)

func header(name string) TypeHeader {
	return TypeHeader{
		Name:       name,
		Access:     int(modifier.Public | modifier.Super),
		Superclass: "java/lang/Object",
		Interfaces: []string{"java/io/Serializable"},
		Version:    52,
	}
}

func TestTypeSink_BuildsSealedType(t *testing.T) {
	s := NewTypeSink()
	deprecated := model.Must(model.NewAnnotation().Name("java/lang/Deprecated").Build())

	require.NoError(t, s.BeginType(header("org/kordamp/naum/Plain")))
	require.NoError(t, s.AddInnerClass(InnerClassHeader{Name: "org/kordamp/naum/Plain$Inner", Access: int(modifier.Public)}))
	require.NoError(t, s.AddField(FieldHeader{Name: "count", Access: int(modifier.Private), Type: "int"}))
	require.NoError(t, s.AddMethod(MethodHeader{
		Name:          "run",
		Access:        int(modifier.Public),
		ArgumentTypes: "java.lang.String",
		Exceptions:    []string{"java/io/IOException"},
		Annotations:   []*model.AnnotationInfo{deprecated},
	}))
	require.NoError(t, s.AddConstructor(ConstructorHeader{Access: int(modifier.Public)}))
	require.NoError(t, s.AddAnnotation(deprecated))

	ti, err := s.EndType()
	require.NoError(t, err)

	assert.True(t, ti.IsSealed())
	assert.Equal(t, "org.kordamp.naum.Plain", ti.Name())
	assert.Equal(t, model.KindClass, ti.Kind())
	assert.Equal(t, model.ObjectType, ti.Superclass())
	assert.Equal(t, []string{"java.io.Serializable"}, ti.Interfaces())
	assert.Equal(t, 52, ti.Version())
	require.Len(t, ti.Methods(), 1)
	assert.Equal(t, model.VoidType, ti.Methods()[0].ReturnType())
	assert.Equal(t, []string{"java.io.IOException"}, ti.Methods()[0].Exceptions())
	assert.Len(t, ti.Annotations(), 1)

	expected := model.Must(model.NewClass().
		Name("org.kordamp.naum.Plain").
		Modifiers(modifier.Public | modifier.Super).
		Superclass(model.ObjectType).
		Interface("java.io.Serializable").
		Version(52).
		Build())
	require.NoError(t, expected.AddInnerClass(model.Must(model.NewInnerClass().Name("org.kordamp.naum.Plain$Inner").Modifiers(modifier.Public).Build())))
	require.NoError(t, expected.AddField(model.Must(model.NewField().Name("count").Modifiers(modifier.Private).Type("int").Build())))
	require.NoError(t, expected.AddMethod(model.Must(model.NewMethod().
		Name("run").
		Modifiers(modifier.Public).
		ArgumentTypes("java.lang.String").
		Exceptions("java.io.IOException").
		Annotation(deprecated).
		Build())))
	require.NoError(t, expected.AddConstructor(model.Must(model.NewConstructor().Modifiers(modifier.Public).Build())))
	require.NoError(t, expected.AddAnnotation(deprecated))
	require.NoError(t, expected.Seal())

	assert.Equal(t, model.Must(expected.Digest()), model.Must(ti.Digest()))
}

func TestTypeSink_KindFromAccess(t *testing.T) {
	tests := map[string]struct {
		access modifier.Modifiers
		kind   model.TypeKind
	}{
		"class":      {modifier.Public | modifier.Super, model.KindClass},
		"interface":  {modifier.Public | modifier.Interface | modifier.Abstract, model.KindInterface},
		"enum":       {modifier.Public | modifier.Final | modifier.Super | modifier.Enum, model.KindEnum},
		"annotation": {modifier.Public | modifier.Interface | modifier.Abstract | modifier.Annotation, model.KindAnnotation},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewTypeSink()
			h := header("p.T")
			h.Access = int(tt.access)
			require.NoError(t, s.BeginType(h))

			ti, err := s.EndType()
			require.NoError(t, err)
			assert.Equal(t, tt.kind, ti.Kind())
		})
	}
}

func TestTypeSink_RejectsOutOfOrderCallbacks(t *testing.T) {
	s := NewTypeSink()
	require.NoError(t, s.BeginType(header("p.T")))
	require.NoError(t, s.AddMethod(MethodHeader{Name: "m"}))
	require.NoError(t, s.AddMethod(MethodHeader{Name: "n"}))

	err := s.AddField(FieldHeader{Name: "late", Type: "int"})
	var ierr *model.ModelIntegrityError
	require.True(t, errors.As(err, &ierr), "got %v", err)
	assert.Equal(t, "p.T", ierr.Type)
	assert.Contains(t, ierr.Reason, "fields callback after methods")

	require.NoError(t, s.AddAnnotation(model.Must(model.NewAnnotation().Name("p.A").Build())))
	assert.Error(t, s.AddConstructor(ConstructorHeader{}))
}

func TestTypeSink_Lifecycle(t *testing.T) {
	s := NewTypeSink()
	var ierr *model.ModelIntegrityError

	assert.True(t, errors.As(s.AddField(FieldHeader{Name: "f"}), &ierr), "callback before BeginType")
	_, err := s.EndType()
	assert.True(t, errors.As(err, &ierr), "EndType before BeginType")

	require.NoError(t, s.BeginType(header("p.A")))
	assert.True(t, errors.As(s.BeginType(header("p.B")), &ierr), "nested BeginType")

	a, err := s.EndType()
	require.NoError(t, err)
	assert.Equal(t, "p.A", a.Name())

	require.NoError(t, s.BeginType(header("p.B")), "sink is reusable")
	b, err := s.EndType()
	require.NoError(t, err)
	assert.Equal(t, "p.B", b.Name())
}

func TestTypeSink_RejectsInvalidInput(t *testing.T) {
	s := NewTypeSink()

	var verr *model.ValidationError
	assert.True(t, errors.As(s.BeginType(TypeHeader{}), &verr), "missing name")

	h := header("p.T")
	h.Access = -1
	assert.Error(t, s.BeginType(h), "negative access flags")

	h = header("p.T")
	h.Version = math.MaxUint16 + 1
	assert.Error(t, s.BeginType(h), "version out of range")

	require.NoError(t, s.BeginType(header("p.T")))
	assert.True(t, errors.As(s.AddMethod(MethodHeader{Name: model.ConstructorName}), &verr))
	assert.Error(t, s.AddField(FieldHeader{Name: "f", Access: -5}))
}
