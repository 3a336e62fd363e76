package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naum/modifier"
)

func TestConstructorContent_Layout(t *testing.T) {
	tests := []struct {
		name    string
		builder *ConstructorBuilder
		want    string
	}{
		{
			name:    "no arguments",
			builder: NewConstructor().Modifiers(modifier.Public),
			want:    "CT{D=1}",
		},
		{
			name:    "arguments",
			builder: NewConstructor().Modifiers(modifier.Public).ArgumentTypes("int"),
			want:    "CT{D=1#R=int}",
		},
		{
			name: "exceptions are normalized and sorted",
			builder: NewConstructor().Modifiers(modifier.Public).ArgumentTypes("boolean").
				Exceptions("java/lang/IllegalStateException", "java/lang/IllegalArgumentException"),
			want: "CT{D=1#R=boolean#E=[java.lang.IllegalArgumentException,java.lang.IllegalStateException]}",
		},
		{
			name: "annotations",
			builder: NewConstructor().Modifiers(modifier.Private).ArgumentTypes("java.lang.Object, java.lang.Object").
				Annotation(Must(NewAnnotation().Name("javax.inject.Named").Build())),
			want: "CT{D=2#A=[AN{D=0#N=javax.inject.Named}]#R=java.lang.Object, java.lang.Object}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.builder.Build()
			require.NoError(t, err)

			got, err := c.Content()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDigest_GoldenValues(t *testing.T) {
	// Pinned digests. A change here means every stored snapshot is invalid;
	// bump HashVersion instead of editing these.
	tests := []struct {
		content string
		want    string
	}{
		{"CT{D=1}", "693b2adca3d6fc62f4c19da622d7e6fa5b5e5db70371b08eef774c780b0b4eeb"},
		{"FD{D=25#T=int}", "201baa7f5f06f75fb0cfeb5c73fe144d7f3f57ddf336398323be53081e676b51"},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.want, DigestOf(tt.content).String())
		})
	}
}

func TestDigest_GoldenValuesMatchBuilders(t *testing.T) {
	f := Must(NewField().Name("ONE").Type("int").Modifiers(modifier.Public | modifier.Static | modifier.Final).Build())
	c := Must(NewConstructor().Modifiers(modifier.Public).Build())

	assert.Equal(t, "201baa7f5f06f75fb0cfeb5c73fe144d7f3f57ddf336398323be53081e676b51", Must(DigestEntity(f)).String())
	assert.Equal(t, "693b2adca3d6fc62f4c19da622d7e6fa5b5e5db70371b08eef774c780b0b4eeb", Must(DigestEntity(c)).String())
}

func TestDigest_StableAcrossExceptionOrder(t *testing.T) {
	a := Must(NewMethod().Name("m").Exceptions("p.B", "p.A").Build())
	b := Must(NewMethod().Name("m").Exceptions("p.A", "p.B").Build())

	da, err := DigestEntity(a)
	require.NoError(t, err)
	db, err := DigestEntity(b)
	require.NoError(t, err)

	assert.Equal(t, da, db)
	assert.Equal(t, []string{"p.A", "p.B"}, a.Exceptions())
	assert.True(t, a.Equal(b))
}

func TestDigest_SeparatorNormalizationIsIdempotent(t *testing.T) {
	slashed := Must(NewConstructor().Exceptions("pkg/Type").Build())
	dotted := Must(NewConstructor().Exceptions("pkg.Type").Build())

	assert.Equal(t, []string{"pkg.Type"}, slashed.Exceptions())
	assert.Equal(t, Must(DigestEntity(slashed)), Must(DigestEntity(dotted)))
}

func TestDigest_DuplicateExceptionsArePreserved(t *testing.T) {
	m := Must(NewMethod().Name("m").Exceptions("p.E", "p.E").Build())
	assert.Equal(t, []string{"p.E", "p.E"}, m.Exceptions())
}

func TestDigest_Sensitivity(t *testing.T) {
	base := func() *MethodBuilder {
		return NewMethod().Name("m").Modifiers(modifier.Public).ArgumentTypes("int").Exceptions("p.E")
	}
	reference := Must(DigestEntity(Must(base().Build())))

	variants := map[string]*MethodBuilder{
		"modifier bit":     base().Modifiers(modifier.Public | modifier.Static),
		"extra exception":  base().Exceptions("p.E", "p.F"),
		"no exception":     base().Exceptions(),
		"argument type":    base().ArgumentTypes("long"),
		"return type":      base().ReturnType("int"),
		"type parameters":  base().TypeParameters("<T>"),
		"annotation added": base().Annotation(Must(NewAnnotation().Name("p.A").Build())),
	}

	for name, b := range variants {
		t.Run(name, func(t *testing.T) {
			got := Must(DigestEntity(Must(b.Build())))
			assert.NotEqual(t, reference, got)
		})
	}
}

func TestDigest_AbsentAndEmptyCollapse(t *testing.T) {
	absent := Must(NewConstructor().Build())
	empty := Must(NewConstructor().ArgumentTypes("").Exceptions([]string{}...).Build())

	assert.True(t, absent.Equal(empty))
	assert.NotNil(t, absent.Exceptions())
	assert.Empty(t, absent.Exceptions())
}

func TestParseDigest(t *testing.T) {
	d := DigestOf("CT{D=1}")

	parsed, err := ParseDigest(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDigest("abc")
	assert.Error(t, err)
	_, err = ParseDigest("abcd")
	assert.Error(t, err)
	assert.True(t, Digest{}.IsZero())
	assert.False(t, d.IsZero())
}

func TestValueContent_UnknownKind(t *testing.T) {
	_, err := ValueContent(nil)

	var unknown *UnknownEntityKind
	require.True(t, errors.As(err, &unknown))
	assert.Contains(t, unknown.Kind, "annotation value")

	_, err = ValueContent(PrimitiveValue{})
	assert.True(t, errors.As(err, &unknown))
}
