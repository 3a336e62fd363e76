package compare

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"naum/internal/extract"
	"naum/internal/model"
	"naum/internal/report"
	"naum/modifier"
)

func publicClass(name string) *model.TypeBuilder {
	return model.NewClass().
		Name(name).
		Modifiers(modifier.Public | modifier.Super).
		Superclass(model.ObjectType).
		Version(52)
}

// build creates a sealed type from a builder and members in declaration order.
func build(t *testing.T, b *model.TypeBuilder, members ...any) *model.TypeInfo {
	t.Helper()

	ti, err := b.Build()
	require.NoError(t, err)
	for _, m := range members {
		switch x := m.(type) {
		case *model.FieldInfo:
			require.NoError(t, ti.AddField(x))
		case *model.MethodInfo:
			require.NoError(t, ti.AddMethod(x))
		case *model.ConstructorInfo:
			require.NoError(t, ti.AddConstructor(x))
		case *model.InnerClassRef:
			require.NoError(t, ti.AddInnerClass(x))
		case *model.AnnotationInfo:
			require.NoError(t, ti.AddAnnotation(x))
		default:
			t.Fatalf("unsupported member %T", m)
		}
	}
	require.NoError(t, ti.Seal())

	return ti
}

func setOf(t *testing.T, types ...*model.TypeInfo) model.ModelSet {
	t.Helper()

	s, err := model.NewModelSet(types...)
	require.NoError(t, err)

	return s
}

func method(name, args string, mods modifier.Modifiers) *model.MethodBuilder {
	return model.NewMethod().Name(name).ArgumentTypes(args).Modifiers(mods)
}

func field(name, typ string, mods modifier.Modifiers) *model.FieldInfo {
	return model.Must(model.NewField().Name(name).Type(typ).Modifiers(mods).Build())
}

func ctor(args string) *model.ConstructorInfo {
	return model.Must(model.NewConstructor().ArgumentTypes(args).Modifiers(modifier.Public).Build())
}

// interfaceFromClassFile assembles the interface p.I from raw access flags,
// the way a class-file reader feeds the sink.
func interfaceFromClassFile(t *testing.T, methods ...extract.MethodHeader) model.ModelSet {
	t.Helper()

	producer := extract.ProducerFunc{Label: "p/I.class", Fn: func(_ context.Context, sink extract.Sink) error {
		err := sink.BeginType(extract.TypeHeader{
			Name:       "p/I",
			Access:     int(modifier.Public | modifier.Interface | modifier.Abstract),
			Superclass: "java/lang/Object",
			Version:    52,
		})
		if err != nil {
			return err
		}
		for _, m := range methods {
			if err := sink.AddMethod(m); err != nil {
				return err
			}
		}
		_, err = sink.EndType()

		return err
	}}

	set, err := extract.NewCollector(extract.Config{Jobs: 1, Logger: quietConfig().Logger}).
		Collect(context.Background(), producer)
	require.NoError(t, err)

	return set
}

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	return cfg
}

func compareWith(t *testing.T, cfg Config, baseline, candidate model.ModelSet) *report.Report {
	t.Helper()

	rep, err := NewEngine(cfg).Compare(context.Background(), baseline, candidate)
	require.NoError(t, err)

	return rep
}

func compareSets(t *testing.T, baseline, candidate model.ModelSet) *report.Report {
	t.Helper()

	return compareWith(t, quietConfig(), baseline, candidate)
}

// recordsFor returns the records about one type.
func recordsFor(rep *report.Report, typeName string) []report.Record {
	var out []report.Record
	for _, r := range rep.Records {
		if r.TypeName == typeName {
			out = append(out, r)
		}
	}

	return out
}

// singleRecord requires the type to have exactly one record.
func singleRecord(t *testing.T, rep *report.Report, typeName string) report.Record {
	t.Helper()

	records := recordsFor(rep, typeName)
	require.Len(t, records, 1, spew.Sdump(rep.Records))

	return records[0]
}

func detail(t *testing.T, rec report.Record, aspect report.Aspect) report.Detail {
	t.Helper()

	for _, d := range rec.Details {
		if d.Aspect == aspect {
			return d
		}
	}
	t.Fatalf("no %s detail in %s", aspect, spew.Sdump(rec))

	return report.Detail{}
}
