package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naum/internal/model"
	"naum/modifier"
)

func quietCollector(jobs int) *Collector {
	return NewCollector(Config{Jobs: jobs, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func plainType(t *testing.T, name string) *model.TypeInfo {
	t.Helper()

	ti := model.Must(model.NewClass().Name(name).Modifiers(modifier.Public | modifier.Super).Superclass(model.ObjectType).Build())
	require.NoError(t, ti.AddField(model.Must(model.NewField().Name("value").Type("int").Modifiers(modifier.Private).Build())))
	require.NoError(t, ti.AddMethod(model.Must(model.NewMethod().Name("value").ReturnType("int").Modifiers(modifier.Public).Build())))
	require.NoError(t, ti.AddConstructor(model.Must(model.NewConstructor().ArgumentTypes("int").Modifiers(modifier.Public).Build())))
	require.NoError(t, ti.Seal())

	return ti
}

func TestCollect_MergesProducers(t *testing.T) {
	a, b, c := plainType(t, "p.A"), plainType(t, "p.B"), plainType(t, "q.C")

	set, err := quietCollector(2).Collect(context.Background(),
		Replay("first", a, b),
		Replay("second", c),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"p.A", "p.B", "q.C"}, set.Names())

	for _, orig := range []*model.TypeInfo{a, b, c} {
		got, ok := set.Lookup(orig.Name())
		require.True(t, ok)
		assert.NotSame(t, orig, got, "replayed types are rebuilt")
		assert.Equal(t, model.Must(orig.Digest()), model.Must(got.Digest()))
	}
}

func TestCollect_RejectsDuplicateTypes(t *testing.T) {
	_, err := quietCollector(0).Collect(context.Background(),
		Replay("first", plainType(t, "p.A")),
		Replay("second", plainType(t, "p.A")),
	)

	var ierr *model.ModelIntegrityError
	require.True(t, errors.As(err, &ierr), "got %v", err)
	assert.Equal(t, "p.A", ierr.Type)
	assert.Contains(t, err.Error(), "producer second")
}

func TestCollect_RejectsUnfinishedType(t *testing.T) {
	unfinished := ProducerFunc{Label: "broken", Fn: func(_ context.Context, sink Sink) error {
		return sink.BeginType(TypeHeader{Name: "p.Half"})
	}}

	_, err := quietCollector(1).Collect(context.Background(), unfinished)

	var ierr *model.ModelIntegrityError
	require.True(t, errors.As(err, &ierr), "got %v", err)
	assert.Equal(t, "p.Half", ierr.Type)
}

func TestCollect_PropagatesProducerErrors(t *testing.T) {
	boom := errors.New("corrupt archive")
	failing := ProducerFunc{Label: "lib.jar", Fn: func(context.Context, Sink) error { return boom }}

	_, err := quietCollector(4).Collect(context.Background(), Replay("ok", plainType(t, "p.A")), failing)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "producer lib.jar")
}

func TestCollect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := quietCollector(1).Collect(ctx, Replay("a", plainType(t, "p.A")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect_NoProducers(t *testing.T) {
	set, err := quietCollector(0).Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, set)
}
