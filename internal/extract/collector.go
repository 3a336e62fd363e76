package extract

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"naum/internal/model"
)

// Producer drives a Sink over the types of one input (an archive, a
// directory of class files, a fixture). It owns the sink until it returns.
type Producer interface {
	Name() string
	Produce(ctx context.Context, sink Sink) error
}

// ProducerFunc adapts a function to Producer.
type ProducerFunc struct {
	Label string
	Fn    func(ctx context.Context, sink Sink) error
}

func (p ProducerFunc) Name() string { return p.Label }

func (p ProducerFunc) Produce(ctx context.Context, sink Sink) error {
	return p.Fn(ctx, sink)
}

// Config holds configuration for collection.
type Config struct {
	// Jobs bounds the producers run concurrently (0 = GOMAXPROCS).
	Jobs int
	// Logger receives per-producer progress (nil = slog.Default()).
	Logger *slog.Logger
}

// Collector runs producers and assembles a model set.
type Collector struct {
	jobs   int
	logger *slog.Logger
}

// NewCollector creates a Collector.
func NewCollector(config Config) *Collector {
	jobs := config.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Collector{jobs: jobs, logger: logger}
}

// Collect runs every producer with its own sink, in parallel, and returns
// the union of their types. A type name produced twice, or a producer that
// returns in the middle of a type, is a *model.ModelIntegrityError.
func (c *Collector) Collect(ctx context.Context, producers ...Producer) (model.ModelSet, error) {
	results := make([][]*model.TypeInfo, len(producers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(c.jobs, len(producers))))

	for i, p := range producers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			sink := &collectingSink{TypeSink: NewTypeSink()}
			if err := p.Produce(gctx, sink); err != nil {
				return fmt.Errorf("producer %s: %w", p.Name(), err)
			}
			if sink.phase != phaseIdle {
				return fmt.Errorf("producer %s: %w", p.Name(), &model.ModelIntegrityError{
					Type:   sink.typ.Name(),
					Reason: "producer returned without EndType",
				})
			}

			results[i] = sink.types
			c.logger.Debug("producer finished", "producer", p.Name(), "types", len(sink.types))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := make(model.ModelSet)
	for i, types := range results {
		for _, t := range types {
			if err := set.Add(t); err != nil {
				return nil, fmt.Errorf("producer %s: %w", producers[i].Name(), err)
			}
		}
	}
	c.logger.Info("collection finished", "producers", len(producers), "types", len(set))

	return set, nil
}

// collectingSink keeps every type it seals.
type collectingSink struct {
	*TypeSink
	types []*model.TypeInfo
}

func (s *collectingSink) EndType() (*model.TypeInfo, error) {
	t, err := s.TypeSink.EndType()
	if err != nil {
		return nil, err
	}
	s.types = append(s.types, t)

	return t, nil
}

// Replay returns a producer that feeds existing types through a sink,
// member by member in declaration order, so the sink rebuilds them.
func Replay(name string, types ...*model.TypeInfo) Producer {
	return ProducerFunc{Label: name, Fn: func(ctx context.Context, sink Sink) error {
		for _, t := range types {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := replayType(sink, t); err != nil {
				return err
			}
		}

		return nil
	}}
}

func replayType(sink Sink, t *model.TypeInfo) error {
	err := sink.BeginType(TypeHeader{
		Name:           t.Name(),
		Access:         int(t.Modifiers()),
		Superclass:     t.Superclass(),
		Interfaces:     t.Interfaces(),
		TypeParameters: t.TypeParameters(),
		Version:        t.Version(),
	})
	if err != nil {
		return err
	}

	for _, r := range t.InnerClasses() {
		err := sink.AddInnerClass(InnerClassHeader{
			Name:        r.Name(),
			Access:      int(r.Modifiers()),
			Annotations: r.Annotations(),
		})
		if err != nil {
			return err
		}
	}
	for _, f := range t.Fields() {
		err := sink.AddField(FieldHeader{
			Name:        f.Name(),
			Access:      int(f.Modifiers()),
			Type:        f.Type(),
			Annotations: f.Annotations(),
		})
		if err != nil {
			return err
		}
	}
	for _, m := range t.Methods() {
		err := sink.AddMethod(MethodHeader{
			Name:           m.Name(),
			Access:         int(m.Modifiers()),
			ReturnType:     m.ReturnType(),
			ArgumentTypes:  m.ArgumentTypes(),
			TypeParameters: m.TypeParameters(),
			Exceptions:     m.Exceptions(),
			Annotations:    m.Annotations(),
		})
		if err != nil {
			return err
		}
	}
	for _, c := range t.Constructors() {
		err := sink.AddConstructor(ConstructorHeader{
			Access:        int(c.Modifiers()),
			ArgumentTypes: c.ArgumentTypes(),
			Exceptions:    c.Exceptions(),
			Annotations:   c.Annotations(),
		})
		if err != nil {
			return err
		}
	}
	for _, a := range t.Annotations() {
		if err := sink.AddAnnotation(a); err != nil {
			return err
		}
	}

	_, err = sink.EndType()

	return err
}
