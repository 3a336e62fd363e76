package compare

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"naum/internal/common"
	"naum/internal/match"
	"naum/internal/model"
	"naum/internal/report"
)

// Config holds configuration for a comparison.
type Config struct {
	// Jobs bounds the number of types diffed concurrently (0 = GOMAXPROCS).
	Jobs int
	// Policy reclassifies changes. Nil means DefaultPolicy for external consumers.
	Policy Policy
	// UncheckedExceptions are exception types known to be unchecked without
	// resolving their superclass chain. RuntimeException and Error are
	// always included.
	UncheckedExceptions []string
	// RenameHints pairs removed members with same-shaped added ones.
	RenameHints bool
	// MinRenameScore and MinRenameGap tune rename pairing.
	MinRenameScore float64
	MinRenameGap   float64
	// Logger receives progress at debug level (nil = slog.Default()).
	Logger *slog.Logger
}

// DefaultConfig returns the default comparison configuration.
func DefaultConfig() Config {
	return Config{
		Policy:              DefaultPolicy{Audience: AudienceExternal},
		UncheckedExceptions: DefaultUncheckedExceptions,
		RenameHints:         true,
		MinRenameScore:      match.DefaultMinScore,
		MinRenameGap:        match.DefaultMinGap,
	}
}

// Engine compares model sets. It holds no state between calls and is safe
// for concurrent use.
type Engine struct {
	config Config
	logger *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(config Config) *Engine {
	if config.Policy == nil {
		config.Policy = DefaultPolicy{Audience: AudienceExternal}
	}
	if config.Jobs <= 0 {
		config.Jobs = runtime.GOMAXPROCS(0)
	}
	config.UncheckedExceptions = common.UniqueInOrder(append(
		[]string{runtimeExceptionType, errorType},
		common.NormalizeNames(config.UncheckedExceptions)...,
	))

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{config: config, logger: logger}
}

// Compare diffs baseline against candidate with the default configuration.
func Compare(baseline, candidate model.ModelSet) (*report.Report, error) {
	return NewEngine(DefaultConfig()).Compare(context.Background(), baseline, candidate)
}

// Compare diffs baseline against candidate. Both sets must be valid (every
// type named, sealed and keyed by its own name); otherwise a
// *model.ModelIntegrityError is returned and no report is produced.
// Cancelling ctx stops scheduling further type diffs.
func (e *Engine) Compare(ctx context.Context, baseline, candidate model.ModelSet) (*report.Report, error) {
	if err := baseline.Validate(); err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("candidate: %w", err)
	}

	baseNames := baseline.Names()
	candNames := candidate.Names()
	removed := common.Difference(baseNames, candNames)
	added := common.Difference(candNames, baseNames)
	shared := common.Difference(baseNames, removed)

	rep := &report.Report{}
	for _, name := range removed {
		rep.Add(e.removedType(baseline[name]))
	}
	for _, name := range added {
		rep.Add(e.addedType(candidate[name]))
	}

	d := &differ{
		engine: e,
		types: hierarchy{
			unchecked: e.config.UncheckedExceptions,
			sets:      []model.ModelSet{candidate, baseline},
		},
	}

	results := make([][]report.Record, len(shared))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(e.config.Jobs, len(shared))))

	for i, name := range shared {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			records, err := d.diffType(baseline[name], candidate[name])
			if err != nil {
				return fmt.Errorf("compare %s: %w", name, err)
			}
			results[i] = records
			e.logger.Debug("type compared", "type", name, "records", len(records))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, records := range results {
		rep.Add(records...)
	}
	rep.Sort()

	summary := rep.Summary()
	e.logger.Info("comparison finished",
		"removed", len(removed),
		"added", len(added),
		"common", len(shared),
		"records", summary.Total,
		"breaking", summary.Breaking,
	)

	return rep, nil
}

func (e *Engine) removedType(t *model.TypeInfo) report.Record {
	vis := t.Modifiers().Visibility()
	fact := Fact{Kind: report.TypeRemoved, Visibility: vis, Exported: vis.Exported()}
	v := removal(report.TypeRemoved, fact.Exported)

	return report.Record{
		TypeName:     t.Name(),
		Kind:         report.TypeRemoved,
		Severity:     e.classify(fact, v),
		Visibility:   vis,
		Exported:     fact.Exported,
		EntityBreaks: v.breaks,
	}
}

func (e *Engine) addedType(t *model.TypeInfo) report.Record {
	vis := t.Modifiers().Visibility()
	fact := Fact{Kind: report.TypeAdded, Visibility: vis, Exported: vis.Exported()}

	return report.Record{
		TypeName:   t.Name(),
		Kind:       report.TypeAdded,
		Severity:   e.classify(fact, wholeEntityRules[report.TypeAdded]),
		Visibility: vis,
		Exported:   fact.Exported,
	}
}

func (e *Engine) classify(f Fact, v verdict) report.Severity {
	return e.config.Policy.Classify(f, v.severity)
}

// maxSeverity returns the highest severity among base and the details.
func maxSeverity(base report.Severity, details []report.Detail) report.Severity {
	for _, d := range details {
		base = max(base, d.Severity)
	}

	return base
}
