package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"naum/internal/compare"
	"naum/internal/report"
	"naum/internal/snapshot"
)

var (
	breakingColor    = color.New(color.FgRed, color.Bold)
	nonBreakingColor = color.New(color.FgYellow)
	unchangedColor   = color.New(color.Faint)
)

type diffOptions struct {
	audience       string
	format         string
	all            bool
	failOnBreaking bool
}

func newDiffCmd(a *app) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <baseline> <candidate>",
		Short: "Compare two snapshots and report compatibility changes",
		Long: `Compare a baseline snapshot with a candidate snapshot.

Each side may name several snapshot files separated by commas; their types
are merged and must not overlap. The format of each file is taken from its
extension (.yaml, .cbor, .msgpack).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("audience") {
				a.cfg.Compare.Audience = opts.audience
			}
			if !cmd.Flags().Changed("fail-on-breaking") {
				opts.failOnBreaking = a.cfg.Report.FailOnBreaking
			}
			return a.runDiff(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.audience, "audience", "", "consumer audience (external|internal), overrides the config file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text|yaml)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "also list unchanged types")
	cmd.Flags().BoolVar(&opts.failOnBreaking, "fail-on-breaking", true, "exit non-zero when breaking changes are found")

	return cmd
}

func (a *app) runDiff(cmd *cobra.Command, baselineArg, candidateArg string, opts *diffOptions) error {
	ctx := cmd.Context()

	baselinePaths, err := splitPaths(baselineArg)
	if err != nil {
		return err
	}
	candidatePaths, err := splitPaths(candidateArg)
	if err != nil {
		return err
	}

	collector := a.collector()
	baseline, err := snapshot.Load(ctx, collector, baselinePaths...)
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	candidate, err := snapshot.Load(ctx, collector, candidatePaths...)
	if err != nil {
		return fmt.Errorf("candidate: %w", err)
	}

	engineConfig, err := a.cfg.CompareConfig(a.logger)
	if err != nil {
		return err
	}
	rep, err := compare.NewEngine(engineConfig).Compare(ctx, baseline, candidate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case "yaml":
		data, err := rep.YAML()
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	case "text":
		if err := writeText(out, rep, opts.all); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", opts.format)
	}

	if opts.failOnBreaking && rep.HasBreaking() {
		return errBreaking
	}

	return nil
}

func writeText(w io.Writer, rep *report.Report, all bool) error {
	records := rep.Changes()
	if all {
		records = rep.Records
	}

	for _, rec := range records {
		if _, err := severityColor(rec.Severity).Fprintln(w, rec.String()); err != nil {
			return err
		}
	}

	s := rep.Summary()
	_, err := fmt.Fprintf(w, "%d records: %d breaking, %d non-breaking, %d unchanged types\n",
		s.Total, s.Breaking, s.NonBreaking, s.ByKind[report.Unchanged])

	return err
}

func severityColor(s report.Severity) *color.Color {
	switch s {
	case report.SeverityBreaking:
		return breakingColor
	case report.SeverityNonBreaking:
		return nonBreakingColor
	default:
		return unchangedColor
	}
}
