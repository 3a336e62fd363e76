package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"naum/internal/config"
	"naum/internal/extract"
)

// errBreaking is returned by diff when breaking changes are found and the
// configuration asks to fail on them. It is not printed.
var errBreaking = errors.New("breaking changes detected")

// app is the state shared by the subcommands, set up before any of them runs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "naum",
		Short: "Compatibility checker for compiled JVM APIs",
		Long: `naum compares two snapshots of a compiled API and classifies every
difference as breaking or non-breaking for binary and source compatibility.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "path to "+config.FileName+" (default: search upward from the working directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|always|never), overrides the config file")

	rootCmd.AddCommand(newDiffCmd(a))
	rootCmd.AddCommand(newDigestCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	if path != "" {
		a.cfg, err = config.Load(path)
	} else {
		a.cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}
	if a.cfg.Path != "" {
		a.logger.Debug("configuration loaded", "path", a.cfg.Path)
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return err
	}
	if colorFlag != "" {
		a.cfg.Report.Color = colorFlag
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}
	applyColor(a.cfg.Report.Color)

	return nil
}

func (a *app) collector() *extract.Collector {
	return extract.NewCollector(extract.Config{Jobs: a.cfg.Compare.Jobs, Logger: a.logger})
}

func applyColor(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

// splitPaths splits a comma-separated list of snapshot files.
func splitPaths(arg string) ([]string, error) {
	var paths []string
	for _, p := range strings.Split(arg, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no snapshot files in %q", arg)
	}

	return paths, nil
}
