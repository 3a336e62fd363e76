package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"naum/internal/snapshot"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input>... <output>",
		Short: "Merge and re-encode snapshots",
		Long: `Read one or more snapshots, verify their digests and write the merged
set to output. Formats follow the file extensions, so converting a YAML
fixture to CBOR is "naum convert api.yaml api.cbor".`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, output := args[:len(args)-1], args[len(args)-1]

			set, err := snapshot.Load(cmd.Context(), a.collector(), inputs...)
			if err != nil {
				return err
			}
			if err := snapshot.WriteFile(output, set); err != nil {
				return err
			}
			a.logger.Info("snapshot written", "path", output, "types", len(set))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d types to %s\n", len(set), output)

			return nil
		},
	}
}
