package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"naum/internal/snapshot"
)

func newDigestCmd(a *app) *cobra.Command {
	var content bool

	cmd := &cobra.Command{
		Use:   "digest <snapshot>...",
		Short: "Verify snapshots and print the digest of every type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := snapshot.Load(cmd.Context(), a.collector(), args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range set.Names() {
				t := set[name]
				if content {
					c, err := t.Content()
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(out, "%s\t%s\n", name, c)
					continue
				}

				d, err := t.Digest()
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "%s  %s\n", d, name)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&content, "content", false, "print the canonical content instead of the digest")

	return cmd
}
