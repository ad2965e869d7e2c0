package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relgraph"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the relgraph version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "relgraph", relgraph.Version)
			return err
		},
	}
}
