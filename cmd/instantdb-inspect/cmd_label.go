package main

import (
	"fmt"

	"github.com/daveycodez/better-auth-instantdb/pkg/label"
	"github.com/spf13/cobra"
)

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label <field> <fallback>",
		Short: "Derive the relationship label of a field",
		Long: `Prints the field name without its "id" suffix (any case), or the fallback
when the field has no such suffix.

Example:
  instantdb-inspect label organizationId Organization`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), label.Derive(args[0], args[1]))
			return err
		},
	}
}
