package main

import (
	"github.com/daveycodez/better-auth-instantdb/internal/schemafile"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLinksCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "links <schema.yaml>",
		Short: "List the relationship labels derived for a schema file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := schemafile.Load(args[0])
			if err != nil {
				return err
			}
			links := schema.Links()
			root.logger.Debug("loaded schema",
				zap.String("file", args[0]),
				zap.Int("models", len(schema.Models)),
				zap.Int("links", len(links)))

			tbl := tablewriter.NewWriter(cmd.OutOrStdout())
			tbl.SetHeader([]string{"Model", "Field", "Target", "Label"})
			for _, l := range links {
				tbl.Append([]string{l.Model, l.Field, l.Target, l.Label})
			}
			tbl.Render()
			return nil
		},
	}
}
