package main

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/culinary/menu"
)

func newSchemaCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a parsed menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := encode(menu.Schema(), "json")
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", out)
		},
	}
}
