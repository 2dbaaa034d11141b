package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/culinary/formatter"
	"github.com/randalmurphal/culinary/menu"
)

func newFormatCmd(_ *app) *cobra.Command {
	var (
		style  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Render a JSON or YAML menu as text",
		Example: `  culinary parse menu.txt | culinary format --style display
  culinary format menu.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			m := menu.New()
			if len(args) == 1 && isYAML(args[0]) {
				err = yaml.Unmarshal(data, m)
			} else {
				err = m.UnmarshalJSON(data)
			}
			if err != nil {
				return fmt.Errorf("decode menu: %w", err)
			}

			f := formatter.New(formatter.WithStyle(formatter.Style(style)))
			return writeOutput(cmd, output, []byte(f.Format(m)))
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", string(formatter.StylePlain), "output style: plain or display")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
