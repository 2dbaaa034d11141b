package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/culinary/formatter"
	"github.com/randalmurphal/culinary/normalize"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		mode        string
		output      string
		to          string
		noNormalize bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse menu text into sections and items",
		Long: `Parse reads menu text from a file or stdin and prints the structured menu.

Mode "lines" splits items into name, dietary tags and description and runs
the dietary validation pass. Mode "blocks" groups raw item text under each
heading without decomposing it.`,
		Example: `  culinary parse menu.txt
  cat menu.html | culinary parse --mode blocks --to yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			text := string(data)
			if !noNormalize {
				if text, err = normalize.Normalize(text); err != nil {
					return err
				}
			}

			p := a.cfg.NewParser()
			var v any
			switch mode {
			case "lines":
				m, err := p.ParseLines(text)
				if err != nil {
					return err
				}
				if to == "text" {
					return writeOutput(cmd, output, []byte(formatter.Format(m)))
				}
				v = m
			case "blocks":
				sections := p.ParseBlocks(text)
				if to == "text" {
					return writeOutput(cmd, output, []byte(formatter.New().FormatRaw(sections)))
				}
				v = sections
			default:
				return fmt.Errorf("unknown mode %q: want lines or blocks", mode)
			}

			out, err := encode(v, to)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "lines", "parse mode: lines or blocks")
	cmd.Flags().StringVarP(&to, "to", "t", "json", "output encoding: json, yaml or text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noNormalize, "raw", false, "skip HTML conversion and markdown cleanup")

	return cmd
}

func encode(v any, to string) ([]byte, error) {
	switch to {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("unknown encoding %q: want json, yaml or text", to)
}
