package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/culinary/export"
	"github.com/randalmurphal/culinary/generator"
	"github.com/randalmurphal/culinary/provider"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		opts   generator.Options
		format string
		output string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a restaurant name and menu",
		Example: `  culinary generate --cuisine Italian --diet Vegan --diet Gluten-Free
  culinary generate --cuisine Thai --diet Vegetarian --items 5 --format pdf --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.ItemsPerSection == 0 {
				opts.ItemsPerSection = a.cfg.Generation.ItemsPerSection
			}
			if _, _, err := export.ForFormat(format); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res, err := a.generate(ctx, opts)
			if err != nil {
				return err
			}

			doc, err := export.Export(res, format)
			if err != nil {
				return err
			}
			if save && output == "" {
				output = filepath.Clean(doc.Filename)
			}
			return writeOutput(cmd, output, doc.Data)
		},
	}

	cmd.Flags().StringVar(&opts.Cuisine, "cuisine", "", "cuisine of the restaurant (required)")
	cmd.Flags().StringSliceVar(&opts.Diets, "diet", nil, "dietary preference, repeatable (required)")
	cmd.Flags().IntVar(&opts.ItemsPerSection, "items", 0, "items per section (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "txt", "output format: txt, md, json, yaml or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&save, "save", false, "write to <restaurant>_menu.<format> in the current directory")
	_ = cmd.MarkFlagRequired("cuisine")
	_ = cmd.MarkFlagRequired("diet")

	return cmd
}

func (a *app) newClient() (provider.Client, error) {
	client, err := provider.New(a.cfg.Provider.Provider, a.cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", a.cfg.Provider.Provider, err)
	}
	return client, nil
}

func (a *app) generate(ctx context.Context, opts generator.Options) (*generator.Result, error) {
	client, err := a.newClient()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return a.cfg.NewGenerator(client).Generate(ctx, opts)
}
