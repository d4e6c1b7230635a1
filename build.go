package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tharindu1999/portfolio/internal/config"
	"github.com/tharindu1999/portfolio/internal/content"
	"github.com/tharindu1999/portfolio/internal/logger"
	"github.com/tharindu1999/portfolio/internal/site"
)

func newBuildCmd() *cobra.Command {
	var out, base string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files for subdirectory hosting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := setup(ctx)
			if err != nil {
				return err
			}
			if out != "" {
				cfg.OutputDir = out
			}
			if cmd.Flags().Changed("base") {
				cfg.BasePath = config.NormalizeBasePath(base)
			}

			s, err := site.New(cfg, content.Default(), site.WithLogger(logger.Named("build")))
			if err != nil {
				return err
			}
			n, err := s.Build(ctx, cfg.OutputDir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Static site written to %s (%d files, base %s)\n", cfg.OutputDir, n, cfg.BasePath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output directory, overrides config")
	cmd.Flags().StringVar(&base, "base", "", "base path, overrides config")
	return cmd
}
