package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sectionkit/sectionkit/internal/builder"
	"github.com/sectionkit/sectionkit/internal/config"
	"github.com/sectionkit/sectionkit/internal/logger"
)

type renderOptions struct {
	output string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <config>",
		Short: "Render a page config to a standalone HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, root)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write HTML to a file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, configPath string, opts *renderOptions, root *rootFlags) error {
	log, err := logger.New(logger.Options{Level: root.logLevel(), HumanReadable: true})
	if err != nil {
		return err
	}

	page, err := config.ParsePage(configPath)
	if err != nil {
		return err
	}

	html, err := builder.New(log).Build(context.Background(), page)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}

	log.WithFields(map[string]any{"path": opts.output, "sections": len(page.Sections)}).Info("page rendered")
	return nil
}
