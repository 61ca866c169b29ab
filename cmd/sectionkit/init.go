package main

import (
	"github.com/spf13/cobra"

	"github.com/sectionkit/sectionkit/internal/logger"
	"github.com/sectionkit/sectionkit/internal/scaffold"
)

type initOptions struct {
	url    string
	branch string
	depth  int
}

func newInitCmd(root *rootFlags) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init <directory>",
		Short: "Create a new sectionkit project from a starter template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{Level: root.logLevel(), HumanReadable: true})
			if err != nil {
				return err
			}

			return scaffold.Init(cmd.Context(), scaffold.Options{
				URL:         opts.url,
				Destination: args[0],
				Branch:      opts.branch,
				Depth:       opts.depth,
			}, log)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", scaffold.DefaultTemplateURL, "Starter template repository URL")
	cmd.Flags().StringVar(&opts.branch, "branch", "", "Branch to clone from the template repository")
	cmd.Flags().IntVar(&opts.depth, "depth", 1, "Clone depth (0 for full history)")

	return cmd
}
