package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sectionkit/sectionkit/internal/config"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a page config without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := config.ParsePage(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d sections)\n", args[0], len(page.Sections))
			return nil
		},
	}

	return cmd
}
