package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sectionkit/sectionkit/internal/config"
	"github.com/sectionkit/sectionkit/internal/tui/preview"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <config>",
		Short: "Browse a page config section by section in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview requires an interactive terminal; use 'sectionkit render' instead")
			}

			page, err := config.ParsePage(args[0])
			if err != nil {
				return err
			}

			program := tea.NewProgram(preview.NewModel(page), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	return cmd
}
