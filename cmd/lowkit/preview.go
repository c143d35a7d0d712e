package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lowkit/lowkit/internal/app"
	"github.com/lowkit/lowkit/internal/config"
	"github.com/lowkit/lowkit/internal/tui"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse pages and render output interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview requires an interactive terminal; use 'lowkit show' instead")
			}

			log, err := newLogger(root)
			if err != nil {
				return err
			}

			doc, err := config.ParseApp(configPath)
			if err != nil {
				return err
			}

			engine := app.New(doc, log)
			program := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to application document")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}
