package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lowkit/lowkit/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an application document without rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.ParseApp(configPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d page(s), %d block(s)\n", configPath, len(doc.Pages), len(doc.Blocks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to application document")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}
