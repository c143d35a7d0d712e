package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"
)

type initOptions struct {
	Template string
}

const starterDocument = `name: my-app
description: A starter lowkit application

theme:
  colors:
    primary: "#007bff"
    primary-light: "#cfe2ff"
    danger: "#dc3545"
    danger-light: "#f8d7da"
  spacing:
    md: 1rem
    lg: 2rem
  animations:
    fade-in: 400ms

blocks:
  - name: cta
    vars: [label, target]
    component:
      type: section
      children:
        - type: heading
          props:
            level: 2
          content: $label
        - type: link
          props:
            href: $target
            class: cta-button
          content: Learn more

pages:
  - path: /
    title: Home
    sections:
      - type: heading
        props:
          level: 1
        content: Welcome
      - $ref: cta
        vars:
          label: Get started
          target: /docs
`

func newInitCmd() *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a starter application document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Template, "template", "", "Git URL of a starter template to clone")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, opts initOptions) error {
	if opts.Template != "" {
		return cloneTemplate(cmd, dir, opts.Template)
	}

	docPath := filepath.Join(dir, "app.yaml")
	if _, err := os.Stat(docPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", docPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(docPath, []byte(starterDocument), 0644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\nRun 'lowkit render -c %s' to build it.\n", docPath, docPath)
	return nil
}

func cloneTemplate(cmd *cobra.Command, dir, url string) error {
	_, err := git.PlainClone(dir, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return fmt.Errorf("clone template %q: %w", url, err)
	}

	// The template's history is not part of the new project.
	if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cloned template into %s\n", dir)
	return nil
}
