package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lowkit/lowkit/internal/app"
	"github.com/lowkit/lowkit/internal/config"
)

type renderOptions struct {
	ConfigPath string
	OutDir     string
	Page       string
}

var (
	renderOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	renderPathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an application document to HTML and CSS",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to application document")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&opts.Page, "page", "", "Render a single page path")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	log, err := newLogger(root)
	if err != nil {
		return err
	}

	doc, err := config.ParseApp(opts.ConfigPath)
	if err != nil {
		return err
	}

	engine := app.New(doc, log)

	var outputs []app.PageOutput
	if opts.Page != "" {
		output, err := engine.Page(opts.Page)
		if err != nil {
			return err
		}
		outputs = []app.PageOutput{output}
	} else {
		outputs, err = engine.RenderAll()
		if err != nil {
			return err
		}
	}

	if css := engine.Stylesheet(); css != "" {
		cssPath := filepath.Join(opts.OutDir, "styles.css")
		if err := writeFile(cssPath, css); err != nil {
			return err
		}
		printRendered(cmd, "styles", cssPath)
	}

	for _, output := range outputs {
		title := output.Title
		if title == "" {
			title = doc.Name
		}

		href := stylesheetHref(output.Path, engine.Stylesheet() != "")
		document := app.Document(title, output.Node, href)

		htmlPath := filepath.Join(opts.OutDir, filepath.FromSlash(strings.TrimPrefix(output.Path, "/")), "index.html")
		if err := writeFile(htmlPath, document); err != nil {
			return err
		}
		printRendered(cmd, output.Path, htmlPath)
	}

	log.WithFields(map[string]any{"pages": len(outputs), "out": opts.OutDir}).Info("render complete")
	return nil
}

// stylesheetHref builds the relative link from a page directory back to the
// root stylesheet.
func stylesheetHref(pagePath string, hasStylesheet bool) string {
	if !hasStylesheet {
		return ""
	}

	trimmed := strings.Trim(pagePath, "/")
	if trimmed == "" {
		return "styles.css"
	}
	depth := strings.Count(trimmed, "/") + 1
	return strings.Repeat("../", depth) + "styles.css"
}

func writeFile(path, contents string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return os.WriteFile(path, []byte(contents), 0644)
}

func printRendered(cmd *cobra.Command, label, path string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", renderOKStyle.Render("✓"), label, renderPathStyle.Render(path))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", path, label)
}
