package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lowkit/lowkit/internal/blocks"
	"github.com/lowkit/lowkit/internal/catalog"
	"github.com/lowkit/lowkit/internal/config"
)

type showOptions struct {
	ConfigPath string
	jsonOutput bool
}

var (
	showTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	showSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	showMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show pages, sections and resolved block instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to application document")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output application summary as JSON")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runShow(cmd *cobra.Command, opts *showOptions) error {
	doc, err := config.ParseApp(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd, doc)
	}

	return renderShowSummary(cmd, doc)
}

func renderShowSummary(cmd *cobra.Command, doc *config.App) error {
	out := cmd.OutOrStdout()
	cat := catalog.FromApp(doc)

	fmt.Fprintln(out, showTitleStyle.Render(doc.Name))
	if doc.Description != "" {
		fmt.Fprintln(out, showMutedStyle.Render(doc.Description))
	}

	fmt.Fprintln(out, showSectionStyle.Render("\nBlocks"))
	if cat.Len() == 0 {
		fmt.Fprintln(out, showMutedStyle.Render("  (none)"))
	}
	for _, name := range cat.Names() {
		block, _ := cat.Lookup(name)
		fmt.Fprintf(out, "  %s (%d var slot(s))\n", name, len(block.Vars))
	}

	fmt.Fprintln(out, showSectionStyle.Render("\nPages"))
	for _, page := range doc.Pages {
		fmt.Fprintf(out, "  %s\n", page.Path)
		for i, section := range page.Sections {
			fmt.Fprintf(out, "    - %s\n", describeSection(section, i, page.Sections))
		}
	}

	fmt.Fprintln(out, showSectionStyle.Render("\nTheme"))
	fmt.Fprintf(out, "  %s\n", describeTheme(doc.Theme))

	return nil
}

func describeSection(section config.Section, index int, all []config.Section) string {
	if info := blocks.Resolve(section, index, all); info != nil {
		return fmt.Sprintf("block %s", info.Identifier())
	}
	if section.Component != nil {
		return fmt.Sprintf("inline %s", section.Component.Type)
	}
	return "(empty)"
}

func describeTheme(theme *config.Theme) string {
	if theme == nil {
		return "(none)"
	}
	return fmt.Sprintf("%d color(s), %d font(s), %d animation(s), %d spacing token(s)",
		len(theme.Colors), len(theme.Fonts), len(theme.Animations), len(theme.Spacing))
}

type showJSONPage struct {
	Path     string   `json:"path"`
	Title    string   `json:"title,omitempty"`
	Sections []string `json:"sections"`
}

type showJSONPayload struct {
	Name   string         `json:"name"`
	Pages  []showJSONPage `json:"pages"`
	Blocks []string       `json:"blocks"`
}

func renderShowJSON(cmd *cobra.Command, doc *config.App) error {
	payload := showJSONPayload{
		Name:   doc.Name,
		Blocks: catalog.FromApp(doc).Names(),
	}

	for _, page := range doc.Pages {
		jsonPage := showJSONPage{Path: page.Path, Title: page.Title}
		for i, section := range page.Sections {
			jsonPage.Sections = append(jsonPage.Sections, describeSection(section, i, page.Sections))
		}
		payload.Pages = append(payload.Pages, jsonPage)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
