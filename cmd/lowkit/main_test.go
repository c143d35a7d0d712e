package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDocument = `name: demo
description: A test application
pages:
  - path: /
    title: Home
    sections:
      - $ref: cta
        vars:
          headline: Hello
      - $ref: cta
        vars:
          headline: Again
  - path: /docs/intro
    title: Intro
    sections:
      - type: text
        content: Read me
blocks:
  - name: cta
    vars: [headline]
    component:
      type: section
      content: $headline
theme:
  colors:
    primary: "#007bff"
`

func writeTestDocument(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "lowkit dev")
	require.Contains(t, out, "commit: none")
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	t.Run("reports a valid document", func(t *testing.T) {
		t.Parallel()

		path := writeTestDocument(t)
		out, err := executeCommand(t, "validate", "-c", path)
		require.NoError(t, err)
		require.Contains(t, out, "is valid: 2 page(s), 1 block(s)")
	})

	t.Run("fails on an invalid document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: broken\npages: []\n"), 0o644))

		_, err := executeCommand(t, "validate", "-c", path)
		require.Error(t, err)
	})

	t.Run("requires the config flag", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand(t, "validate")
		require.Error(t, err)
	})
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	t.Run("writes stylesheet and one directory per page", func(t *testing.T) {
		t.Parallel()

		path := writeTestDocument(t)
		outDir := t.TempDir()

		_, err := executeCommand(t, "render", "-c", path, "-o", outDir)
		require.NoError(t, err)

		css, err := os.ReadFile(filepath.Join(outDir, "styles.css"))
		require.NoError(t, err)
		require.Contains(t, string(css), "--color-primary: 0 123 255;")

		home, err := os.ReadFile(filepath.Join(outDir, "index.html"))
		require.NoError(t, err)
		require.Contains(t, string(home), "<title>Home</title>")
		require.Contains(t, string(home), `href="styles.css"`)
		require.Contains(t, string(home), `data-block="cta-0"`)
		require.Contains(t, string(home), `data-block="cta-1"`)

		intro, err := os.ReadFile(filepath.Join(outDir, "docs", "intro", "index.html"))
		require.NoError(t, err)
		require.Contains(t, string(intro), `href="../../styles.css"`)
		require.Contains(t, string(intro), "<p>Read me</p>")
	})

	t.Run("renders a single page on request", func(t *testing.T) {
		t.Parallel()

		path := writeTestDocument(t)
		outDir := t.TempDir()

		_, err := executeCommand(t, "render", "-c", path, "-o", outDir, "--page", "/docs/intro")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(outDir, "docs", "intro", "index.html"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(outDir, "index.html"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown page fails", func(t *testing.T) {
		t.Parallel()

		path := writeTestDocument(t)
		_, err := executeCommand(t, "render", "-c", path, "-o", t.TempDir(), "--page", "/missing")
		require.Error(t, err)
	})
}

func TestStylesheetHref(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		pagePath string
		has      bool
		want     string
	}{
		{name: "root page", pagePath: "/", has: true, want: "styles.css"},
		{name: "one level deep", pagePath: "/about", has: true, want: "../styles.css"},
		{name: "two levels deep", pagePath: "/docs/intro", has: true, want: "../../styles.css"},
		{name: "no stylesheet", pagePath: "/about", has: false, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, stylesheetHref(tc.pagePath, tc.has))
		})
	}
}

func TestShowCommand(t *testing.T) {
	t.Parallel()

	t.Run("summarises blocks, pages and theme", func(t *testing.T) {
		t.Parallel()

		path := writeTestDocument(t)
		out, err := executeCommand(t, "show", "-c", path)
		require.NoError(t, err)

		require.Contains(t, out, "demo")
		require.Contains(t, out, "cta (1 var slot(s))")
		require.Contains(t, out, "block cta-0")
		require.Contains(t, out, "block cta-1")
		require.Contains(t, out, "inline text")
		require.Contains(t, out, "1 color(s)")
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		path := writeTestDocument(t)
		out, err := executeCommand(t, "show", "-c", path, "--json")
		require.NoError(t, err)

		require.Contains(t, out, `"name": "demo"`)
		require.Contains(t, out, `"block cta-0"`)
	})
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	t.Run("scaffolds a renderable starter document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out, err := executeCommand(t, "init", dir)
		require.NoError(t, err)
		require.Contains(t, out, "Created")

		docPath := filepath.Join(dir, "app.yaml")
		_, err = os.Stat(docPath)
		require.NoError(t, err)

		// The scaffold must survive its own validation.
		_, err = executeCommand(t, "validate", "-c", docPath)
		require.NoError(t, err)
	})

	t.Run("refuses to overwrite an existing document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := executeCommand(t, "init", dir)
		require.NoError(t, err)

		_, err = executeCommand(t, "init", dir)
		require.Error(t, err)
	})
}
