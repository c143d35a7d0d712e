// Package catalog holds the shared, read-only block catalog consulted during
// rendering.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lowkit/lowkit/internal/config"
	lowkiterrors "github.com/lowkit/lowkit/pkg/errors"
)

// Catalog maps block names to their templates. It is safe for concurrent
// lookup; registration happens once during application load.
type Catalog struct {
	mu     sync.RWMutex
	blocks map[string]config.Block
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{blocks: make(map[string]config.Block)}
}

// FromApp builds the catalog for a validated application document.
// Duplicate names are rejected upstream by validation, so the first
// registration wins here.
func FromApp(app *config.App) *Catalog {
	c := New()
	if app == nil {
		return c
	}
	for _, block := range app.Blocks {
		_ = c.Register(block)
	}
	return c
}

// Register adds a block template to the catalog.
func (c *Catalog) Register(block config.Block) error {
	if block.Name == "" {
		return lowkiterrors.NewCatalogError("", fmt.Errorf("block name is empty"))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.blocks[block.Name]; exists {
		return lowkiterrors.NewCatalogError(block.Name, fmt.Errorf("block already registered"))
	}

	c.blocks[block.Name] = block
	return nil
}

// Lookup resolves a block name to its template.
func (c *Catalog) Lookup(name string) (config.Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	block, ok := c.blocks[name]
	return block, ok
}

// Names returns the registered block names in deterministic order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.blocks))
	for name := range c.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered blocks.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

// Usage counts block references per block name for one page, in support of
// the show and preview surfaces.
func Usage(page config.Page) map[string]int {
	counts := make(map[string]int)
	for _, section := range page.Sections {
		if section.IsRef() {
			counts[section.BlockName()]++
		}
	}
	return counts
}
