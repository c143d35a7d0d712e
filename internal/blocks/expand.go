package blocks

import (
	"fmt"

	"github.com/lowkit/lowkit/internal/config"
	"github.com/lowkit/lowkit/internal/substitute"
	lowkiterrors "github.com/lowkit/lowkit/pkg/errors"
)

// Lookup resolves a block name to its template.
type Lookup interface {
	Lookup(name string) (config.Block, bool)
}

// Expand materialises a section into a concrete component tree. Inline
// sections are returned as-is; block references are looked up in the catalog
// and expanded with the section's vars bound into a fresh copy of the
// template.
func Expand(section config.Section, catalog Lookup) (config.Component, error) {
	if !section.IsRef() {
		if section.Component == nil {
			return config.Component{}, lowkiterrors.NewCatalogError("", fmt.Errorf("inline section has no component"))
		}
		// Inline components still get key normalization for authoring parity
		// with expanded blocks.
		return substitute.Component(*section.Component, nil), nil
	}

	name := section.BlockName()
	block, ok := catalog.Lookup(name)
	if !ok {
		return config.Component{}, lowkiterrors.NewCatalogError(name, fmt.Errorf("block not found"))
	}

	return substitute.Component(block.Component, substitute.Vars(section.Vars)), nil
}
