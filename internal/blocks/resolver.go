// Package blocks resolves block references on a page and expands block
// templates with their bound variables.
package blocks

import (
	"fmt"

	"github.com/lowkit/lowkit/internal/config"
)

// Info is the derived instance identity of a block reference: the block name
// plus, when the same name appears more than once on the page, a zero-based
// instance index. The index is deliberately absent for single-use blocks so
// unrelated page edits never change their generated identifiers.
type Info struct {
	Name          string
	InstanceIndex *int
}

// Identifier returns the DOM-facing identity: "{name}" or
// "{name}-{instanceIndex}".
func (i Info) Identifier() string {
	if i.InstanceIndex == nil {
		return i.Name
	}
	return fmt.Sprintf("%s-%d", i.Name, *i.InstanceIndex)
}

// Resolve determines the instance identity for the section at index within
// the page's ordered section list. Inline sections resolve to nil.
func Resolve(section config.Section, index int, all []config.Section) *Info {
	if !section.IsRef() {
		return nil
	}

	name := section.BlockName()
	info := &Info{Name: name}

	total := 0
	before := 0
	for i, other := range all {
		if !other.IsRef() || other.BlockName() != name {
			continue
		}
		total++
		if i < index {
			before++
		}
	}

	if total > 1 {
		instance := before
		info.InstanceIndex = &instance
	}

	return info
}
