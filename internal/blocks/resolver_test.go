package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowkit/lowkit/internal/config"
)

func ref(name string) config.Section {
	return config.Section{Ref: name}
}

func inline(componentType string) config.Section {
	return config.Section{Component: &config.Component{Type: componentType}}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("inline sections have no block identity", func(t *testing.T) {
		t.Parallel()

		all := []config.Section{inline("container")}
		require.Nil(t, Resolve(all[0], 0, all))
	})

	t.Run("single use omits the instance index", func(t *testing.T) {
		t.Parallel()

		all := []config.Section{ref("hero"), ref("cta")}
		info := Resolve(all[1], 1, all)

		require.NotNil(t, info)
		require.Equal(t, "cta", info.Name)
		require.Nil(t, info.InstanceIndex)
		require.Equal(t, "cta", info.Identifier())
	})

	t.Run("repeated use numbers each instance", func(t *testing.T) {
		t.Parallel()

		all := []config.Section{ref("cta"), ref("cta"), ref("hero")}

		first := Resolve(all[0], 0, all)
		second := Resolve(all[1], 1, all)
		hero := Resolve(all[2], 2, all)

		require.Equal(t, "cta-0", first.Identifier())
		require.Equal(t, "cta-1", second.Identifier())
		require.Equal(t, "hero", hero.Identifier())
	})

	t.Run("indices count inline sections out", func(t *testing.T) {
		t.Parallel()

		all := []config.Section{ref("cta"), inline("divider"), ref("cta")}

		first := Resolve(all[0], 0, all)
		second := Resolve(all[2], 2, all)

		require.Equal(t, "cta-0", first.Identifier())
		require.Equal(t, "cta-1", second.Identifier())
	})

	t.Run("unrelated edits keep identifiers stable", func(t *testing.T) {
		t.Parallel()

		before := []config.Section{ref("cta"), ref("cta"), ref("hero")}
		after := []config.Section{ref("cta"), ref("cta"), ref("banner"), ref("hero")}

		require.Equal(t, Resolve(before[0], 0, before).Identifier(), Resolve(after[0], 0, after).Identifier())
		require.Equal(t, Resolve(before[1], 1, before).Identifier(), Resolve(after[1], 1, after).Identifier())
	})

	t.Run("block form resolves like ref form", func(t *testing.T) {
		t.Parallel()

		all := []config.Section{{Block: "cta"}, ref("cta")}
		info := Resolve(all[0], 0, all)

		require.Equal(t, "cta-0", info.Identifier())
	})
}
