package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billie-coop/typeahead/internal/cli"
)

// The command surface users depend on
func TestTypeahead_CommandTree(t *testing.T) {
	root := cli.NewRootCommand()

	find := func(t *testing.T, path ...string) *cobra.Command {
		t.Helper()
		cmd, rest, err := root.Find(path)
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, path[len(path)-1], cmd.Name())
		return cmd
	}

	t.Run("Search", func(t *testing.T) {
		for _, flag := range []string{"theme", "delay", "placeholder"} {
			assert.NotNil(t, root.Flags().Lookup(flag), flag)
		}
		for _, flag := range []string{"db", "debug", "dir"} {
			assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
		}
	})

	t.Run("Config", func(t *testing.T) {
		find(t, "config", "get")
		find(t, "config", "set")
		find(t, "config", "list")
	})

	t.Run("Catalog", func(t *testing.T) {
		find(t, "catalog", "add")
		search := find(t, "catalog", "search")
		assert.NotNil(t, search.Flags().Lookup("limit"))
	})

	t.Run("Themes", func(t *testing.T) {
		find(t, "themes")
	})
}
