package globals_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/lever-go/internal/cmd/globals"
)

func TestParseWalksToRoot(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	globals.AddFlags(root)

	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)

	require.NoError(t, root.PersistentFlags().Set("output", "json"))
	require.NoError(t, root.PersistentFlags().Set("quiet", "true"))

	flags, err := globals.Parse(child)
	require.NoError(t, err)
	assert.Equal(t, "json", flags.Output)
	assert.True(t, flags.Quiet)
	assert.False(t, flags.Verbose)
}

func TestAddPageFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	page := globals.AddPageFlags(cmd)

	require.NoError(t, cmd.Flags().Set("limit", "25"))
	require.NoError(t, cmd.Flags().Set("next", "cursor123"))

	assert.Equal(t, 25, page.Limit)
	assert.Equal(t, "cursor123", page.Offset)
}
