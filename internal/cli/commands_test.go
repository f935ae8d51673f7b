package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["convert"], "convert command registered")
	assert.True(t, names["version"], "version command registered")
	assert.True(t, names["init"], "init command registered")
}

func TestRootCommand_SilencesUsage(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage,
		"runtime errors must not dump usage text")
}

func TestConvertCommand_Flags(t *testing.T) {
	for _, name := range []string{"input", "output", "strict", "force", "set", "env-file"} {
		require.NotNil(t, convertCmd.Flags().Lookup(name), "flag %q", name)
	}

	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestVersionDefaults(t *testing.T) {
	assert.Equal(t, "dev", version)
	assert.Equal(t, "unknown", commit)
	assert.Equal(t, "unknown", date)
}
