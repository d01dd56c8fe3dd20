package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{
		"outreach", "instructions", "status", "platforms", "discover",
		"analyze", "letter", "petition", "statelaw", "lawyers", "serve",
	}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "estate-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestOutreachCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"platform", "deceased-name", "executor-name", "relationship", "documents"} {
		flag := outreachCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "outreach should have --%s flag", flagName)
	}
}

func TestLawyersCommand_Flags(t *testing.T) {
	flag := lawyersCmd.Flags().Lookup("radius")
	require.NotNil(t, flag, "lawyers command should have --radius flag")
	assert.Equal(t, "25", flag.DefValue)

	flag = lawyersCmd.Flags().Lookup("specialty")
	require.NotNil(t, flag)
	assert.Equal(t, "probate", flag.DefValue)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}
