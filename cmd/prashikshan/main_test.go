package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := rootCmd()

	want := []string{
		"login", "logout", "register", "whoami",
		"internships", "applications", "logbook", "notifications",
		"admin", "dashboard", "colleges", "credits", "reports", "version",
	}

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range want {
		assert.True(t, names[name], "missing subcommand %s", name)
	}
}

func TestVersionCmd(t *testing.T) {
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
}

func TestLogbookSync_RejectsDraftWithWatch(t *testing.T) {
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"logbook", "sync", "--draft", "d-1", "--watch"})

	err := root.Execute()
	require.Error(t, err)
}
