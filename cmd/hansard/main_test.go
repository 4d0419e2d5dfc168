package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["lookup"])
	assert.True(t, names["logs"])
	assert.True(t, names["demo"])

	for _, flag := range []string{"prefs", "open", "stats-every"} {
		assert.NotNil(t, root.Flags().Lookup(flag), flag)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestLookupRequiresQuery(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"lookup"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
