package io

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	f, err := ioutil.TempFile("", "netcross_config")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString(contents)
	require.NoError(t, err)
	return f.Name()
}

func TestReadExampleCrossingsFile(t *testing.T) {
	fname := writeConfig(t, ExampleCrossingsFile)
	defer os.Remove(fname)

	con, pairs, props, err := ReadCrossingsConfig(fname)
	require.NoError(t, err)

	assert.Equal(t, "path/to/nodes.txt", con.NodeFile)
	assert.Equal(t, "path/to/links.txt", con.LinkFile)
	assert.False(t, con.IsPlotted())
	assert.Equal(t, "", con.LogFile)

	require.Len(t, pairs, 1)
	assert.Equal(t, PairConfig{ 1, 2, "example_pair" }, pairs[0])

	require.Len(t, props, 1)
	assert.Equal(t, ProposalConfig{
		From: 1, To: 3, Against: 2,
		Capacity: 1000, FreeFlowTravelTime: 5,
		Name: "example_bridge",
	}, props[0])
}

func TestReadCrossingsConfigSorted(t *testing.T) {
	fname := writeConfig(t, `[Crossings]
NodeFile = n.txt
LinkFile = l.txt
PlotFile = out.png

[Pair "c"]
LinkA = 5
LinkB = 6

[Pair "a"]
LinkA = 1
LinkB = 2

[Pair "b"]
LinkA = 3
LinkB = 4
`)
	defer os.Remove(fname)

	con, pairs, props, err := ReadCrossingsConfig(fname)
	require.NoError(t, err)
	assert.True(t, con.IsPlotted())
	assert.Len(t, props, 0)

	require.Len(t, pairs, 3)
	for i, name := range []string{ "a", "b", "c" } {
		assert.Equal(t, name, pairs[i].Name)
		assert.Equal(t, 2*i + 1, pairs[i].LinkA)
	}
}

func TestReadCrossingsConfigErrors(t *testing.T) {
	table := []struct{
		name, contents string
	} {
		{ "no node file", "[Crossings]\nLinkFile = l.txt\n" },
		{ "no link file", "[Crossings]\nNodeFile = n.txt\n" },
		{ "unknown variable",
			"[Crossings]\nNodeFile = n.txt\nLinkFile = l.txt\nNodes = 3\n" },
		{ "missing LinkB", "[Crossings]\nNodeFile = n.txt\nLinkFile = l.txt\n" +
			"[Pair \"p\"]\nLinkA = 1\n" },
		{ "self pair", "[Crossings]\nNodeFile = n.txt\nLinkFile = l.txt\n" +
			"[Pair \"p\"]\nLinkA = 1\nLinkB = 1\n" },
		{ "self proposal", "[Crossings]\nNodeFile = n.txt\nLinkFile = l.txt\n" +
			"[Proposal \"p\"]\nFrom = 2\nTo = 2\nAgainst = 1\n" },
		{ "no Against", "[Crossings]\nNodeFile = n.txt\nLinkFile = l.txt\n" +
			"[Proposal \"p\"]\nFrom = 1\nTo = 2\n" },
		{ "negative capacity", "[Crossings]\nNodeFile = n.txt\n" +
			"LinkFile = l.txt\n[Proposal \"p\"]\nFrom = 1\nTo = 2\n" +
			"Against = 1\nCapacity = -4\n" },
	}

	for _, line := range table {
		fname := writeConfig(t, line.contents)
		_, _, _, err := ReadCrossingsConfig(fname)
		os.Remove(fname)
		assert.Error(t, err, line.name)
	}
}
