package io

import (
	"fmt"
	"sort"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleCrossingsFile = `[Crossings]

#######################
# Required Parameters #
#######################

# Tab-separated node file. Each row is
#     id    x    y    lat    lon
NodeFile = path/to/nodes.txt

# Tab-separated link file. Each row is
#     in_node    out_node    free_flow_travel_time    capacity
# where nodes are numbered from 1 in the order they appear in NodeFile.
LinkFile = path/to/links.txt

#######################
# Optional Parameters #
#######################

# If set, a lon/lat plot of the network is saved here with the checked links
# highlighted. Requires python with matplotlib.
# PlotFile = crossings.png

# If set, log output is written here instead of stderr.
# LogFile = netcross.log

# If set, a CPU profile is written here.
# ProfileFile = netcross.prof

##########
# Checks #
##########

# Each Pair section checks whether two existing links cross. Links are
# numbered from 1 in the order they appear in LinkFile.
[Pair "example_pair"]
LinkA = 1
LinkB = 2

# Each Proposal section adds a new link between two existing nodes (numbered
# from 1) and checks whether it crosses an existing link. Proposals do not
# see each other. A proposal between two nodes which are already linked is
# checked as that existing link.
[Proposal "example_bridge"]
From = 1
To = 3
Against = 2
# Optional
Capacity = 1000
FreeFlowTravelTime = 5`
)

// CrossingsConfig is the [Crossings] section of a netcross config file.
type CrossingsConfig struct {
	// Required
	NodeFile, LinkFile string

	// Optional
	PlotFile, LogFile, ProfileFile string
}

func (con *CrossingsConfig) ValidNodeFile() bool { return con.NodeFile != "" }
func (con *CrossingsConfig) ValidLinkFile() bool { return con.LinkFile != "" }
func (con *CrossingsConfig) IsPlotted() bool { return con.PlotFile != "" }

// PairConfig asks whether two existing links cross. Link numbers start
// at 1.
type PairConfig struct {
	// Required
	LinkA, LinkB int

	Name string
}

func (pair *PairConfig) CheckInit(name string) error {
	if pair.LinkA <= 0 || pair.LinkB <= 0 {
		return fmt.Errorf(
			"Pair '%s' needs positive LinkA and LinkB values, but has " +
				"%d and %d.", name, pair.LinkA, pair.LinkB,
		)
	} else if pair.LinkA == pair.LinkB {
		return fmt.Errorf(
			"Pair '%s' checks link %d against itself.", name, pair.LinkA,
		)
	}

	pair.Name = name
	return nil
}

// ProposalConfig asks whether a new link between two existing nodes would
// cross an existing link. Node and link numbers start at 1.
type ProposalConfig struct {
	// Required
	From, To, Against int

	// Optional
	Capacity, FreeFlowTravelTime float64

	Name string
}

func (prop *ProposalConfig) CheckInit(name string) error {
	if prop.From <= 0 || prop.To <= 0 {
		return fmt.Errorf(
			"Proposal '%s' needs positive From and To values, but has " +
				"%d and %d.", name, prop.From, prop.To,
		)
	} else if prop.From == prop.To {
		return fmt.Errorf(
			"Proposal '%s' links node %d to itself.", name, prop.From,
		)
	} else if prop.Against <= 0 {
		return fmt.Errorf(
			"Proposal '%s' needs a positive Against value, but has %d.",
			name, prop.Against,
		)
	} else if prop.Capacity < 0 || prop.FreeFlowTravelTime < 0 {
		return fmt.Errorf(
			"Proposal '%s' given a negative Capacity or FreeFlowTravelTime.",
			name,
		)
	}

	prop.Name = name
	return nil
}

// CrossingsWrapper holds every section of a netcross config file.
type CrossingsWrapper struct {
	Crossings CrossingsConfig
	Pair map[string]*PairConfig
	Proposal map[string]*ProposalConfig
}

func DefaultCrossingsWrapper() *CrossingsWrapper {
	return &CrossingsWrapper{
		CrossingsConfig{},
		make(map[string]*PairConfig),
		make(map[string]*ProposalConfig),
	}
}

// ReadCrossingsConfig reads and checks a netcross config file. Pairs and
// proposals are returned sorted by name.
func ReadCrossingsConfig(
	fname string,
) (con *CrossingsConfig, pairs []PairConfig, props []ProposalConfig, err error) {
	wrap := DefaultCrossingsWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, nil, nil, err
	}

	con = &wrap.Crossings
	if !con.ValidNodeFile() {
		return nil, nil, nil, fmt.Errorf("Invalid/non-existent 'NodeFile' value.")
	} else if !con.ValidLinkFile() {
		return nil, nil, nil, fmt.Errorf("Invalid/non-existent 'LinkFile' value.")
	}

	for name, pair := range wrap.Pair {
		if err := pair.CheckInit(name); err != nil {
			return nil, nil, nil, err
		}
		pairs = append(pairs, *pair)
	}
	for name, prop := range wrap.Proposal {
		if err := prop.CheckInit(name); err != nil {
			return nil, nil, nil, err
		}
		props = append(props, *prop)
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
	sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })

	return con, pairs, props, nil
}
