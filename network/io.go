package network

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// Column layouts of the network files. Node files are
//     id    x    y    lat    lon
// and link files are
//     in    out    free_flow_travel_time    capacity
// where in and out are 1-indexed rows of the node file.
var (
	nodeCols = []int{ 1, 2, 3, 4 }
	linkCols = []int{ 0, 1, 2, 3 }
)

// ReadNodes reads the nodes in the given node file. IDs are assigned in file
// order, starting from zero. The file's own ID column is ignored.
func ReadNodes(file string) ([]Node, error) {
	cols, err := table.ReadTable(file, nodeCols, nil)
	if err != nil { return nil, err }

	if len(cols) < len(nodeCols) || len(cols[0]) == 0 {
		return nil, fmt.Errorf("Node file '%s' is empty.", file)
	}
	xs, ys, lats, lons := cols[0], cols[1], cols[2], cols[3]

	nodes := make([]Node, len(xs))
	for i := range nodes {
		nodes[i] = Node{
			ID: i, X: xs[i], Y: ys[i], Lat: lats[i], Lon: lons[i],
			GlobalID: NoGlobalID,
		}
	}
	return nodes, nil
}

// ReadLinks reads the links in the given link file. Node references are
// converted to 0-indexed node IDs. They are not checked against any node
// list here: New does that.
func ReadLinks(file string) ([]Link, error) {
	cols, err := table.ReadTable(file, linkCols, nil)
	if err != nil { return nil, err }

	if len(cols) < len(linkCols) || len(cols[0]) == 0 {
		return nil, fmt.Errorf("Link file '%s' is empty.", file)
	}
	ins, outs, fftts, caps := cols[0], cols[1], cols[2], cols[3]

	links := make([]Link, len(ins))
	for i := range links {
		if ins[i] != float64(int(ins[i])) || outs[i] != float64(int(outs[i])) {
			return nil, fmt.Errorf(
				"Line %d of link file '%s' has non-integer node " +
					"references %g and %g.", i+1, file, ins[i], outs[i],
			)
		}

		links[i] = Link{
			ID: i, In: int(ins[i]) - 1, Out: int(outs[i]) - 1,
			FreeFlowTravelTime: fftts[i], Capacity: caps[i],
			GlobalID: NoGlobalID,
		}
	}
	return links, nil
}

// Read reads a network from a node file and a link file.
func Read(nodeFile, linkFile string) (*Network, error) {
	nodes, err := ReadNodes(nodeFile)
	if err != nil { return nil, err }
	links, err := ReadLinks(linkFile)
	if err != nil { return nil, err }

	net, err := New(nodes, links)
	if err != nil {
		return nil, fmt.Errorf("Could not build network from '%s' and " +
			"'%s': %s", nodeFile, linkFile, err.Error())
	}
	return net, nil
}
