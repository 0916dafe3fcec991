package network

import (
	"github.com/phil-mansfield/netcross/geom"
)

// Registry hands out global IDs which are shared between any number of
// networks, e.g. several edited layers of the same city. Nodes at exactly the
// same coordinates get the same global ID and links between the same pair of
// global nodes (in the same direction) get the same global ID.
type Registry struct {
	nodes map[geom.Point]int
	links map[[2]int]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		make(map[geom.Point]int),
		make(map[[2]int]int),
	}
}

// Assign gives every node and link in net which does not yet have a global ID
// one. Existing global IDs are left alone.
func (reg *Registry) Assign(net *Network) {
	for i := range net.Nodes {
		n := &net.Nodes[i]
		if n.GlobalID != NoGlobalID { continue }

		p := geom.Point{ Lat: n.Lat, Lon: n.Lon }
		id, ok := reg.nodes[p]
		if !ok {
			id = len(reg.nodes)
			reg.nodes[p] = id
		}
		n.GlobalID = id
	}

	for i := range net.Links {
		l := &net.Links[i]
		if l.GlobalID != NoGlobalID { continue }

		key := [2]int{ net.Nodes[l.In].GlobalID, net.Nodes[l.Out].GlobalID }
		id, ok := reg.links[key]
		if !ok {
			id = len(reg.links)
			reg.links[key] = id
		}
		l.GlobalID = id
	}
}

// Nodes returns the number of distinct global nodes.
func (reg *Registry) Nodes() int { return len(reg.nodes) }

// Links returns the number of distinct global links.
func (reg *Registry) Links() int { return len(reg.links) }
