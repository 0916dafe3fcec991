/*package network holds the road networks whose links are checked for
crossings. It is the caller of geom.SegmentsIntersect: it owns the nodes,
hands out their global IDs and decides which pair of links gets tested.
*/
package network

import (
	"fmt"

	"github.com/phil-mansfield/netcross/geom"
)

// NoGlobalID marks a node or link which has not been seen by a Registry.
const NoGlobalID = -1

// Node is a vertex of the network.
type Node struct {
	ID int // Index into Network.Nodes
	X, Y float64 // Screen position, not used for crossings
	Lat, Lon float64
	GlobalID int

	Incoming, Outgoing []int // Link IDs which end and start at this node.
}

// Link is a directed edge between two nodes.
type Link struct {
	ID int // Index into Network.Links
	In, Out int // Node IDs
	FreeFlowTravelTime, Capacity float64
	GlobalID int
}

// Network is a set of nodes and the links between them. A Network must not
// be modified while other goroutines read it.
type Network struct {
	Nodes []Node
	Links []Link
}

// New creates a network from the given nodes and links, assigning IDs and
// wiring the node link lists. Link i of the result is links[i], even if two
// links join the same pair of nodes.
func New(nodes []Node, links []Link) (*Network, error) {
	net := &Network{ Nodes: make([]Node, 0, len(nodes)) }
	for i := range nodes {
		net.addNode(nodes[i])
	}
	for i := range links {
		err := net.checkNewLink(links[i].In, links[i].Out)
		if err != nil { return nil, err }
		net.appendLink(
			links[i].In, links[i].Out,
			links[i].Capacity, links[i].FreeFlowTravelTime,
		)
	}
	return net, nil
}

func (net *Network) addNode(n Node) int {
	n.ID = len(net.Nodes)
	n.GlobalID = NoGlobalID
	n.Incoming, n.Outgoing = nil, nil
	net.Nodes = append(net.Nodes, n)
	return n.ID
}

func (net *Network) checkNewLink(in, out int) error {
	if err := net.checkNode(in); err != nil { return err }
	if err := net.checkNode(out); err != nil { return err }
	if in == out {
		return fmt.Errorf("Cannot make a link from node %d to itself.", in)
	}
	return nil
}

func (net *Network) appendLink(in, out int, capacity, fftt float64) int {
	id := len(net.Links)
	net.Links = append(net.Links, Link{
		ID: id, In: in, Out: out,
		FreeFlowTravelTime: fftt, Capacity: capacity,
		GlobalID: NoGlobalID,
	})
	net.Nodes[out].Incoming = append(net.Nodes[out].Incoming, id)
	net.Nodes[in].Outgoing = append(net.Nodes[in].Outgoing, id)
	return id
}

// FindLink returns the ID of the link from node in to node out, if there is
// one.
func (net *Network) FindLink(in, out int) (int, bool) {
	if in < 0 || in >= len(net.Nodes) { return -1, false }
	for _, id := range net.Nodes[in].Outgoing {
		if net.Links[id].Out == out { return id, true }
	}
	return -1, false
}

// AddLink adds a link from node in to node out and returns its ID. The new
// link has no global ID until it is passed through a Registry.
//
// If a link from in to out already exists, no link is added. Instead the
// existing link's capacity and free flow travel time are raised to the given
// values where those are larger, and its ID is returned.
func (net *Network) AddLink(
	in, out int, capacity, freeFlowTravelTime float64,
) (int, error) {
	if err := net.checkNewLink(in, out); err != nil { return -1, err }

	if id, ok := net.FindLink(in, out); ok {
		l := &net.Links[id]
		if capacity > l.Capacity { l.Capacity = capacity }
		if freeFlowTravelTime > l.FreeFlowTravelTime {
			l.FreeFlowTravelTime = freeFlowTravelTime
		}
		return id, nil
	}

	return net.appendLink(in, out, capacity, freeFlowTravelTime), nil
}

// RemoveLastLink undoes an AddLink which created a new link, which lets a
// proposed link be checked and then thrown away. Its global ID stays in the
// Registry.
func (net *Network) RemoveLastLink() error {
	if len(net.Links) == 0 {
		return fmt.Errorf("Cannot remove a link from a network with no links.")
	}
	return net.RemoveLinks(len(net.Links) - 1)
}

func (net *Network) checkNode(id int) error {
	if id < 0 || id >= len(net.Nodes) {
		return fmt.Errorf(
			"Node %d does not exist in a network with %d nodes.",
			id, len(net.Nodes),
		)
	}
	return nil
}

func (net *Network) checkLink(id int) error {
	if id < 0 || id >= len(net.Links) {
		return fmt.Errorf(
			"Link %d does not exist in a network with %d links.",
			id, len(net.Links),
		)
	}
	return nil
}

// Point returns the node as a geom.IdentifiedPoint.
func (n *Node) Point() geom.IdentifiedPoint {
	return geom.IdentifiedPoint{
		Point: geom.Point{ Lat: n.Lat, Lon: n.Lon }, GlobalID: n.GlobalID,
	}
}

// Segment returns the endpoints of the given link. An error is returned if
// the link does not exist or if either endpoint has no global ID, since the
// shared-endpoint rule in geom.SegmentsIntersect would be meaningless.
func (net *Network) Segment(link int) (start, end geom.IdentifiedPoint, err error) {
	if err = net.checkLink(link); err != nil { return start, end, err }

	l := &net.Links[link]
	in, out := &net.Nodes[l.In], &net.Nodes[l.Out]
	if in.GlobalID == NoGlobalID || out.GlobalID == NoGlobalID {
		return start, end, fmt.Errorf(
			"Link %d has endpoints without global IDs. Pass the network " +
				"through a Registry first.", link,
		)
	}

	return in.Point(), out.Point(), nil
}

// Crosses returns true if links a and b cross. Links which share a node
// never cross.
func (net *Network) Crosses(a, b int) (bool, error) {
	aStart, aEnd, err := net.Segment(a)
	if err != nil { return false, err }
	bStart, bEnd, err := net.Segment(b)
	if err != nil { return false, err }

	return geom.SegmentsIntersect(aStart, aEnd, bStart, bEnd), nil
}

// Center returns the mean latitude and longitude of the network's nodes.
// An empty network is centered on (0, 0).
func (net *Network) Center() (lat, lon float64) {
	if len(net.Nodes) == 0 { return 0, 0 }

	for i := range net.Nodes {
		lat += net.Nodes[i].Lat
		lon += net.Nodes[i].Lon
	}
	n := float64(len(net.Nodes))
	return lat / n, lon / n
}
