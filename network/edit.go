package network

import (
	"fmt"

	"github.com/phil-mansfield/netcross/geom"
)

// NoLink can be passed to SplitLink when there is no reverse link to split.
const NoLink = -1

// RemoveLinks deletes the given links. The remaining links keep their order
// and are renumbered from zero, and the node link lists are updated to the
// new IDs. Nothing is removed if any ID is out of range. Global IDs stay in
// the Registry.
func (net *Network) RemoveLinks(ids ...int) error {
	dead := make(map[int]bool, len(ids))
	for _, id := range ids {
		if err := net.checkLink(id); err != nil { return err }
		dead[id] = true
	}

	// newIDs[old] is the link's new ID, or -1 if it was removed.
	newIDs := make([]int, len(net.Links))
	links := net.Links[:0]
	for i := range net.Links {
		if dead[i] {
			newIDs[i] = -1
			continue
		}
		l := net.Links[i]
		l.ID = len(links)
		newIDs[i] = l.ID
		links = append(links, l)
	}
	net.Links = links

	for i := range net.Nodes {
		n := &net.Nodes[i]
		n.Incoming = renumber(n.Incoming, newIDs)
		n.Outgoing = renumber(n.Outgoing, newIDs)
	}
	return nil
}

func renumber(ids, newIDs []int) []int {
	out := ids[:0]
	for _, id := range ids {
		if newIDs[id] >= 0 { out = append(out, newIDs[id]) }
	}
	return out
}

// RemoveNode deletes a node along with every link which starts or ends at
// it. Later nodes are renumbered down by one.
func (net *Network) RemoveNode(id int) error {
	if err := net.checkNode(id); err != nil { return err }

	n := &net.Nodes[id]
	attached := append(append([]int{}, n.Incoming...), n.Outgoing...)
	if err := net.RemoveLinks(attached...); err != nil { return err }

	net.Nodes = append(net.Nodes[:id], net.Nodes[id+1:]...)
	for i := id; i < len(net.Nodes); i++ {
		net.Nodes[i].ID = i
	}
	for i := range net.Links {
		l := &net.Links[i]
		if l.In > id { l.In-- }
		if l.Out > id { l.Out-- }
	}
	return nil
}

// SplitLink inserts a new node at p into link a. Link a is replaced by a link
// from its start to the new node with free flow travel time aFFTT[0] and a
// link from the new node to its end with aFFTT[1]. Both keep a's capacity.
//
// If b is not NoLink it must run in the opposite direction to a. It is split
// the same way, using bFFTT.
//
// The new links are appended after the remaining links, which are
// renumbered as in RemoveLinks. If reg is non-nil it is used to give the new
// node and links global IDs. The new node's ID is returned.
func (net *Network) SplitLink(
	p geom.Point, a int, aFFTT [2]float64, b int, bFFTT [2]float64,
	reg *Registry,
) (int, error) {
	if err := net.checkLink(a); err != nil { return -1, err }
	la := net.Links[a]

	var lb Link
	if b != NoLink {
		if err := net.checkLink(b); err != nil { return -1, err }
		lb = net.Links[b]
		if b == a || lb.In != la.Out || lb.Out != la.In {
			return -1, fmt.Errorf(
				"Link %d (%d -> %d) is not the reverse of link %d (%d -> %d).",
				b, lb.In, lb.Out, a, la.In, la.Out,
			)
		}
	}

	node := net.addNode(Node{ Lat: p.Lat, Lon: p.Lon })

	var err error
	if b == NoLink {
		err = net.RemoveLinks(a)
	} else {
		err = net.RemoveLinks(a, b)
	}
	if err != nil { return -1, err }

	net.appendLink(la.In, node, la.Capacity, aFFTT[0])
	net.appendLink(node, la.Out, la.Capacity, aFFTT[1])
	if b != NoLink {
		net.appendLink(lb.In, node, lb.Capacity, bFFTT[0])
		net.appendLink(node, lb.Out, lb.Capacity, bFFTT[1])
	}

	if reg != nil { reg.Assign(net) }
	return node, nil
}

// SetCapacity changes a link's capacity and returns the old value.
func (net *Network) SetCapacity(link int, capacity float64) (float64, error) {
	if err := net.checkLink(link); err != nil { return 0, err }
	if capacity < 0 {
		return 0, fmt.Errorf(
			"Link %d given a negative capacity, %g.", link, capacity,
		)
	}

	prev := net.Links[link].Capacity
	net.Links[link].Capacity = capacity
	return prev, nil
}

// SetFreeFlowTravelTime changes a link's free flow travel time and returns
// the old value.
func (net *Network) SetFreeFlowTravelTime(link int, fftt float64) (float64, error) {
	if err := net.checkLink(link); err != nil { return 0, err }
	if fftt < 0 {
		return 0, fmt.Errorf(
			"Link %d given a negative free flow travel time, %g.", link, fftt,
		)
	}

	prev := net.Links[link].FreeFlowTravelTime
	net.Links[link].FreeFlowTravelTime = fftt
	return prev, nil
}
