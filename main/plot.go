package main

import (
	"fmt"

	"github.com/phil-mansfield/netcross/geom"
	"github.com/phil-mansfield/netcross/network"

	plt "github.com/phil-mansfield/pyplot"
)

const (
	crossColor = "Crimson"
	clearColor = "DarkTurquoise"
	proposalColor = "DarkViolet"
)

// checkSegments returns the endpoints of the two links in c.
func checkSegments(
	net *network.Network, c *Check,
) (aStart, aEnd, bStart, bEnd geom.Point) {
	if c.Proposal {
		aStart = net.Nodes[c.From].Point().Point
		aEnd = net.Nodes[c.To].Point().Point
	} else {
		l := &net.Links[c.LinkA]
		aStart = net.Nodes[l.In].Point().Point
		aEnd = net.Nodes[l.Out].Point().Point
	}
	l := &net.Links[c.LinkB]
	bStart = net.Nodes[l.In].Point().Point
	bEnd = net.Nodes[l.Out].Point().Point
	return aStart, aEnd, bStart, bEnd
}

// crossingPoint returns the point where the links of a crossing check meet.
func crossingPoint(aStart, aEnd, bStart, bEnd geom.Point) (geom.Point, bool) {
	_, b, ok := geom.Params(aStart, aEnd, bStart, bEnd)
	if !ok { return geom.Point{}, false }
	dir := bEnd.Sub(bStart)
	return geom.Point{
		Lat: bStart.Lat + b*dir.Lat, Lon: bStart.Lon + b*dir.Lon,
	}, true
}

func plotSegment(p1, p2 geom.Point, color string, thick bool) {
	xs, ys := []float64{ p1.Lon, p2.Lon }, []float64{ p1.Lat, p2.Lat }
	if thick {
		plt.Plot(xs, ys, plt.C(color), plt.LW(3))
	} else {
		plt.Plot(xs, ys, plt.C(color), plt.LW(1))
	}
}

// plotChecks saves a lon/lat plot of the network to fname with every checked
// pair highlighted and every crossing marked.
func plotChecks(net *network.Network, checks []Check, fname string) {
	plt.Figure(plt.FigSize(8, 8))

	for i := range net.Links {
		l := &net.Links[i]
		plotSegment(net.Nodes[l.In].Point().Point, net.Nodes[l.Out].Point().Point,
			"DimGray", false)
	}

	crossings := 0
	for i := range checks {
		c := &checks[i]
		aStart, aEnd, bStart, bEnd := checkSegments(net, c)

		color := clearColor
		if c.Cross { color = crossColor }
		aColor := color
		if c.Proposal { aColor = proposalColor }

		plotSegment(aStart, aEnd, aColor, true)
		plotSegment(bStart, bEnd, color, true)

		if !c.Cross { continue }
		crossings++
		if p, ok := crossingPoint(aStart, aEnd, bStart, bEnd); ok {
			plt.Plot([]float64{ p.Lon }, []float64{ p.Lat }, "o", plt.C(crossColor))
		}
	}

	plt.Title(fmt.Sprintf("%d of %d checked pairs cross", crossings, len(checks)))
	plt.XLabel("Longitude", plt.FontSize(16))
	plt.YLabel("Latitude", plt.FontSize(16))
	plt.Grid(plt.Axis("both"))
	plt.SaveFig(fname)

	plt.Execute()
}
