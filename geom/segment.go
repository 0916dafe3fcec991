/*package geom contains the planar segment intersection test used to find
crossing links in a road network.

Latitude and longitude are treated as flat Cartesian coordinates, with Lon
playing the role of x and Lat the role of y. No projection is done.
*/
package geom

// Point is a position in lat/lon space.
type Point struct {
	Lat, Lon float64
}

// IdentifiedPoint is a Point which also carries the caller's global ID for
// that vertex. Two IdentifiedPoints are the same vertex if and only if their
// GlobalIDs are equal, regardless of their coordinates.
type IdentifiedPoint struct {
	Point
	GlobalID int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{ p.Lat - q.Lat, p.Lon - q.Lon }
}

// Cross computes the 2D cross product u x v, where Lon is the x component
// and Lat is the y component.
func Cross(u, v Point) float64 {
	return u.Lon*v.Lat - u.Lat*v.Lon
}

// Params solves aStart + a*(aEnd - aStart) = bStart + b*(bEnd - bStart) for
// a and b. ok is false if the two directions are parallel (or either segment
// has zero length), in which case a and b are meaningless.
//
// a is recovered from the Lat component alone, so if aStart and aEnd have the
// same Lat it will be NaN or infinite.
func Params(aStart, aEnd, bStart, bEnd Point) (a, b float64, ok bool) {
	dirA, dirB := aEnd.Sub(aStart), bEnd.Sub(bStart)
	if Cross(dirA, dirB) == 0 { return 0, 0, false }

	b = Cross(dirA, bStart.Sub(aStart)) / Cross(dirB, dirA)
	a = (bStart.Lat - aStart.Lat + b*dirB.Lat) / dirA.Lat
	return a, b, true
}

// sharesEndpoint returns true if any endpoint of segment A has the same
// GlobalID as any endpoint of segment B.
func sharesEndpoint(aStart, aEnd, bStart, bEnd IdentifiedPoint) bool {
	return aStart.GlobalID == bStart.GlobalID ||
		aStart.GlobalID == bEnd.GlobalID ||
		aEnd.GlobalID == bStart.GlobalID ||
		aEnd.GlobalID == bEnd.GlobalID
}

// SegmentsIntersect returns true if segment A (aStart -> aEnd) and segment B
// (bStart -> bEnd) cross.
//
// Segments which share an endpoint GlobalID never intersect: adjacent links
// in a network always touch at their shared node. Parallel and collinear
// segments never intersect, even if they overlap. Otherwise the parametric
// solution from Params must lie in the closed interval [0, 1] on both
// segments, so an endpoint landing exactly on the other segment counts.
//
// Degenerate inputs which produce NaN parameters (zero-length segments or a
// segment A with zero Lat extent) are reported as not intersecting.
func SegmentsIntersect(aStart, aEnd, bStart, bEnd IdentifiedPoint) bool {
	if sharesEndpoint(aStart, aEnd, bStart, bEnd) { return false }

	a, b, ok := Params(aStart.Point, aEnd.Point, bStart.Point, bEnd.Point)
	if !ok { return false }

	// Written so that NaN fails every comparison.
	return inUnit(a) && inUnit(b)
}

func inUnit(x float64) bool { return x >= 0 && x <= 1 }
