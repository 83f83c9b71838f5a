package mapink

// CatmullRom densifies a polyline into a smooth curve through its control
// points using a uniform Catmull-Rom spline.
//
// The control-point sequence is padded with phantom tangent anchors: the
// first and last points are duplicated for an open curve, or wrapped
// around for a closed one. Each window of four consecutive points then
// contributes samplesPerSeg points for t in [0,1). For an open curve the
// exact final control point is appended once more so the output
// terminates precisely where the input does.
//
// For n control points (open case) the output length is exactly
// (n-1)*samplesPerSeg + 1. Fewer than 2 input points is a degenerate
// no-op: the input is returned unchanged (as a copy).
func CatmullRom(points []Point, samplesPerSeg int, closed bool) []Point {
	if len(points) < 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	if samplesPerSeg < 1 {
		samplesPerSeg = 1
	}

	var pts []Point
	if closed {
		pts = make([]Point, 0, len(points)+3)
		pts = append(pts, points[len(points)-1])
		pts = append(pts, points...)
		pts = append(pts, points[0], points[1])
	} else {
		pts = make([]Point, 0, len(points)+2)
		pts = append(pts, points[0])
		pts = append(pts, points...)
		pts = append(pts, points[len(points)-1])
	}

	windows := len(pts) - 3
	out := make([]Point, 0, windows*samplesPerSeg+1)
	for i := 1; i < len(pts)-2; i++ {
		p0, p1, p2, p3 := pts[i-1], pts[i], pts[i+1], pts[i+2]
		for j := 0; j < samplesPerSeg; j++ {
			t := float64(j) / float64(samplesPerSeg)
			out = append(out, catmullRomPoint(p0, p1, p2, p3, t))
		}
	}
	if !closed {
		out = append(out, points[len(points)-1])
	}
	return out
}

// catmullRomPoint evaluates the uniform cubic Catmull-Rom basis for one
// window of four control points at parameter t in [0,1].
func catmullRomPoint(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: 0.5 * (2*p1.X +
			(-p0.X+p2.X)*t +
			(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 +
			(-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * (2*p1.Y +
			(-p0.Y+p2.Y)*t +
			(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
			(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}
