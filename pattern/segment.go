package pattern

import "sort"

// AsSegment reports whether p is a 1-D axis-aligned run: every point shares
// every coordinate except one (axis), and that axis's values form a
// contiguous integer range. origin is the point with the smallest coordinate
// on axis. The Union Compactor (decompose.Compact) uses this to recognize
// the segments spec.md's union decomposition produces.
func (p *Pattern) AsSegment() (axis, length int, origin Point, ok bool) {
	if len(p.points) == 0 {
		return 0, 0, nil, false
	}
	if len(p.points) == 1 {
		return 0, 1, append(Point(nil), p.points[0]...), true
	}

	varying := -1
	for axisCandidate := 0; axisCandidate < p.dim; axisCandidate++ {
		v0 := p.points[0][axisCandidate]
		same := true
		for _, pt := range p.points[1:] {
			if pt[axisCandidate] != v0 {
				same = false
				break
			}
		}
		if !same {
			if varying != -1 {
				return 0, 0, nil, false // more than one varying axis
			}
			varying = axisCandidate
		}
	}
	if varying == -1 {
		return 0, 0, nil, false // all points identical; handled by the len==1 case
	}

	sorted := append([]Point(nil), p.points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][varying] < sorted[j][varying] })
	for i := 1; i < len(sorted); i++ {
		c := sorted[i][varying]
		if c != float64(int64(c)) || c != sorted[i-1][varying]+1 {
			return 0, 0, nil, false
		}
	}
	if first := sorted[0][varying]; first != float64(int64(first)) {
		return 0, 0, nil, false
	}
	return varying, len(sorted), append(Point(nil), sorted[0]...), true
}
