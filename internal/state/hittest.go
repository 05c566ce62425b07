package state

import "math"

// FindTopmostStrokeAt returns the index of the last-drawn stroke within reach
// of p. The reach of a stroke is the larger of minThreshold and half its
// thickness, so thick strokes stay easy to grab with a small eraser.
func FindTopmostStrokeAt(sc *Scene, p Point, minThreshold float64) (int, bool) {
	for i := len(sc.strokes) - 1; i >= 0; i-- {
		if hits(sc.strokes[i], p, minThreshold) {
			return i, true
		}
	}
	return -1, false
}

func hits(s Stroke, p Point, minThreshold float64) bool {
	if s.Kind != KindPen || len(s.Points) == 0 {
		return false
	}
	reach := math.Max(minThreshold, s.Radius())
	if s.IsDot() {
		return Distance(p, s.Points[0]) <= reach
	}
	for j := 0; j < len(s.Points)-1; j++ {
		if DistanceToSegment(p, s.Points[j], s.Points[j+1]) <= reach {
			return true
		}
	}
	return false
}
