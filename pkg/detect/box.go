// Package detect holds the detection geometry shared by the capture
// loop and the scoring engine. It has no OpenCV dependency; the
// cascade subpackage provides the classifier backend.
package detect

// Box is an axis-aligned face bounding box in pixel coordinates
type Box struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// Area returns the box area in pixel squared
func (b Box) Area() int {
	return b.W * b.H
}

// CenterY returns the vertical center of the box in pixels
func (b Box) CenterY() float64 {
	return float64(b.Y) + float64(b.H)/2
}

// SelectLargest picks the largest box by area as "the" tracked face
// when the detector returns several. Returns nil when no faces were
// detected.
func SelectLargest(boxes []Box) *Box {
	if len(boxes) == 0 {
		return nil
	}

	best := &boxes[0]
	for i := 1; i < len(boxes); i++ {
		if boxes[i].Area() > best.Area() {
			best = &boxes[i]
		}
	}
	return best
}
