package focus

// Smoother converts noisy per-frame detection booleans into a stable
// presence signal using a short majority-vote window. A single-frame
// detector flicker never flips presence; a sustained change does
// within window frames.
type Smoother struct {
	window  int
	samples []bool
}

// NewSmoother creates a smoother with the given window size (minimum 1)
func NewSmoother(window int) *Smoother {
	if window < 1 {
		window = 1
	}
	return &Smoother{
		window:  window,
		samples: make([]bool, 0, window),
	}
}

// Observe appends one detection sample and returns the smoothed
// presence signal. Present means strictly more than half of the
// buffered samples saw a face; ties lean absent.
func (s *Smoother) Observe(detected bool) bool {
	s.samples = append(s.samples, detected)
	if len(s.samples) > s.window {
		s.samples = s.samples[1:]
	}

	hits := 0
	for _, d := range s.samples {
		if d {
			hits++
		}
	}
	return hits > len(s.samples)/2
}

// Reset clears the detection history
func (s *Smoother) Reset() {
	s.samples = s.samples[:0]
}
