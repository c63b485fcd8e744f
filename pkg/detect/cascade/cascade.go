// Package cascade runs OpenCV Haar-cascade face detection. It is the
// only detection package that links against gocv; pure geometry lives
// in the parent detect package.
package cascade

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"

	"github.com/focusframe/focusframe/pkg/detect"
)

// Detector is the interface for face detection backends
type Detector interface {
	// Detect finds faces in the grayscale frame and returns their
	// bounding boxes
	Detect(gray *gocv.Mat) ([]detect.Box, error)

	// Close releases resources
	Close() error
}

// Detection parameters for the frontal-face classifier
const (
	scaleFactor  = 1.1
	minNeighbors = 5
	minFaceSize  = 50 // pixels per side
)

// DefaultModelPath is where the Haar frontal-face model is expected
const DefaultModelPath = "models/haarcascade_frontalface_default.xml"

// Classifier detects faces with an OpenCV Haar cascade classifier
type Classifier struct {
	classifier gocv.CascadeClassifier
	mu         sync.Mutex // Protects inference
}

// New loads the Haar cascade XML at path
func New(path string) (*Classifier, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cascade file: %w", err)
	}

	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, fmt.Errorf("load cascade %s failed", path)
	}

	return &Classifier{classifier: classifier}, nil
}

// Detect finds faces in the grayscale frame
func (c *Classifier) Detect(gray *gocv.Mat) ([]detect.Box, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gray.Empty() {
		return nil, fmt.Errorf("empty frame")
	}

	rects := c.classifier.DetectMultiScaleWithParams(
		*gray,
		scaleFactor,
		minNeighbors,
		0, // flags, unused by the cascade implementation
		image.Pt(minFaceSize, minFaceSize),
		image.Pt(0, 0), // no max size
	)

	boxes := make([]detect.Box, 0, len(rects))
	for _, r := range rects {
		boxes = append(boxes, detect.Box{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()})
	}
	return boxes, nil
}

// Close releases the classifier resources
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.classifier.Close()
	return nil
}
