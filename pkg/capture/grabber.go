// Package capture owns the camera device and the frame processing loop
// that drives the scoring engine.
package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Grabber wraps the webcam device
type Grabber struct {
	device *gocv.VideoCapture
}

// OpenGrabber opens the camera at the given device index.
// A camera that cannot be opened is a startup failure, not a per-frame
// condition.
func OpenGrabber(deviceIndex int) (*Grabber, error) {
	device, err := gocv.OpenVideoCapture(deviceIndex)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", deviceIndex, err)
	}
	return &Grabber{device: device}, nil
}

// Read grabs the next frame into dst. ok=false means a transient
// acquisition failure; callers skip the iteration.
func (g *Grabber) Read(dst *gocv.Mat) bool {
	return g.device.Read(dst) && !dst.Empty()
}

// Close releases the camera device
func (g *Grabber) Close() error {
	return g.device.Close()
}
