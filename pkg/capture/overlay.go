package capture

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/focusframe/focusframe/pkg/detect"
	"github.com/focusframe/focusframe/pkg/focus"
)

// Overlay colors (RGBA; gocv converts to the Mat's channel order)
var (
	presenceColor = color.RGBA{G: 255}
	trackingColor = color.RGBA{R: 255, G: 255} // detected but not yet smoothed-present
	awayColor     = color.RGBA{R: 255}
	cautionColor  = color.RGBA{R: 255, G: 165}
	textColor     = color.RGBA{R: 255, G: 255, B: 255}
)

// annotate draws the detection box and status overlay onto the frame,
// producing the opaque processed frame the consumer displays.
func annotate(frame *gocv.Mat, face *detect.Box, snap focus.Snapshot) {
	if face != nil {
		c := trackingColor
		if snap.Present {
			c = presenceColor
		}
		rect := image.Rect(face.X, face.Y, face.X+face.W, face.Y+face.H)
		gocv.Rectangle(frame, rect, c, 2)
	}

	status, statusColor := "AWAY", awayColor
	if snap.Present {
		status, statusColor = "PRESENT", presenceColor
	}
	gocv.PutText(frame, status, image.Pt(10, 30),
		gocv.FontHersheySimplex, 1, statusColor, 2)

	if snap.Calibrated {
		label, labelColor := postureOverlay(snap.Posture)
		gocv.PutText(frame, label, image.Pt(10, 70),
			gocv.FontHersheySimplex, 0.7, labelColor, 2)
	}

	gocv.PutText(frame, fmt.Sprintf("Score: %d", int(snap.Score)),
		image.Pt(10, frame.Rows()-30),
		gocv.FontHersheySimplex, 0.8, textColor, 2)
}

func postureOverlay(band string) (string, color.RGBA) {
	switch band {
	case "excellent":
		return "EXCELLENT POSTURE", presenceColor
	case "good":
		return "GOOD POSTURE", trackingColor
	default:
		return "CHECK POSTURE", cautionColor
	}
}
