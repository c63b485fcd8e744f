// Camera test - verify capture and face detection without the engine.
//
// Opens the camera, runs the cascade on live frames, and reports
// detection statistics once per second.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocv.io/x/gocv"

	"github.com/focusframe/focusframe/internal/config"
	"github.com/focusframe/focusframe/pkg/detect"
	"github.com/focusframe/focusframe/pkg/detect/cascade"
)

func main() {
	camera := flag.Int("camera", config.CameraIndex(), "Camera device index")
	cascadePath := flag.String("cascade", config.CascadePath(cascade.DefaultModelPath), "Cascade XML path")
	flag.Parse()

	fmt.Println("FocusFrame camera test")
	fmt.Printf("Camera: %d, cascade: %s\n\n", *camera, *cascade)

	detector, err := cascade.New(*cascadePath)
	if err != nil {
		fmt.Printf("detector: %v\n", err)
		os.Exit(1)
	}
	defer detector.Close()

	device, err := gocv.OpenVideoCapture(*camera)
	if err != nil {
		fmt.Printf("camera: %v\n", err)
		os.Exit(1)
	}
	defer device.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	frames, hits, misses := 0, 0, 0
	startTime := time.Now()
	lastReport := time.Now()

	fmt.Println("Measuring detection rate (Ctrl+C to stop)...")

	for {
		select {
		case <-sigChan:
			elapsed := time.Since(startTime).Seconds()
			fmt.Printf("\n\nFinal: %d frames in %.1fs = %.2f fps, face in %d (%d read failures)\n",
				frames, elapsed, float64(frames)/elapsed, hits, misses)
			return
		default:
		}

		if !device.Read(&frame) || frame.Empty() {
			misses++
			time.Sleep(33 * time.Millisecond)
			continue
		}
		frames++

		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
		boxes, err := detector.Detect(&gray)
		if err == nil && len(boxes) > 0 {
			hits++
		}

		if time.Since(lastReport) >= time.Second {
			face := "no face"
			if best := detect.SelectLargest(boxes); best != nil {
				face = fmt.Sprintf("face %dx%d at (%d,%d)", best.W, best.H, best.X, best.Y)
			}
			elapsed := time.Since(startTime).Seconds()
			fmt.Printf("\rframes: %d | fps: %.1f | detected: %d | %s    ",
				frames, float64(frames)/elapsed, hits, face)
			lastReport = time.Now()
		}

		time.Sleep(33 * time.Millisecond)
	}
}
