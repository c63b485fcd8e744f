package capture

import (
	"context"
	"sync/atomic"
	"time"

	"gocv.io/x/gocv"

	"github.com/focusframe/focusframe/internal/log"
	"github.com/focusframe/focusframe/pkg/debug"
	"github.com/focusframe/focusframe/pkg/detect"
	"github.com/focusframe/focusframe/pkg/detect/cascade"
	"github.com/focusframe/focusframe/pkg/focus"
	"github.com/focusframe/focusframe/pkg/pipeline"
)

// defaultFrameInterval targets ~30fps via a bounded sleep per
// iteration, not a hard real-time guarantee
const defaultFrameInterval = 33 * time.Millisecond

// joinTimeout bounds how long Stop waits for the loop goroutine.
// Device release happens regardless of join outcome.
const joinTimeout = 2 * time.Second

// Runner drives the per-frame processing loop: read, detect, score,
// annotate, publish. It is the sole writer of engine state.
type Runner struct {
	grabber  *Grabber
	detector cascade.Detector
	engine   *focus.Engine
	frames   *pipeline.Pipeline[[]byte]
	interval time.Duration

	cancel       context.CancelFunc
	done         chan struct{}
	readFailures atomic.Uint64
}

// NewRunner wires the capture loop to its collaborators. The runner
// takes ownership of the grabber and detector and releases them in
// Stop.
func NewRunner(grabber *Grabber, detector cascade.Detector, engine *focus.Engine, frames *pipeline.Pipeline[[]byte]) *Runner {
	return &Runner{
		grabber:  grabber,
		detector: detector,
		engine:   engine,
		frames:   frames,
		interval: defaultFrameInterval,
		done:     make(chan struct{}),
	}
}

// SetInterval overrides the target frame interval. Call before Start.
func (r *Runner) SetInterval(d time.Duration) {
	if d > 0 {
		r.interval = d
	}
}

// Start launches the capture loop goroutine
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	go r.loop(ctx)
}

// Stop cancels the loop, waits up to joinTimeout for it to exit, then
// releases the camera and detector either way
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}

	select {
	case <-r.done:
	case <-time.After(joinTimeout):
		log.Warn("capture loop did not stop in time, releasing device anyway")
	}

	if err := r.grabber.Close(); err != nil {
		log.Warn("camera release failed", "error", err)
	}
	if err := r.detector.Close(); err != nil {
		log.Warn("detector close failed", "error", err)
	}
}

// ReadFailures returns how many frame reads failed since start
func (r *Runner) ReadFailures() uint64 {
	return r.readFailures.Load()
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)

	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	log.Info("capture loop started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			log.Info("capture loop stopped")
			return
		default:
		}

		if !r.grabber.Read(&frame) {
			// Transient acquisition failure: skip, no state mutation
			r.readFailures.Add(1)
			debug.VisionLog("frame read failed, skipping iteration\n")
			time.Sleep(r.interval)
			continue
		}

		// Mirror for a natural self-view
		gocv.Flip(frame, &frame, 1)

		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

		boxes, err := r.detector.Detect(&gray)
		if err != nil {
			debug.VisionLog("detect: %v\n", err)
		} else if len(boxes) > 0 {
			debug.VisionLog("found %d face(s)\n", len(boxes))
		}
		face := detect.SelectLargest(boxes)

		r.engine.Observe(face, time.Now())

		snap := r.engine.Snapshot()
		annotate(&frame, face, snap)

		if buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame); err == nil {
			// The Mat-backed buffer is reused; hand the consumer a copy
			jpeg := append([]byte(nil), buf.GetBytes()...)
			buf.Close()
			if !r.frames.TryPush(jpeg) {
				debug.VisionLog("frame queue full, dropped frame\n")
			}
		}

		time.Sleep(r.interval)
	}
}
