// Command ggspydump captures a demo scene under ggspy instrumentation
// and writes the recorded drawing calls to JSON.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggspy"
	"github.com/gogpu/ggspy/integration/ggcontext"
)

func main() {
	var (
		width  = flag.Int("width", 800, "canvas width")
		height = flag.Int("height", 600, "canvas height")
		output = flag.String("output", "capture.json", "output file")
		calls  = flag.Int("calls", 0, "call-count bound (0 captures one full frame)")
		quick  = flag.Bool("quick", false, "quick capture (skip args and snapshot)")
		marker = flag.String("marker", "", "marker tag for recorded calls")
	)
	flag.Parse()

	cfg, err := ggspy.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}

	dc := gg.NewContext(*width, *height)
	canvas := ggcontext.New(dc, "ggspydump")

	loop := ggspy.NewRenderLoop()
	mgr := ggspy.NewManager(loop, ggspy.WithConfig(cfg))

	var captured *ggspy.Capture
	mgr.OnCaptureComplete(func(c *ggspy.Capture) { captured = c })
	mgr.OnError(func(err error) { log.Fatalf("Capture failed: %v", err) })

	if *marker != "" {
		mgr.SetMarker(*marker)
	}

	opts := ggspy.CaptureOptions{CommandCount: *calls, Quick: *quick}
	if err := mgr.CaptureCanvas(canvas, opts); err != nil {
		log.Fatalf("Capture request rejected: %v", err)
	}

	// One host frame is enough for the demo scene.
	loop.FrameStart()
	drawDemoScene(canvas.Recording(), float64(*width), float64(*height))
	loop.FrameEnd()

	if captured == nil {
		log.Fatal("No capture produced")
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()

	if err := captured.WriteJSON(f); err != nil {
		log.Fatalf("Failed to write capture: %v", err)
	}

	log.Printf("Wrote %d commands to %s", len(captured.Commands), *output)
}

func drawDemoScene(rc *ggcontext.RecordingContext, w, h float64) {
	rc.SetRGB(0.1, 0.2, 0.4)
	rc.Clear()

	rc.SetRGBA(1, 0.3, 0.3, 0.9)
	rc.DrawCircle(w/2, h/2, 120)
	_ = rc.Fill()

	rc.SetRGBA(1, 1, 1, 1)
	rc.SetLineWidth(3)
	rc.DrawRoundedRectangle(40, 40, w-80, h-80, 12)
	_ = rc.Stroke()

	rc.Push()
	rc.Translate(w/2, h/2)
	rc.Rotate(0.3)
	rc.SetRGBA(0.3, 0.8, 0.3, 0.8)
	rc.DrawRectangle(-60, -60, 120, 120)
	_ = rc.Fill()
	rc.Pop()
}
