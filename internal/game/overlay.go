package game

import (
	"fmt"
	"time"

	"planet-lod/internal/world"
)

// Overlay is what a debug overlay shows for the latest tick.
type Overlay struct {
	FPS   int
	Stats world.FrameStats
}

func (o Overlay) String() string {
	p := o.Stats.Viewer
	return fmt.Sprintf("FPS: %d\nViewer: (%.2f, %.2f, %.2f)\nChunks: %d Pending: %d Triangles: %d",
		o.FPS, p[0], p[1], p[2], o.Stats.Chunks, o.Stats.Pending, o.Stats.Triangles)
}

// fpsCounter counts ticks over one-second windows.
type fpsCounter struct {
	frames    int
	fps       int
	lastCheck time.Time
}

func (c *fpsCounter) tick(now time.Time) int {
	if c.lastCheck.IsZero() {
		c.lastCheck = now
	}
	c.frames++
	if elapsed := now.Sub(c.lastCheck); elapsed >= time.Second {
		c.fps = int(float64(c.frames) / elapsed.Seconds())
		c.frames = 0
		c.lastCheck = now
	}
	return c.fps
}
