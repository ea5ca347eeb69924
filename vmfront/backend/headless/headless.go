// Package headless implements a backend with no host output, for batch
// runs and tests.
package headless

import (
	"log/slog"

	"github.com/valerio/go-vmfront/vmfront/backend"
	"github.com/valerio/go-vmfront/vmfront/machine"
)

// Geometry is the cached framebuffer shape from the last active tick.
type Geometry struct {
	Width  int
	Height int
	Stride int
}

// Backend counts refresh ticks and tracks the guest geometry the way a
// rendering backend would, without touching any host resources.
type Backend struct {
	config    backend.Config
	callbacks backend.Callbacks

	maxTicks int
	ticks    int
	running  bool

	geometry  Geometry
	epochs    int // geometry changes observed, first sighting included
	rectCount int // dirty rectangles presented in total
	toneFreq  int
	hasGeom   bool
}

// New creates a headless backend that reports quit after maxTicks active
// ticks; maxTicks <= 0 means unlimited.
func New(maxTicks int) *Backend {
	return &Backend{maxTicks: maxTicks}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config
	h.callbacks = config.Callbacks
	h.running = true
	slog.Info("Headless backend initialized", "max_ticks", h.maxTicks)
	return nil
}

func (h *Backend) Refresh(m machine.Machine) error {
	if !h.running {
		return backend.ErrQuit
	}

	fb := m.Framebuffer()
	if fb == nil {
		return nil
	}

	geom := Geometry{Width: fb.Width, Height: fb.Height, Stride: fb.Stride}
	if !h.hasGeom || geom != h.geometry {
		h.geometry = geom
		h.hasGeom = true
		h.epochs++
	}

	fb.Refresh(func(x, y, w, h2 int) {
		h.rectCount++
	})

	h.ticks++
	if h.maxTicks > 0 && h.ticks >= h.maxTicks {
		h.running = false
		if h.callbacks.OnQuit != nil {
			h.callbacks.OnQuit()
		}
		return backend.ErrQuit
	}

	return nil
}

func (h *Backend) SetTone(hz int) {
	h.toneFreq = hz
}

func (h *Backend) Cleanup() error {
	slog.Info("Headless run complete", "ticks", h.ticks, "rects", h.rectCount, "epochs", h.epochs)
	return nil
}

// Ticks returns the number of active ticks performed.
func (h *Backend) Ticks() int { return h.ticks }

// Epochs returns how many distinct geometry epochs were observed.
func (h *Backend) Epochs() int { return h.epochs }

// RectCount returns the total number of dirty rectangles presented.
func (h *Backend) RectCount() int { return h.rectCount }

// LastGeometry returns the most recent framebuffer geometry.
func (h *Backend) LastGeometry() Geometry { return h.geometry }

// ToneFreq returns the last tone frequency set.
func (h *Backend) ToneFreq() int { return h.toneFreq }
