//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/valerio/go-vmfront/vmfront/display"
	"github.com/valerio/go-vmfront/vmfront/machine"
	"github.com/veandco/go-sdl2/sdl"
)

// presenter owns the render resources bound to one framebuffer geometry:
// a surface viewing the guest pixel memory in place, a renderer and a
// texture derived from it. The three are created and destroyed together.
type presenter struct {
	window *sdl.Window

	surface  *sdl.Surface
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// read reference to the guest pixel memory the surface views
	pixels []byte

	width  int
	height int
	stride int
}

// ensure reconciles the render resources with the guest geometry. On any
// change of width, height or stride the previous resources are destroyed
// before the replacements are built; an error leaves nothing allocated.
func (p *presenter) ensure(fb *machine.FramebufferDevice) error {
	if p.surface != nil && p.width == fb.Width && p.height == fb.Height && p.stride == fb.Stride {
		return nil
	}

	p.release()
	p.width = fb.Width
	p.height = fb.Height
	p.stride = fb.Stride

	surface, err := sdl.CreateRGBSurfaceFrom(
		unsafe.Pointer(&fb.Pixels[0]),
		int32(fb.Width),
		int32(fb.Height),
		32,
		fb.Stride,
		display.RedMask,
		display.GreenMask,
		display.BlueMask,
		display.AlphaMask,
	)
	if err != nil {
		return fmt.Errorf("failed to create framebuffer surface: %v", err)
	}

	renderer, err := sdl.CreateRenderer(p.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		surface.Free()
		return fmt.Errorf("failed to create renderer: %v", err)
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		renderer.Destroy()
		surface.Free()
		return fmt.Errorf("failed to create texture: %v", err)
	}

	p.surface = surface
	p.renderer = renderer
	p.texture = texture
	p.pixels = fb.Pixels

	slog.Debug("Framebuffer resources created",
		"width", fb.Width, "height", fb.Height, "stride", fb.Stride)

	return nil
}

// presentRect uploads one dirty rectangle of the guest framebuffer into
// the texture and presents the full frame. Each dirty rectangle during a
// tick presents separately; the guest typically reports few.
func (p *presenter) presentRect(x, y, w, h int) {
	if p.texture == nil {
		return
	}

	rect := sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)}
	start := p.stride*y + x

	p.texture.Update(&rect, unsafe.Pointer(&p.pixels[start]), p.stride)
	p.renderer.Copy(p.texture, nil, nil)
	p.renderer.Present()
}

// release destroys the current render resources, if any.
func (p *presenter) release() {
	if p.texture != nil {
		p.texture.Destroy()
		p.texture = nil
	}
	if p.renderer != nil {
		p.renderer.Destroy()
		p.renderer = nil
	}
	if p.surface != nil {
		p.surface.Free()
		p.surface = nil
	}
	p.pixels = nil
	p.width, p.height, p.stride = 0, 0, 0
}
