// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/logger"
)

// Config holds renderer configuration. Width and Height are the
// drawable size in pixels.
type Config struct {
	Width      int
	Height     int
	Wireframe  bool
	ClearColor [3]float32
}

// Context owns global OpenGL state. It is created once after the GL
// context exists, and every mesh upload and draw goes through it.
type Context struct {
	config Config
}

// New initializes OpenGL and sets up the default render state.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Context, error) {
	c := &Context{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	c.SetWireframe(cfg.Wireframe)

	return c, nil
}

// Resize updates the viewport to a new drawable size.
func (c *Context) Resize(width, height int) {
	c.config.Width = width
	c.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// BeginFrame clears the color and depth buffers.
func (c *Context) BeginFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetWireframe switches between wireframe and filled rasterization.
func (c *Context) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	c.config.Wireframe = enabled
}

// Wireframe reports whether wireframe rasterization is active.
func (c *Context) Wireframe() bool {
	return c.config.Wireframe
}

// ReadPixels returns the current framebuffer contents as tightly
// packed RGBA bytes, bottom row first (GL convention), along with
// the drawable size.
func (c *Context) ReadPixels() ([]byte, int, int) {
	width, height := c.config.Width, c.config.Height
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
