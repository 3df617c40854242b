// Package viewer implements the model viewer loop and state management.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/asset"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/config"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/camera"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/debug"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/input"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/renderer"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/shader"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/window"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/logger"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/viewer/shaders"
)

// State identifies the viewer's lifecycle phase.
type State int

const (
	// StateRunning means the viewer is polling events and drawing frames.
	StateRunning State = iota
	// StateClosing means a quit was requested and no more frames are drawn.
	StateClosing
)

// Viewer owns the window, the GL resources, and the displayed scene.
type Viewer struct {
	config *config.Config
	state  State

	window   *window.Window
	renderer *renderer.Context
	program  *shader.Program
	input    *input.Input

	mesh   *renderer.Mesh
	object Object
	anim   Animation
	camera camera.Camera

	lineColor mgl32.Vec3

	screenshots       *debug.ScreenshotCapture
	pendingScreenshot bool
}

// New creates a viewer from the given configuration. The window, GL
// context, shader program, and uploaded mesh are all ready when New
// returns.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("model", cfg.Scene.Model),
	)

	v := &Viewer{
		config:    cfg,
		state:     StateRunning,
		lineColor: mgl32.Vec3(cfg.Render.LineColor),
	}

	// Create window (this also creates the OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create the renderer AFTER the window, since the OpenGL context
	// must exist. The viewport runs on drawable pixels, not window
	// units, so high-DPI displays get the full resolution.
	drawableW, drawableH := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      drawableW,
		Height:     drawableH,
		Wireframe:  cfg.Render.Wireframe,
		ClearColor: cfg.Render.ClearColor,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.program, err = shader.New(shaders.WireframeVertexShader, shaders.WireframeFragmentShader)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to build shader program: %w", err)
	}

	data, err := asset.Load(cfg.Scene.Model, asset.Options{FlipUVs: cfg.Scene.FlipUVs})
	if err != nil {
		v.program.Destroy()
		v.window.Close()
		return nil, err
	}

	v.mesh, err = v.renderer.UploadMesh(data)
	if err != nil {
		v.program.Destroy()
		v.window.Close()
		return nil, err
	}

	v.object = Object{
		Position:    mgl32.Vec3(cfg.Scene.Position),
		Orientation: mgl32.Vec3(cfg.Scene.Orientation),
		Scale:       mgl32.Vec3(cfg.Scene.Scale),
	}
	v.anim = Animation{
		SpinY:  cfg.Scene.SpinSpeed,
		DriftZ: cfg.Scene.DriftSpeed,
	}

	v.camera = camera.Default()
	v.camera.FOV = cfg.Render.FOV
	v.camera.Near = cfg.Render.NearPlane
	v.camera.Far = cfg.Render.FarPlane

	v.input = input.New()
	v.screenshots = debug.NewScreenshotCapture("screenshots", "viewer")

	logger.Info("viewer initialized",
		zap.Int("vertices", len(data.Vertices)),
		zap.Int("triangles", data.TriangleCount()),
	)
	return v, nil
}

// Run starts the render loop and blocks until the viewer closes.
func (v *Viewer) Run() error {
	v.state = StateRunning

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for v.state == StateRunning {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.state = StateClosing
		}
		v.applyEvents(v.input.Events())

		// Closing frames are not drawn.
		if v.state != StateRunning {
			break
		}

		// 2. Advance the scene
		v.anim.Step(&v.object)

		// 3. Render
		v.render()

		// Screenshots read the back buffer, so capture after drawing
		// and before the swap.
		if v.pendingScreenshot {
			v.captureScreenshot()
			v.pendingScreenshot = false
		}

		// 4. Present
		v.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("frames", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("render loop stopped")
	return nil
}

// Close releases GPU and window resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.mesh != nil {
		v.mesh.Destroy()
	}
	if v.program != nil {
		v.program.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// applyEvents advances the viewer state machine with one frame's events.
func (v *Viewer) applyEvents(events []input.Event) {
	for _, event := range events {
		switch event.Type {
		case input.EventQuit:
			v.state = StateClosing
		case input.EventWindowResize:
			w, h := v.window.DrawableSize()
			v.renderer.Resize(w, h)
		case input.EventKeyDown:
			v.handleKey(event.Key)
		}
	}
}

// handleKey reacts to a single key press.
func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.state = StateClosing
	case sdl.SCANCODE_W:
		v.renderer.SetWireframe(!v.renderer.Wireframe())
	case sdl.SCANCODE_F12:
		v.pendingScreenshot = true
	}
}

// render draws one frame. The model, view, and projection matrices are
// recomputed from the current scene state every frame, so animation and
// window resizes take effect immediately.
func (v *Viewer) render() {
	v.program.Use()
	v.program.SetMat4("model", v.object.ModelMatrix())
	v.program.SetMat4("view", v.camera.View())
	v.program.SetMat4("projection", v.camera.Projection(v.window.AspectRatio()))
	v.program.SetVec3("color", v.lineColor)

	v.renderer.BeginFrame()
	v.renderer.DrawMesh(v.mesh)
}

// captureScreenshot saves the frame that was just drawn.
func (v *Viewer) captureScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
